// file: internals/features/academics/alunos/route/aluno_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/alunos/controller"
)

// AlunoRoutes monta /alunos sob o grupo /api/v1.
func AlunoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAlunoController(db)

	g := api.Group("/alunos")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
