// file: internals/features/academics/professores/route/professor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/professores/controller"
)

// ProfessorRoutes monta /professores sob o grupo /api/v1.
func ProfessorRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewProfessorController(db)

	g := api.Group("/professores")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)

	// 🔗 vínculo N:N com disciplinas
	g.Get("/:id/disciplinas", ctl.ListDisciplinas)
	g.Post("/:professor_id/disciplinas/:disciplina_id", ctl.LinkDisciplina)
}
