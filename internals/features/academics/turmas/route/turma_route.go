// file: internals/features/academics/turmas/route/turma_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/turmas/controller"
)

// TurmaRoutes monta /turmas sob o grupo /api/v1.
func TurmaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTurmaController(db)

	g := api.Group("/turmas")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
