// file: internals/features/academics/disciplinas/route/disciplina_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/disciplinas/controller"
)

// DisciplinaRoutes monta /disciplinas sob o grupo /api/v1.
func DisciplinaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDisciplinaController(db)

	g := api.Group("/disciplinas")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
