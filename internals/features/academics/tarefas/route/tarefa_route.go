// file: internals/features/academics/tarefas/route/tarefa_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/tarefas/controller"
)

// TarefaRoutes monta /tarefas sob o grupo /api/v1.
func TarefaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTarefaController(db)

	g := api.Group("/tarefas")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
