// file: internals/features/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"gestao_tarefas_backend/internals/features/auth/controller"
	"gestao_tarefas_backend/internals/features/auth/service"
	"gestao_tarefas_backend/internals/middlewares"
	"gestao_tarefas_backend/internals/middlewares/auth"
)

// AuthRoutes monta /auth sob o grupo /api/v1.
func AuthRoutes(api fiber.Router, svc *service.AuthService) {
	ctl := controller.NewAuthController(svc)

	g := api.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Get("/me", auth.RequireAluno(svc), ctl.Me)
}
