package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "gestao_tarefas_backend/internals/helpers"
)

func limitByIP(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: todas as rotas /api/v1
func GlobalRateLimiter() fiber.Handler {
	return limitByIP(300, time.Minute, "Muitas requisições. Tente novamente em instantes.")
}

// Login: mais restrito contra força bruta de senha
func LoginRateLimiter() fiber.Handler {
	return limitByIP(10, time.Minute, "Muitas tentativas de login. Aguarde um minuto.")
}
