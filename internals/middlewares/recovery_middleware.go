package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware converte panic em 500 (o ErrorHandler global monta o corpo).
func RecoveryMiddleware(debug bool) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: debug,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("💥 panic em %s %s: %v", c.Method(), c.OriginalURL(), e)
		},
	})
}
