package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware: origins vêm de CORS_ALLOW_ORIGINS (lista separada por vírgula).
// Vazio → nenhuma origem liberada.
func CorsMiddleware(allowOrigins string) fiber.Handler {
	origins := strings.TrimSpace(allowOrigins)
	wildcard := origins == "*"
	if origins == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		// fiber recusa AllowCredentials com "*"
		AllowCredentials: !wildcard,
	})
}
