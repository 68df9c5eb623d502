package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestTimeout coloca um deadline no UserContext; as queries GORM usam esse contexto.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
