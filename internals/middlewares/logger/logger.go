package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware registra uma linha por requisição.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Sao_Paulo",
		Format:     "[${time}] ${locals:requestid} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
