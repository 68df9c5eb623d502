package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/configs"
	database "gestao_tarefas_backend/internals/databases"
	helper "gestao_tarefas_backend/internals/helpers"
)

// HealthResponse é o corpo de GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	Environment   string `json:"environment"`
	ServerTime    string `json:"server_time"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func BaseRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonMessage(c, cfg.APITitle, "Versao "+cfg.APIVersion)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{
			Status:        "ok",
			Database:      "connected",
			Environment:   cfg.AppEnv,
			ServerTime:    time.Now().UTC().Format(time.RFC3339),
			UptimeSeconds: int64(time.Since(startTime).Seconds()),
		}
		status := fiber.StatusOK
		if err := database.Ping(ctx, db); err != nil {
			resp.Status = "error"
			resp.Database = err.Error()
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(resp)
	})
}
