// file: internals/route/app.go
package routes

import (
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"

	"gestao_tarefas_backend/internals/configs"
	helper "gestao_tarefas_backend/internals/helpers"
	"gestao_tarefas_backend/internals/middlewares"
	"gestao_tarefas_backend/internals/middlewares/logger"
)

const requestTimeout = 5 * time.Second

// ErrorHandler centraliza o formato de erro: validação → 422 com campos,
// *fiber.Error → status próprio, resto → 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var verr *helper.ValidationError
	if errors.As(err, &verr) {
		return helper.JsonValidationError(c, verr.Fields)
	}
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		if fe.Code >= fiber.StatusInternalServerError {
			log.Printf("[ERROR] %s %s: %s", c.Method(), c.OriginalURL(), fe.Message)
		}
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return helper.FromFiberError(c, err)
}

// NewApp monta o *fiber.App com a pilha de middlewares; as rotas vêm em SetupRoutes.
func NewApp(cfg configs.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.APITitle,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware(cfg.Debug))
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: utils.UUIDv4,
	}))
	if cfg.Debug {
		app.Use(logger.LoggerMiddleware())
	}
	app.Use(middlewares.CorsMiddleware(cfg.CORSAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.RequestTimeout(requestTimeout))

	return app
}
