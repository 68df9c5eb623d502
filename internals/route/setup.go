// file: internals/route/setup.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/configs"
	alunoRoute "gestao_tarefas_backend/internals/features/academics/alunos/route"
	disciplinaRoute "gestao_tarefas_backend/internals/features/academics/disciplinas/route"
	professorRoute "gestao_tarefas_backend/internals/features/academics/professores/route"
	tarefaRoute "gestao_tarefas_backend/internals/features/academics/tarefas/route"
	turmaRoute "gestao_tarefas_backend/internals/features/academics/turmas/route"
	authRoute "gestao_tarefas_backend/internals/features/auth/route"
	authService "gestao_tarefas_backend/internals/features/auth/service"
	"gestao_tarefas_backend/internals/middlewares"
)

const APIPrefix = "/api/v1"

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, auth *authService.AuthService) {
	startTime = time.Now()

	BaseRoutes(app, db, cfg)

	api := app.Group(APIPrefix, middlewares.GlobalRateLimiter())

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, auth)

	log.Println("[INFO] Setting up academic routes...")
	turmaRoute.TurmaRoutes(api, db)
	alunoRoute.AlunoRoutes(api, db)
	disciplinaRoute.DisciplinaRoutes(api, db)
	professorRoute.ProfessorRoutes(api, db)
	tarefaRoute.TarefaRoutes(api, db)
}
