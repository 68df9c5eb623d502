// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	alunoDTO "gestao_tarefas_backend/internals/features/academics/alunos/dto"
	"gestao_tarefas_backend/internals/features/auth/service"
	helper "gestao_tarefas_backend/internals/helpers"
	"gestao_tarefas_backend/internals/middlewares/auth"
)

type AuthController struct {
	Auth *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Auth: svc}
}

// LoginRequest segue o formato OAuth2 password: username = email.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// POST /api/v1/auth/login (form-urlencoded ou JSON)
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	tok, err := ctl.Auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		return helper.FiberFromDBError(err, helper.DBErrorMessages{})
	}
	return helper.JsonOK(c, tok)
}

// GET /api/v1/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	aluno := auth.CurrentAluno(c)
	if aluno == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Não autenticado")
	}
	return helper.JsonOK(c, alunoDTO.NewAlunoResponse(aluno))
}
