// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	authService "gestao_tarefas_backend/internals/features/auth/service"
)

// RequireAluno exige Bearer token válido e deixa o aluno em c.Locals.
func RequireAluno(svc *authService.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Não autenticado")
		}

		aluno, err := svc.CurrentUser(c.UserContext(), token)
		switch {
		case err == nil:
		case errors.Is(err, authService.ErrTokenExpired):
			// Decode já recusa exp vencido; ramo redundante com a checagem de CurrentUser
			return fiber.NewError(fiber.StatusUnauthorized, "Token expirado")
		case errors.Is(err, authService.ErrInvalidCredentials):
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		default:
			log.Printf("[AUTH] erro ao resolver aluno do token: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao validar credenciais")
		}

		storeAlunoToLocals(c, aluno)
		return c.Next()
	}
}
