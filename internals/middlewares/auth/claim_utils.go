// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	alunoModel "gestao_tarefas_backend/internals/features/academics/alunos/model"
)

const (
	LocalAluno   = "aluno"
	LocalAlunoID = "aluno_id"
	LocalEmail   = "email"
)

var errNoToken = errors.New("token ausente")

// extractBearerToken aceita "Bearer <token>" (case-insensitive, espaços extras).
func extractBearerToken(c *fiber.Ctx) (string, error) {
	raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if raw == "" {
		return "", errNoToken
	}
	fields := strings.Fields(raw)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("formato de token inválido")
	}
	tok := strings.Trim(fields[1], "\"'")
	if tok == "" {
		return "", errNoToken
	}
	return tok, nil
}

func storeAlunoToLocals(c *fiber.Ctx, a *alunoModel.AlunoModel) {
	c.Locals(LocalAluno, a)
	c.Locals(LocalAlunoID, a.ID.String())
	c.Locals(LocalEmail, a.Email)
}

// CurrentAluno devolve o aluno autenticado por RequireAluno (nil fora de rota protegida).
func CurrentAluno(c *fiber.Ctx) *alunoModel.AlunoModel {
	a, _ := c.Locals(LocalAluno).(*alunoModel.AlunoModel)
	return a
}
