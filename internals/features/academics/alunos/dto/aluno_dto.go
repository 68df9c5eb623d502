// file: internals/features/academics/alunos/dto/aluno_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gestao_tarefas_backend/internals/features/academics/alunos/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

// Senha em texto puro só existe no request; o controller grava o hash.
type CreateAlunoRequest struct {
	Nome     string    `json:"nome"     form:"nome"     validate:"required,min=2,max=255"`
	Email    string    `json:"email"    form:"email"    validate:"required,email,max=255"`
	Password string    `json:"password" form:"password" validate:"required,min=8,max=128"`
	TurmaID  uuid.UUID `json:"turma_id" form:"turma_id" validate:"required"`
}

func (r *CreateAlunoRequest) Normalize() {
	r.Nome = helper.NormalizeText(r.Nome)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *CreateAlunoRequest) ToModel(senhaHash string) *model.AlunoModel {
	return &model.AlunoModel{
		Nome:      r.Nome,
		Email:     r.Email,
		SenhaHash: senhaHash,
		TurmaID:   r.TurmaID,
	}
}

type UpdateAlunoRequest struct {
	Nome     *string    `json:"nome"     form:"nome"     validate:"omitnil,min=2,max=255"`
	Email    *string    `json:"email"    form:"email"    validate:"omitnil,email,max=255"`
	Password *string    `json:"password" form:"password" validate:"omitnil,min=8,max=128"`
	TurmaID  *uuid.UUID `json:"turma_id" form:"turma_id"`
}

func (r *UpdateAlunoRequest) Normalize() {
	if r.Nome != nil {
		s := helper.NormalizeText(*r.Nome)
		r.Nome = &s
	}
	if r.Email != nil {
		s := strings.TrimSpace(*r.Email)
		r.Email = &s
	}
}

// Apply aplica os campos presentes, exceto password (o hash é feito pelo controller).
func (r *UpdateAlunoRequest) Apply(m *model.AlunoModel) bool {
	changed := false
	if r.Nome != nil && *r.Nome != m.Nome {
		m.Nome = *r.Nome
		changed = true
	}
	if r.Email != nil && *r.Email != m.Email {
		m.Email = *r.Email
		changed = true
	}
	if r.TurmaID != nil && *r.TurmaID != m.TurmaID {
		m.TurmaID = *r.TurmaID
		changed = true
	}
	return changed
}

/* ===================== RESPONSES ===================== */

type AlunoResponse struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	TurmaID      uuid.UUID `json:"turma_id"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

func NewAlunoResponse(m *model.AlunoModel) AlunoResponse {
	return AlunoResponse{
		ID:           m.ID,
		Nome:         m.Nome,
		Email:        m.Email,
		TurmaID:      m.TurmaID,
		CriadoEm:     m.CriadoEm,
		AtualizadoEm: m.AtualizadoEm,
	}
}

func NewAlunoResponses(rows []model.AlunoModel) []AlunoResponse {
	out := make([]AlunoResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewAlunoResponse(&rows[i]))
	}
	return out
}
