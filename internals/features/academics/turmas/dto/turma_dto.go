// file: internals/features/academics/turmas/dto/turma_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"gestao_tarefas_backend/internals/features/academics/turmas/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateTurmaRequest struct {
	Nome string `json:"nome" form:"nome" validate:"required,min=2,max=255"`
}

func (r *CreateTurmaRequest) Normalize() {
	r.Nome = helper.NormalizeText(r.Nome)
}

func (r *CreateTurmaRequest) ToModel() *model.TurmaModel {
	return &model.TurmaModel{Nome: r.Nome}
}

// UpdateTurmaRequest é parcial: só o que vier no corpo é alterado.
type UpdateTurmaRequest struct {
	Nome *string `json:"nome" form:"nome" validate:"omitnil,min=2,max=255"`
}

func (r *UpdateTurmaRequest) Normalize() {
	if r.Nome != nil {
		s := helper.NormalizeText(*r.Nome)
		r.Nome = &s
	}
}

// Apply devolve true se algum campo mudou.
func (r *UpdateTurmaRequest) Apply(m *model.TurmaModel) bool {
	if r.Nome != nil && *r.Nome != m.Nome {
		m.Nome = *r.Nome
		return true
	}
	return false
}

/* ===================== RESPONSES ===================== */

type TurmaResponse struct {
	ID       uuid.UUID `json:"id"`
	Nome     string    `json:"nome"`
	CriadaEm time.Time `json:"criada_em"`
}

func NewTurmaResponse(m *model.TurmaModel) TurmaResponse {
	return TurmaResponse{ID: m.ID, Nome: m.Nome, CriadaEm: m.CriadaEm}
}

func NewTurmaResponses(rows []model.TurmaModel) []TurmaResponse {
	out := make([]TurmaResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewTurmaResponse(&rows[i]))
	}
	return out
}
