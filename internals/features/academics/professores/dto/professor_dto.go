// file: internals/features/academics/professores/dto/professor_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gestao_tarefas_backend/internals/features/academics/professores/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

type CreateProfessorRequest struct {
	Nome  string  `json:"nome"  form:"nome"  validate:"required,min=2,max=255"`
	Email *string `json:"email" form:"email" validate:"omitempty,email,max=255"`
}

func (r *CreateProfessorRequest) Normalize() {
	r.Nome = helper.NormalizeText(r.Nome)
	r.Email = trimPtr(r.Email)
}

func (r *CreateProfessorRequest) ToModel() *model.ProfessorModel {
	return &model.ProfessorModel{Nome: r.Nome, Email: r.Email}
}

// UpdateProfessorRequest: email null ou "" remove o email.
type UpdateProfessorRequest struct {
	helper.Presence `json:"-" form:"-"`

	Nome  *string `json:"nome"  form:"nome"  validate:"omitnil,min=2,max=255"`
	Email *string `json:"email" form:"email" validate:"omitempty,email,max=255"`
}

func (r *UpdateProfessorRequest) Normalize() {
	if r.Nome != nil {
		s := helper.NormalizeText(*r.Nome)
		r.Nome = &s
	}
	r.Email = trimPtr(r.Email)
}

func (r *UpdateProfessorRequest) Apply(m *model.ProfessorModel) bool {
	changed := false
	if r.Nome != nil && *r.Nome != m.Nome {
		m.Nome = *r.Nome
		changed = true
	}
	if (r.Email != nil || r.Has("email")) && !helper.SameStringPtr(m.Email, r.Email) {
		m.Email = r.Email
		changed = true
	}
	return changed
}

// trimPtr: "" vira nil (email de professor é opcional).
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

type ProfessorResponse struct {
	ID       uuid.UUID `json:"id"`
	Nome     string    `json:"nome"`
	Email    *string   `json:"email"`
	CriadoEm time.Time `json:"criado_em"`
}

func NewProfessorResponse(m *model.ProfessorModel) ProfessorResponse {
	return ProfessorResponse{ID: m.ID, Nome: m.Nome, Email: m.Email, CriadoEm: m.CriadoEm}
}

func NewProfessorResponses(rows []model.ProfessorModel) []ProfessorResponse {
	out := make([]ProfessorResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewProfessorResponse(&rows[i]))
	}
	return out
}
