// file: internals/features/academics/disciplinas/dto/disciplina_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"gestao_tarefas_backend/internals/features/academics/disciplinas/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

type CreateDisciplinaRequest struct {
	Nome   string  `json:"nome"   form:"nome"   validate:"required,min=2,max=255"`
	Codigo *string `json:"codigo" form:"codigo" validate:"omitempty,max=50"`
}

func (r *CreateDisciplinaRequest) Normalize() {
	r.Nome = helper.NormalizeText(r.Nome)
	r.Codigo = helper.NormalizeTextPtr(r.Codigo)
}

func (r *CreateDisciplinaRequest) ToModel() *model.DisciplinaModel {
	return &model.DisciplinaModel{Nome: r.Nome, Codigo: r.Codigo}
}

type UpdateDisciplinaRequest struct {
	helper.Presence `json:"-" form:"-"`

	Nome   *string `json:"nome"   form:"nome"   validate:"omitnil,min=2,max=255"`
	Codigo *string `json:"codigo" form:"codigo" validate:"omitempty,max=50"`
}

func (r *UpdateDisciplinaRequest) Normalize() {
	if r.Nome != nil {
		s := helper.NormalizeText(*r.Nome)
		r.Nome = &s
	}
	if r.Codigo != nil {
		s := helper.NormalizeText(*r.Codigo)
		r.Codigo = &s
	}
}

// Apply: codigo null ou "" limpa o código.
func (r *UpdateDisciplinaRequest) Apply(m *model.DisciplinaModel) bool {
	changed := false
	if r.Nome != nil && *r.Nome != m.Nome {
		m.Nome = *r.Nome
		changed = true
	}
	if r.Codigo != nil || r.Has("codigo") {
		next := helper.NormalizeTextPtr(r.Codigo)
		if !helper.SameStringPtr(m.Codigo, next) {
			m.Codigo = next
			changed = true
		}
	}
	return changed
}

type DisciplinaResponse struct {
	ID       uuid.UUID `json:"id"`
	Nome     string    `json:"nome"`
	Codigo   *string   `json:"codigo"`
	CriadaEm time.Time `json:"criada_em"`
}

func NewDisciplinaResponse(m *model.DisciplinaModel) DisciplinaResponse {
	return DisciplinaResponse{ID: m.ID, Nome: m.Nome, Codigo: m.Codigo, CriadaEm: m.CriadaEm}
}

func NewDisciplinaResponses(rows []model.DisciplinaModel) []DisciplinaResponse {
	out := make([]DisciplinaResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewDisciplinaResponse(&rows[i]))
	}
	return out
}
