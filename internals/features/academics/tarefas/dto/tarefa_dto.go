// file: internals/features/academics/tarefas/dto/tarefa_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gestao_tarefas_backend/internals/features/academics/tarefas/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

// Status não entra na criação: toda tarefa nasce PENDENTE.
type CreateTarefaRequest struct {
	AlunoID      uuid.UUID        `json:"aluno_id"      form:"aluno_id"      validate:"required"`
	DisciplinaID uuid.UUID        `json:"disciplina_id" form:"disciplina_id" validate:"required"`
	ProfessorID  uuid.UUID        `json:"professor_id"  form:"professor_id"  validate:"required"`
	Tipo         model.TipoTarefa `json:"tipo"          form:"tipo"          validate:"required,oneof=ATIVIDADE PROJETO"`
	Titulo       string           `json:"titulo"        form:"titulo"        validate:"required,min=2,max=255"`
	Descricao    *string          `json:"descricao"     form:"descricao"`
	Pontos       *int             `json:"pontos"        form:"pontos"        validate:"required,gte=0"`
	DataEntrega  *helper.FlexTime `json:"data_entrega"  form:"data_entrega"  validate:"required"`
}

func (r *CreateTarefaRequest) Normalize() {
	r.Tipo = model.TipoTarefa(strings.ToUpper(strings.TrimSpace(string(r.Tipo))))
	r.Titulo = helper.NormalizeText(r.Titulo)
	r.Descricao = helper.NormalizeTextPtr(r.Descricao)
}

func (r *CreateTarefaRequest) ToModel() *model.TarefaModel {
	return &model.TarefaModel{
		AlunoID:      r.AlunoID,
		DisciplinaID: r.DisciplinaID,
		ProfessorID:  r.ProfessorID,
		Tipo:         r.Tipo,
		Titulo:       r.Titulo,
		Descricao:    r.Descricao,
		Pontos:       *r.Pontos,
		DataEntrega:  r.DataEntrega.Time,
		Status:       model.StatusPendente,
	}
}

// UpdateTarefaRequest: vínculos (aluno/disciplina/professor) não mudam depois de criada.
type UpdateTarefaRequest struct {
	helper.Presence `json:"-" form:"-"`

	Tipo        *model.TipoTarefa   `json:"tipo"         form:"tipo"         validate:"omitnil,oneof=ATIVIDADE PROJETO"`
	Titulo      *string             `json:"titulo"       form:"titulo"       validate:"omitnil,min=2,max=255"`
	Descricao   *string             `json:"descricao"    form:"descricao"`
	Pontos      *int                `json:"pontos"       form:"pontos"       validate:"omitnil,gte=0"`
	DataEntrega *helper.FlexTime    `json:"data_entrega" form:"data_entrega"`
	Status      *model.StatusTarefa `json:"status"       form:"status"       validate:"omitnil,oneof=PENDENTE EM_ANDAMENTO CONCLUIDA"`
}

func (r *UpdateTarefaRequest) Normalize() {
	if r.Tipo != nil {
		t := model.TipoTarefa(strings.ToUpper(strings.TrimSpace(string(*r.Tipo))))
		r.Tipo = &t
	}
	if r.Status != nil {
		s := model.StatusTarefa(strings.ToUpper(strings.TrimSpace(string(*r.Status))))
		r.Status = &s
	}
	if r.Titulo != nil {
		s := helper.NormalizeText(*r.Titulo)
		r.Titulo = &s
	}
	if r.Descricao != nil {
		s := helper.NormalizeText(*r.Descricao)
		r.Descricao = &s
	}
}

// Apply aplica os campos presentes; status passa por ApplyStatus (carimbos de data).
func (r *UpdateTarefaRequest) Apply(m *model.TarefaModel, now time.Time) bool {
	changed := false
	if r.Tipo != nil && *r.Tipo != m.Tipo {
		m.Tipo = *r.Tipo
		changed = true
	}
	if r.Titulo != nil && *r.Titulo != m.Titulo {
		m.Titulo = *r.Titulo
		changed = true
	}
	if r.Descricao != nil || r.Has("descricao") {
		next := helper.NormalizeTextPtr(r.Descricao)
		if !helper.SameStringPtr(m.Descricao, next) {
			m.Descricao = next
			changed = true
		}
	}
	if r.Pontos != nil && *r.Pontos != m.Pontos {
		m.Pontos = *r.Pontos
		changed = true
	}
	if r.DataEntrega != nil && !r.DataEntrega.Time.Equal(m.DataEntrega) {
		m.DataEntrega = r.DataEntrega.Time
		changed = true
	}
	if r.Status != nil {
		before := *m
		m.ApplyStatus(*r.Status, now)
		if before.Status != m.Status || before.IniciadaEm != m.IniciadaEm || before.ConcluidaEm != m.ConcluidaEm {
			changed = true
		}
	}
	return changed
}

/* ===================== QUERY ===================== */

// ListTarefaQuery são os filtros opcionais de GET /tarefas.
type ListTarefaQuery struct {
	AlunoID *uuid.UUID
	Status  *model.StatusTarefa
}

/* ===================== RESPONSES ===================== */

type TarefaResponse struct {
	ID           uuid.UUID          `json:"id"`
	AlunoID      uuid.UUID          `json:"aluno_id"`
	DisciplinaID uuid.UUID          `json:"disciplina_id"`
	ProfessorID  uuid.UUID          `json:"professor_id"`
	Tipo         model.TipoTarefa   `json:"tipo"`
	Titulo       string             `json:"titulo"`
	Descricao    *string            `json:"descricao"`
	Pontos       int                `json:"pontos"`
	DataEntrega  time.Time          `json:"data_entrega"`
	Status       model.StatusTarefa `json:"status"`
	IniciadaEm   *time.Time         `json:"iniciada_em"`
	ConcluidaEm  *time.Time         `json:"concluida_em"`
	CriadaEm     time.Time          `json:"criada_em"`
	AtualizadaEm time.Time          `json:"atualizada_em"`
}

func NewTarefaResponse(m *model.TarefaModel) TarefaResponse {
	return TarefaResponse{
		ID:           m.ID,
		AlunoID:      m.AlunoID,
		DisciplinaID: m.DisciplinaID,
		ProfessorID:  m.ProfessorID,
		Tipo:         m.Tipo,
		Titulo:       m.Titulo,
		Descricao:    m.Descricao,
		Pontos:       m.Pontos,
		DataEntrega:  m.DataEntrega,
		Status:       m.Status,
		IniciadaEm:   m.IniciadaEm,
		ConcluidaEm:  m.ConcluidaEm,
		CriadaEm:     m.CriadaEm,
		AtualizadaEm: m.AtualizadaEm,
	}
}

func NewTarefaResponses(rows []model.TarefaModel) []TarefaResponse {
	out := make([]TarefaResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewTarefaResponse(&rows[i]))
	}
	return out
}
