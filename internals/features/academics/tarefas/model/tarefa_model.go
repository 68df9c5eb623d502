// file: internals/features/academics/tarefas/model/tarefa_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	alunoModel "gestao_tarefas_backend/internals/features/academics/alunos/model"
	disciplinaModel "gestao_tarefas_backend/internals/features/academics/disciplinas/model"
	professorModel "gestao_tarefas_backend/internals/features/academics/professores/model"
)

type TipoTarefa string

const (
	TipoAtividade TipoTarefa = "ATIVIDADE"
	TipoProjeto   TipoTarefa = "PROJETO"
)

type StatusTarefa string

const (
	StatusPendente    StatusTarefa = "PENDENTE"
	StatusEmAndamento StatusTarefa = "EM_ANDAMENTO"
	StatusConcluida   StatusTarefa = "CONCLUIDA"
)

func (s StatusTarefa) Valid() bool {
	switch s {
	case StatusPendente, StatusEmAndamento, StatusConcluida:
		return true
	}
	return false
}

type TarefaModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	AlunoID      uuid.UUID `gorm:"column:aluno_id;type:uuid;not null;index"  json:"aluno_id"`
	DisciplinaID uuid.UUID `gorm:"column:disciplina_id;type:uuid;not null"   json:"disciplina_id"`
	ProfessorID  uuid.UUID `gorm:"column:professor_id;type:uuid;not null"    json:"professor_id"`

	Tipo        TipoTarefa   `gorm:"column:tipo;type:varchar(20);not null"                          json:"tipo"`
	Titulo      string       `gorm:"column:titulo;type:varchar(255);not null"                       json:"titulo"`
	Descricao   *string      `gorm:"column:descricao;type:text"                                     json:"descricao"`
	Pontos      int          `gorm:"column:pontos;not null;check:chk_tarefas_pontos,pontos >= 0"   json:"pontos"`
	DataEntrega time.Time    `gorm:"column:data_entrega;not null"                                   json:"data_entrega"`
	Status      StatusTarefa `gorm:"column:status;type:varchar(20);not null;default:'PENDENTE';index" json:"status"`

	IniciadaEm  *time.Time `gorm:"column:iniciada_em"  json:"iniciada_em"`
	ConcluidaEm *time.Time `gorm:"column:concluida_em" json:"concluida_em"`

	CriadaEm     time.Time `gorm:"column:criada_em;not null;autoCreateTime"     json:"criada_em"`
	AtualizadaEm time.Time `gorm:"column:atualizada_em;not null;autoUpdateTime" json:"atualizada_em"`

	// só constraints
	Aluno      *alunoModel.AlunoModel           `gorm:"foreignKey:AlunoID;references:ID"      json:"-"`
	Disciplina *disciplinaModel.DisciplinaModel `gorm:"foreignKey:DisciplinaID;references:ID" json:"-"`
	Professor  *professorModel.ProfessorModel   `gorm:"foreignKey:ProfessorID;references:ID"  json:"-"`
}

func (TarefaModel) TableName() string { return "tarefas" }

func (m *TarefaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = StatusPendente
	}
	return nil
}

// ApplyStatus troca o status e carimba iniciada_em / concluida_em na primeira vez.
// Nenhum carimbo é apagado; qualquer status pode ser definido diretamente.
func (m *TarefaModel) ApplyStatus(s StatusTarefa, now time.Time) {
	switch {
	case s == StatusEmAndamento && m.IniciadaEm == nil:
		m.IniciadaEm = &now
	case s == StatusConcluida && m.ConcluidaEm == nil:
		m.ConcluidaEm = &now
	}
	m.Status = s
}
