// file: internals/features/academics/alunos/model/aluno_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	turmaModel "gestao_tarefas_backend/internals/features/academics/turmas/model"
)

type AlunoModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"                      json:"id"`
	Nome      string    `gorm:"column:nome;type:varchar(255);not null"              json:"nome"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	SenhaHash string    `gorm:"column:senha_hash;type:varchar(255);not null"        json:"-"`

	// FK explícita; Turma existe só para gerar a constraint (nunca é carregada)
	TurmaID uuid.UUID              `gorm:"column:turma_id;type:uuid;not null;index" json:"turma_id"`
	Turma   *turmaModel.TurmaModel `gorm:"foreignKey:TurmaID;references:ID"         json:"-"`

	CriadoEm     time.Time `gorm:"column:criado_em;not null;autoCreateTime"     json:"criado_em"`
	AtualizadoEm time.Time `gorm:"column:atualizado_em;not null;autoUpdateTime" json:"atualizado_em"`
}

func (AlunoModel) TableName() string { return "alunos" }

func (m *AlunoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
