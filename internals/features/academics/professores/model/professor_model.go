// file: internals/features/academics/professores/model/professor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	disciplinaModel "gestao_tarefas_backend/internals/features/academics/disciplinas/model"
)

type ProfessorModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"                json:"id"`
	Nome     string    `gorm:"column:nome;type:varchar(255);not null"        json:"nome"`
	Email    *string   `gorm:"column:email;type:varchar(255);uniqueIndex"    json:"email"`
	CriadoEm time.Time `gorm:"column:criado_em;not null;autoCreateTime"      json:"criado_em"`
}

func (ProfessorModel) TableName() string { return "professores" }

func (m *ProfessorModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ProfessorDisciplinaModel é a tabela N:N; chave composta, sem atributos próprios.
type ProfessorDisciplinaModel struct {
	ProfessorID  uuid.UUID `gorm:"column:professor_id;type:uuid;primaryKey"  json:"professor_id"`
	DisciplinaID uuid.UUID `gorm:"column:disciplina_id;type:uuid;primaryKey" json:"disciplina_id"`

	Professor  *ProfessorModel                  `gorm:"foreignKey:ProfessorID;references:ID"  json:"-"`
	Disciplina *disciplinaModel.DisciplinaModel `gorm:"foreignKey:DisciplinaID;references:ID" json:"-"`
}

func (ProfessorDisciplinaModel) TableName() string { return "professor_disciplina" }
