// file: internals/features/academics/turmas/model/turma_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TurmaModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"           json:"id"`
	Nome     string    `gorm:"column:nome;type:varchar(255);not null"   json:"nome"`
	CriadaEm time.Time `gorm:"column:criada_em;not null;autoCreateTime" json:"criada_em"`
}

func (TurmaModel) TableName() string { return "turmas" }

func (m *TurmaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
