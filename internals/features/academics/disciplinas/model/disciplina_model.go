// file: internals/features/academics/disciplinas/model/disciplina_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DisciplinaModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"           json:"id"`
	Nome     string    `gorm:"column:nome;type:varchar(255);not null"   json:"nome"`
	Codigo   *string   `gorm:"column:codigo;type:varchar(50)"           json:"codigo"`
	CriadaEm time.Time `gorm:"column:criada_em;not null;autoCreateTime" json:"criada_em"`
}

func (DisciplinaModel) TableName() string { return "disciplinas" }

func (m *DisciplinaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
