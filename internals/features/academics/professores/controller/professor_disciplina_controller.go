// file: internals/features/academics/professores/controller/professor_disciplina_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	disciplinaDTO "gestao_tarefas_backend/internals/features/academics/disciplinas/dto"
	disciplinaModel "gestao_tarefas_backend/internals/features/academics/disciplinas/model"
	"gestao_tarefas_backend/internals/features/academics/professores/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

const msgVinculoNotFound = "Professor ou disciplina não encontrados"

// POST /api/v1/professores/:professor_id/disciplinas/:disciplina_id
// Vincular de novo um par existente não é erro.
func (ctl *ProfessorController) LinkDisciplina(c *fiber.Ctx) error {
	professorID, err := helper.ParseUUIDParam(c, "professor_id")
	if err != nil {
		return err
	}
	disciplinaID, err := helper.ParseUUIDParam(c, "disciplina_id")
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.ProfessorModel{}).Where("id = ?", professorID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&disciplinaModel.DisciplinaModel{}).Where("id = ?", disciplinaID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}

		link := model.ProfessorDisciplinaModel{ProfessorID: professorID, DisciplinaID: disciplinaID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
	if err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{
			NotFound:   msgVinculoNotFound,
			ForeignKey: msgVinculoNotFound,
			FKStatus:   fiber.StatusNotFound,
		})
	}
	return helper.JsonMessage(c, "Professor vinculado à disciplina com sucesso")
}

// GET /api/v1/professores/:id/disciplinas
func (ctl *ProfessorController) ListDisciplinas(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	var n int64
	if err := db.Model(&model.ProfessorModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{})
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, msgProfessorNotFound)
	}

	var rows []disciplinaModel.DisciplinaModel
	if err := db.
		Joins("JOIN professor_disciplina pd ON pd.disciplina_id = disciplinas.id").
		Where("pd.professor_id = ?", id).
		Order("disciplinas.nome ASC, disciplinas.id ASC").
		Find(&rows).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{})
	}
	return helper.JsonOK(c, disciplinaDTO.NewDisciplinaResponses(rows))
}
