// file: internals/features/academics/professores/controller/professor_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/professores/dto"
	"gestao_tarefas_backend/internals/features/academics/professores/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

const msgProfessorNotFound = "Professor não encontrado"

var professorWriteErrors = helper.DBErrorMessages{
	NotFound:  msgProfessorNotFound,
	Duplicate: "Email já cadastrado",
}

type ProfessorController struct {
	DB *gorm.DB
}

func NewProfessorController(db *gorm.DB) *ProfessorController {
	return &ProfessorController{DB: db}
}

// POST /api/v1/professores
func (ctl *ProfessorController) Create(c *fiber.Ctx) error {
	var req dto.CreateProfessorRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	m := req.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return helper.FiberFromDBError(err, professorWriteErrors)
	}
	return helper.JsonCreated(c, dto.NewProfessorResponse(m))
}

// GET /api/v1/professores?skip=&limit=
func (ctl *ProfessorController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)

	var rows []model.ProfessorModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("criado_em ASC, id ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{})
	}
	return helper.JsonOK(c, dto.NewProfessorResponses(rows))
}

// GET /api/v1/professores/:id
func (ctl *ProfessorController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.ProfessorModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{NotFound: msgProfessorNotFound})
	}
	return helper.JsonOK(c, dto.NewProfessorResponse(&m))
}

// PUT /api/v1/professores/:id
func (ctl *ProfessorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateProfessorRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	var m model.ProfessorModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		if !req.Apply(&m) {
			return nil
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return helper.FiberFromDBError(err, professorWriteErrors)
	}
	return helper.JsonOK(c, dto.NewProfessorResponse(&m))
}

// DELETE /api/v1/professores/:id
// Vínculos em professor_disciplina saem junto; tarefas do professor bloqueiam (409).
func (ctl *ProfessorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ProfessorDisciplinaModel{}, "professor_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ProfessorModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{
			NotFound:   msgProfessorNotFound,
			ForeignKey: "Professor possui registros vinculados (tarefas)",
			FKStatus:   fiber.StatusConflict,
		})
	}
	return helper.JsonMessage(c, "Professor removido com sucesso", "ID: "+id.String())
}
