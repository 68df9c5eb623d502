// file: internals/features/academics/turmas/controller/turma_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/turmas/dto"
	"gestao_tarefas_backend/internals/features/academics/turmas/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

const msgTurmaNotFound = "Turma não encontrada"

type TurmaController struct {
	DB *gorm.DB
}

func NewTurmaController(db *gorm.DB) *TurmaController {
	return &TurmaController{DB: db}
}

// POST /api/v1/turmas
func (ctl *TurmaController) Create(c *fiber.Ctx) error {
	var req dto.CreateTurmaRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	m := req.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{})
	}
	return helper.JsonCreated(c, dto.NewTurmaResponse(m))
}

// GET /api/v1/turmas?skip=&limit=
func (ctl *TurmaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)

	var rows []model.TurmaModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("criada_em ASC, id ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{})
	}
	return helper.JsonOK(c, dto.NewTurmaResponses(rows))
}

// GET /api/v1/turmas/:id
func (ctl *TurmaController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.TurmaModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{NotFound: msgTurmaNotFound})
	}
	return helper.JsonOK(c, dto.NewTurmaResponse(&m))
}

// PUT /api/v1/turmas/:id
func (ctl *TurmaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTurmaRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	var m model.TurmaModel
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
		return helper.FiberFromDBError(err, helper.DBErrorMessages{NotFound: msgTurmaNotFound})
	}
	return helper.JsonOK(c, dto.NewTurmaResponse(&m))
}

// DELETE /api/v1/turmas/:id
func (ctl *TurmaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.TurmaModel{}, "id = ?", id)
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
			NotFound:   msgTurmaNotFound,
			ForeignKey: "Turma possui registros vinculados (alunos)",
			FKStatus:   fiber.StatusConflict,
		})
	}
	return helper.JsonMessage(c, "Turma removida com sucesso", "ID: "+id.String())
}
