// file: internals/features/academics/disciplinas/controller/disciplina_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/disciplinas/dto"
	"gestao_tarefas_backend/internals/features/academics/disciplinas/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

const msgDisciplinaNotFound = "Disciplina não encontrada"

type DisciplinaController struct {
	DB *gorm.DB
}

func NewDisciplinaController(db *gorm.DB) *DisciplinaController {
	return &DisciplinaController{DB: db}
}

// POST /api/v1/disciplinas
func (ctl *DisciplinaController) Create(c *fiber.Ctx) error {
	var req dto.CreateDisciplinaRequest
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
	return helper.JsonCreated(c, dto.NewDisciplinaResponse(m))
}

// GET /api/v1/disciplinas?skip=&limit=
func (ctl *DisciplinaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)

	var rows []model.DisciplinaModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("criada_em ASC, id ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{})
	}
	return helper.JsonOK(c, dto.NewDisciplinaResponses(rows))
}

// GET /api/v1/disciplinas/:id
func (ctl *DisciplinaController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.DisciplinaModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{NotFound: msgDisciplinaNotFound})
	}
	return helper.JsonOK(c, dto.NewDisciplinaResponse(&m))
}

// PUT /api/v1/disciplinas/:id
func (ctl *DisciplinaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateDisciplinaRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	var m model.DisciplinaModel
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
		return helper.FiberFromDBError(err, helper.DBErrorMessages{NotFound: msgDisciplinaNotFound})
	}
	return helper.JsonOK(c, dto.NewDisciplinaResponse(&m))
}

// DELETE /api/v1/disciplinas/:id
func (ctl *DisciplinaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.DisciplinaModel{}, "id = ?", id)
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
			NotFound:   msgDisciplinaNotFound,
			ForeignKey: "Disciplina possui registros vinculados (professores ou tarefas)",
			FKStatus:   fiber.StatusConflict,
		})
	}
	return helper.JsonMessage(c, "Disciplina removida com sucesso", "ID: "+id.String())
}
