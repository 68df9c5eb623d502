// file: internals/features/academics/tarefas/controller/tarefa_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/tarefas/dto"
	"gestao_tarefas_backend/internals/features/academics/tarefas/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

const msgTarefaNotFound = "Tarefa não encontrada"

type TarefaController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewTarefaController(db *gorm.DB) *TarefaController {
	return &TarefaController{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

// POST /api/v1/tarefas
func (ctl *TarefaController) Create(c *fiber.Ctx) error {
	var req dto.CreateTarefaRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	m := req.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{
			ForeignKey: "Referência inválida: aluno, disciplina ou professor não existe",
		})
	}
	return helper.JsonCreated(c, dto.NewTarefaResponse(m))
}

func parseListQuery(c *fiber.Ctx) (dto.ListTarefaQuery, error) {
	var q dto.ListTarefaQuery

	alunoID, err := helper.ParseUUIDQuery(c, "aluno_id")
	if err != nil {
		return q, err
	}
	q.AlunoID = alunoID

	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s := model.StatusTarefa(strings.ToUpper(raw))
		if !s.Valid() {
			return q, helper.NewValidationError("status", "Status inválido: "+raw)
		}
		q.Status = &s
	}
	return q, nil
}

// GET /api/v1/tarefas?skip=&limit=&aluno_id=&status=
func (ctl *TarefaController) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)

	dbq := ctl.DB.WithContext(c.UserContext()).Model(&model.TarefaModel{})
	if q.AlunoID != nil {
		dbq = dbq.Where("aluno_id = ?", *q.AlunoID)
	}
	if q.Status != nil {
		dbq = dbq.Where("status = ?", *q.Status)
	}

	var rows []model.TarefaModel
	if err := dbq.
		Order("criada_em ASC, id ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{})
	}
	return helper.JsonOK(c, dto.NewTarefaResponses(rows))
}

// GET /api/v1/tarefas/:id
func (ctl *TarefaController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.TarefaModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{NotFound: msgTarefaNotFound})
	}
	return helper.JsonOK(c, dto.NewTarefaResponse(&m))
}

// PUT /api/v1/tarefas/:id
func (ctl *TarefaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTarefaRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	var m model.TarefaModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		if !req.Apply(&m, ctl.Now()) {
			return nil
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{NotFound: msgTarefaNotFound})
	}
	return helper.JsonOK(c, dto.NewTarefaResponse(&m))
}

// DELETE /api/v1/tarefas/:id
func (ctl *TarefaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.TarefaModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{NotFound: msgTarefaNotFound})
	}
	return helper.JsonMessage(c, "Tarefa removida com sucesso", "ID: "+id.String())
}
