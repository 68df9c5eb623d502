// file: internals/features/academics/alunos/controller/aluno_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/features/academics/alunos/dto"
	"gestao_tarefas_backend/internals/features/academics/alunos/model"
	authService "gestao_tarefas_backend/internals/features/auth/service"
	helper "gestao_tarefas_backend/internals/helpers"
)

const msgAlunoNotFound = "Aluno não encontrado"

var alunoWriteErrors = helper.DBErrorMessages{
	NotFound:   msgAlunoNotFound,
	Duplicate:  "Email já cadastrado",
	ForeignKey: "Referência inválida: turma não existe",
}

type AlunoController struct {
	DB *gorm.DB
}

func NewAlunoController(db *gorm.DB) *AlunoController {
	return &AlunoController{DB: db}
}

// POST /api/v1/alunos
func (ctl *AlunoController) Create(c *fiber.Ctx) error {
	var req dto.CreateAlunoRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ALUNO] falha ao gerar hash: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	m := req.ToModel(hash)
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return helper.FiberFromDBError(err, alunoWriteErrors)
	}
	return helper.JsonCreated(c, dto.NewAlunoResponse(m))
}

// GET /api/v1/alunos?skip=&limit=
func (ctl *AlunoController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)

	var rows []model.AlunoModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("criado_em ASC, id ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{})
	}
	return helper.JsonOK(c, dto.NewAlunoResponses(rows))
}

// GET /api/v1/alunos/:id
func (ctl *AlunoController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.AlunoModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FiberFromDBError(err, helper.DBErrorMessages{NotFound: msgAlunoNotFound})
	}
	return helper.JsonOK(c, dto.NewAlunoResponse(&m))
}

// PUT /api/v1/alunos/:id (parcial; password é re-hasheada)
func (ctl *AlunoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateAlunoRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}

	var newHash string
	if req.Password != nil {
		if newHash, err = authService.HashPassword(*req.Password); err != nil {
			log.Printf("[ALUNO] falha ao gerar hash: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao processar senha")
		}
	}

	var m model.AlunoModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		changed := req.Apply(&m)
		if newHash != "" {
			m.SenhaHash = newHash
			changed = true
		}
		if !changed {
			return nil
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return helper.FiberFromDBError(err, alunoWriteErrors)
	}
	return helper.JsonOK(c, dto.NewAlunoResponse(&m))
}

// DELETE /api/v1/alunos/:id
func (ctl *AlunoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.AlunoModel{}, "id = ?", id)
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
			NotFound:   msgAlunoNotFound,
			ForeignKey: "Aluno possui registros vinculados (tarefas)",
			FKStatus:   fiber.StatusConflict,
		})
	}
	return helper.JsonMessage(c, "Aluno removido com sucesso", "ID: "+id.String())
}
