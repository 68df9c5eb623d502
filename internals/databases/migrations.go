package database

import (
	"log"

	"gorm.io/gorm"

	alunoModel "gestao_tarefas_backend/internals/features/academics/alunos/model"
	disciplinaModel "gestao_tarefas_backend/internals/features/academics/disciplinas/model"
	professorModel "gestao_tarefas_backend/internals/features/academics/professores/model"
	tarefaModel "gestao_tarefas_backend/internals/features/academics/tarefas/model"
	turmaModel "gestao_tarefas_backend/internals/features/academics/turmas/model"
)

// Models em ordem de dependência (FKs).
func Models() []interface{} {
	return []interface{}{
		&turmaModel.TurmaModel{},
		&alunoModel.AlunoModel{},
		&disciplinaModel.DisciplinaModel{},
		&professorModel.ProfessorModel{},
		&professorModel.ProfessorDisciplinaModel{},
		&tarefaModel.TarefaModel{},
	}
}

// Migrate cria/atualiza as tabelas. Idempotente.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Println("✅ Tabelas criadas/verificadas")
	return nil
}
