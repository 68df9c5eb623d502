package seeds

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	alunoModel "gestao_tarefas_backend/internals/features/academics/alunos/model"
	disciplinaModel "gestao_tarefas_backend/internals/features/academics/disciplinas/model"
	professorModel "gestao_tarefas_backend/internals/features/academics/professores/model"
	tarefaModel "gestao_tarefas_backend/internals/features/academics/tarefas/model"
	turmaModel "gestao_tarefas_backend/internals/features/academics/turmas/model"
	authService "gestao_tarefas_backend/internals/features/auth/service"
)

//go:embed data/*.json
var dataFS embed.FS

// ErrDatabaseNotEmpty: já existem turmas e force não foi pedido.
var ErrDatabaseNotEmpty = errors.New("banco já contém dados; use --force para limpar e recriar")

type turmaSeed struct {
	Nome string `json:"nome"`
}

type alunoSeed struct {
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	Senha      string `json:"senha"`
	TurmaIndex int    `json:"turma_index"`
}

type disciplinaSeed struct {
	Nome   string  `json:"nome"`
	Codigo *string `json:"codigo"`
}

type professorSeed struct {
	Nome        string  `json:"nome"`
	Email       *string `json:"email"`
	Disciplinas []int   `json:"disciplinas"`
}

// Datas relativas ao momento do seed.
type tarefaSeed struct {
	AlunoIndex      int                      `json:"aluno_index"`
	Tipo            tarefaModel.TipoTarefa   `json:"tipo"`
	Titulo          string                   `json:"titulo"`
	Descricao       *string                  `json:"descricao"`
	DisciplinaIndex int                      `json:"disciplina_index"`
	ProfessorIndex  int                      `json:"professor_index"`
	Pontos          int                      `json:"pontos"`
	EntregaEmDias   int                      `json:"entrega_em_dias"`
	Status          tarefaModel.StatusTarefa `json:"status"`
	IniciadaHaDias  *int                     `json:"iniciada_ha_dias"`
	ConcluidaHaDias *int                     `json:"concluida_ha_dias"`
}

type seedData struct {
	Turmas      []turmaSeed
	Alunos      []alunoSeed
	Disciplinas []disciplinaSeed
	Professores []professorSeed
	Tarefas     []tarefaSeed
}

func loadSeedData() (*seedData, error) {
	data := &seedData{}
	for name, dst := range map[string]any{
		"turmas.json":      &data.Turmas,
		"alunos.json":      &data.Alunos,
		"disciplinas.json": &data.Disciplinas,
		"professores.json": &data.Professores,
		"tarefas.json":     &data.Tarefas,
	} {
		if err := readJSON(name, dst); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// Summary conta o que foi criado.
type Summary struct {
	Turmas      int
	Alunos      int
	Disciplinas int
	Professores int
	Tarefas     int
}

func readJSON(name string, dst any) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func inRange(i, n int) bool { return i >= 0 && i < n }

func daysFrom(now time.Time, days int) time.Time {
	return now.Add(time.Duration(days) * 24 * time.Hour)
}

// Truncate apaga todas as tabelas na ordem das FKs.
func Truncate(db *gorm.DB) error {
	log.Println("🧹 Limpando banco de dados...")
	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&tarefaModel.TarefaModel{},
			&professorModel.ProfessorDisciplinaModel{},
			&alunoModel.AlunoModel{},
			&turmaModel.TurmaModel{},
			&professorModel.ProfessorModel{},
			&disciplinaModel.DisciplinaModel{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// hasData: alguma tabela do domínio já tem linhas.
func hasData(db *gorm.DB) (bool, error) {
	for _, m := range []interface{}{
		&turmaModel.TurmaModel{},
		&alunoModel.AlunoModel{},
		&disciplinaModel.DisciplinaModel{},
		&professorModel.ProfessorModel{},
		&tarefaModel.TarefaModel{},
	} {
		var n int64
		if err := db.Model(m).Count(&n).Error; err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

// RunAllSeeds popula o banco com os dados de demonstração (tudo numa transação).
func RunAllSeeds(ctx context.Context, db *gorm.DB, force bool, now time.Time) (*Summary, error) {
	db = db.WithContext(ctx)

	nonEmpty, err := hasData(db)
	if err != nil {
		return nil, err
	}
	if nonEmpty {
		if !force {
			return nil, ErrDatabaseNotEmpty
		}
		log.Println("⚠️ Banco já contém dados!")
		if err := Truncate(db); err != nil {
			return nil, err
		}
	}

	data, err := loadSeedData()
	if err != nil {
		return nil, err
	}
	return insertSeeds(db, data, now)
}

// insertSeeds grava data numa única transação; índices inválidos abortam tudo.
func insertSeeds(db *gorm.DB, data *seedData, now time.Time) (*Summary, error) {
	// hash fora da transação (bcrypt é lento); uma senha costuma se repetir
	hashes := map[string]string{}
	for _, a := range data.Alunos {
		if _, ok := hashes[a.Senha]; ok {
			continue
		}
		h, err := authService.HashPassword(a.Senha)
		if err != nil {
			return nil, err
		}
		hashes[a.Senha] = h
	}

	sum := &Summary{}
	err := db.Transaction(func(tx *gorm.DB) error {
		turmas := make([]turmaModel.TurmaModel, 0, len(data.Turmas))
		for _, t := range data.Turmas {
			turmas = append(turmas, turmaModel.TurmaModel{Nome: t.Nome})
		}
		if err := tx.Create(&turmas).Error; err != nil {
			return fmt.Errorf("turmas: %w", err)
		}
		log.Printf("✅ %d turmas criadas", len(turmas))

		alunos := make([]alunoModel.AlunoModel, 0, len(data.Alunos))
		for _, a := range data.Alunos {
			if !inRange(a.TurmaIndex, len(turmas)) {
				return fmt.Errorf("aluno %s: turma_index %d fora do intervalo", a.Email, a.TurmaIndex)
			}
			alunos = append(alunos, alunoModel.AlunoModel{
				Nome:      a.Nome,
				Email:     a.Email,
				SenhaHash: hashes[a.Senha],
				TurmaID:   turmas[a.TurmaIndex].ID,
			})
		}
		if err := tx.Create(&alunos).Error; err != nil {
			return fmt.Errorf("alunos: %w", err)
		}
		log.Printf("✅ %d alunos criados", len(alunos))

		disciplinas := make([]disciplinaModel.DisciplinaModel, 0, len(data.Disciplinas))
		for _, d := range data.Disciplinas {
			disciplinas = append(disciplinas, disciplinaModel.DisciplinaModel{Nome: d.Nome, Codigo: d.Codigo})
		}
		if err := tx.Create(&disciplinas).Error; err != nil {
			return fmt.Errorf("disciplinas: %w", err)
		}
		log.Printf("✅ %d disciplinas criadas", len(disciplinas))

		professores := make([]professorModel.ProfessorModel, 0, len(data.Professores))
		for _, p := range data.Professores {
			professores = append(professores, professorModel.ProfessorModel{Nome: p.Nome, Email: p.Email})
		}
		if err := tx.Create(&professores).Error; err != nil {
			return fmt.Errorf("professores: %w", err)
		}
		var links []professorModel.ProfessorDisciplinaModel
		for i, p := range data.Professores {
			for _, di := range p.Disciplinas {
				if !inRange(di, len(disciplinas)) {
					return fmt.Errorf("professor %s: disciplina %d fora do intervalo", p.Nome, di)
				}
				links = append(links, professorModel.ProfessorDisciplinaModel{
					ProfessorID:  professores[i].ID,
					DisciplinaID: disciplinas[di].ID,
				})
			}
		}
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return fmt.Errorf("professor_disciplina: %w", err)
			}
		}
		log.Printf("✅ %d professores criados (%d vínculos)", len(professores), len(links))

		tarefas := make([]tarefaModel.TarefaModel, 0, len(data.Tarefas))
		for _, t := range data.Tarefas {
			if !inRange(t.AlunoIndex, len(alunos)) || !inRange(t.DisciplinaIndex, len(disciplinas)) || !inRange(t.ProfessorIndex, len(professores)) {
				return fmt.Errorf("tarefa %q: índice fora do intervalo", t.Titulo)
			}
			m := tarefaModel.TarefaModel{
				AlunoID:      alunos[t.AlunoIndex].ID,
				DisciplinaID: disciplinas[t.DisciplinaIndex].ID,
				ProfessorID:  professores[t.ProfessorIndex].ID,
				Tipo:         t.Tipo,
				Titulo:       t.Titulo,
				Descricao:    t.Descricao,
				Pontos:       t.Pontos,
				DataEntrega:  daysFrom(now, t.EntregaEmDias),
				Status:       t.Status,
			}
			if t.IniciadaHaDias != nil {
				v := daysFrom(now, -*t.IniciadaHaDias)
				m.IniciadaEm = &v
			}
			if t.ConcluidaHaDias != nil {
				v := daysFrom(now, -*t.ConcluidaHaDias)
				m.ConcluidaEm = &v
			}
			tarefas = append(tarefas, m)
		}
		if err := tx.Create(&tarefas).Error; err != nil {
			return fmt.Errorf("tarefas: %w", err)
		}
		log.Printf("✅ %d tarefas criadas", len(tarefas))

		*sum = Summary{
			Turmas:      len(turmas),
			Alunos:      len(alunos),
			Disciplinas: len(disciplinas),
			Professores: len(professores),
			Tarefas:     len(tarefas),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sum, nil
}
