package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestao_tarefas_backend/internals/testkit"
)

type fixture struct {
	env          *testkit.Env
	alunoID      string
	disciplinaID string
	professorID  string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	env := testkit.NewEnv(t)
	turmaID := env.MustCreate(t, "/api/v1/turmas", map[string]any{"nome": "ADS 2025.1 - Manhã"})
	return fixture{
		env: env,
		alunoID: env.MustCreate(t, "/api/v1/alunos", map[string]any{
			"nome": "Ana Silva", "email": "ana.silva@email.com", "password": "senha123", "turma_id": turmaID,
		}),
		disciplinaID: env.MustCreate(t, "/api/v1/disciplinas", map[string]any{"nome": "Banco de Dados"}),
		professorID:  env.MustCreate(t, "/api/v1/professores", map[string]any{"nome": "Carlos Mendes"}),
	}
}

func (f fixture) tarefa(titulo string) map[string]any {
	return map[string]any{
		"aluno_id":      f.alunoID,
		"disciplina_id": f.disciplinaID,
		"professor_id":  f.professorID,
		"tipo":          "ATIVIDADE",
		"titulo":        titulo,
		"pontos":        10,
		"data_entrega":  "2025-06-30T23:59:00",
	}
}

func TestTarefaCreateStartsPendente(t *testing.T) {
	f := newFixture(t)
	body := f.tarefa("Modelagem ER")
	body["status"] = "CONCLUIDA"

	res := f.env.Do(t, http.MethodPost, "/api/v1/tarefas", body, "")
	require.Equal(t, http.StatusCreated, res.Status)
	got := res.Map(t)
	assert.Equal(t, "PENDENTE", got["status"])
	assert.Nil(t, got["iniciada_em"])
	assert.Nil(t, got["concluida_em"])
	assert.Equal(t, float64(10), got["pontos"])
	assert.Contains(t, got["data_entrega"], "2025-06-30T23:59:00")
}

func TestTarefaCreateValidation(t *testing.T) {
	f := newFixture(t)

	body := f.tarefa("Modelagem ER")
	body["pontos"] = -1
	body["tipo"] = "PROVA"
	res := f.env.Do(t, http.MethodPost, "/api/v1/tarefas", body, "")
	require.Equal(t, http.StatusUnprocessableEntity, res.Status)
	errs, _ := res.Map(t)["errors"].(map[string]any)
	assert.Contains(t, errs, "pontos")
	assert.Contains(t, errs, "tipo")

	body = f.tarefa("Modelagem ER")
	body["aluno_id"] = "5b1d8f0e-0000-4000-8000-000000000000"
	res = f.env.Do(t, http.MethodPost, "/api/v1/tarefas", body, "")
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestTarefaStatusTimestamps(t *testing.T) {
	f := newFixture(t)
	id := f.env.MustCreate(t, "/api/v1/tarefas", f.tarefa("Modelagem ER"))
	path := "/api/v1/tarefas/" + id

	res := f.env.Do(t, http.MethodPut, path, map[string]any{"status": "EM_ANDAMENTO"}, "")
	require.Equal(t, http.StatusOK, res.Status)
	started := res.Map(t)
	require.NotNil(t, started["iniciada_em"])
	assert.Nil(t, started["concluida_em"])

	res = f.env.Do(t, http.MethodPut, path, map[string]any{"status": "EM_ANDAMENTO"}, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, started["iniciada_em"], res.Map(t)["iniciada_em"])

	res = f.env.Do(t, http.MethodPut, path, map[string]any{"status": "CONCLUIDA"}, "")
	require.Equal(t, http.StatusOK, res.Status)
	done := res.Map(t)
	assert.Equal(t, "CONCLUIDA", done["status"])
	assert.Equal(t, started["iniciada_em"], done["iniciada_em"])
	require.NotNil(t, done["concluida_em"])

	// voltar para PENDENTE não apaga os carimbos
	res = f.env.Do(t, http.MethodPut, path, map[string]any{"status": "PENDENTE"}, "")
	require.Equal(t, http.StatusOK, res.Status)
	back := res.Map(t)
	assert.Equal(t, "PENDENTE", back["status"])
	assert.Equal(t, done["iniciada_em"], back["iniciada_em"])
	assert.Equal(t, done["concluida_em"], back["concluida_em"])

	res = f.env.Do(t, http.MethodPut, path, map[string]any{"status": "ARQUIVADA"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
}

func TestTarefaListFilters(t *testing.T) {
	f := newFixture(t)
	first := f.env.MustCreate(t, "/api/v1/tarefas", f.tarefa("Modelagem ER"))
	f.env.MustCreate(t, "/api/v1/tarefas", f.tarefa("Normalização"))
	require.Equal(t, http.StatusOK,
		f.env.Do(t, http.MethodPut, "/api/v1/tarefas/"+first, map[string]any{"status": "CONCLUIDA"}, "").Status)

	var rows []map[string]any
	f.env.Do(t, http.MethodGet, "/api/v1/tarefas?status=concluida", nil, "").Decode(t, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, first, rows[0]["id"])

	f.env.Do(t, http.MethodGet, "/api/v1/tarefas?aluno_id="+f.alunoID+"&status=PENDENTE", nil, "").Decode(t, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Normalização", rows[0]["titulo"])

	f.env.Do(t, http.MethodGet, "/api/v1/tarefas?aluno_id=5b1d8f0e-0000-4000-8000-000000000000", nil, "").Decode(t, &rows)
	assert.Empty(t, rows)

	res := f.env.Do(t, http.MethodGet, "/api/v1/tarefas?status=ARQUIVADA", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
	res = f.env.Do(t, http.MethodGet, "/api/v1/tarefas?aluno_id=abc", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
}

func TestTarefaDelete(t *testing.T) {
	f := newFixture(t)
	id := f.env.MustCreate(t, "/api/v1/tarefas", f.tarefa("Modelagem ER"))

	res := f.env.Do(t, http.MethodDelete, "/api/v1/tarefas/"+id, nil, "")
	require.Equal(t, http.StatusOK, res.Status)
	msg := res.Map(t)
	assert.Equal(t, "Tarefa removida com sucesso", msg["message"])
	assert.Equal(t, "ID: "+id, msg["detail"])

	res = f.env.Do(t, http.MethodGet, "/api/v1/tarefas/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Tarefa não encontrada", res.Map(t)["message"])
}

func TestAlunoWithTarefasCannotBeDeleted(t *testing.T) {
	f := newFixture(t)
	f.env.MustCreate(t, "/api/v1/tarefas", f.tarefa("Modelagem ER"))

	res := f.env.Do(t, http.MethodDelete, "/api/v1/alunos/"+f.alunoID, nil, "")
	assert.Equal(t, http.StatusConflict, res.Status)
}

func TestTarefaDescricaoNullClears(t *testing.T) {
	f := newFixture(t)
	body := f.tarefa("Modelagem ER")
	body["descricao"] = "Diagrama do estudo de caso"
	id := f.env.MustCreate(t, "/api/v1/tarefas", body)
	path := "/api/v1/tarefas/" + id

	res := f.env.Do(t, http.MethodPut, path, map[string]any{"pontos": 20}, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Diagrama do estudo de caso", res.Map(t)["descricao"])

	res = f.env.Do(t, http.MethodPut, path, map[string]any{"descricao": nil}, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Nil(t, res.Map(t)["descricao"])
}
