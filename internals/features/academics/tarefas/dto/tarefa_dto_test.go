package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestao_tarefas_backend/internals/features/academics/tarefas/model"
	helper "gestao_tarefas_backend/internals/helpers"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateApplyEmptyIsNoop(t *testing.T) {
	m := model.TarefaModel{Titulo: "Lista 01", Pontos: 10, Status: model.StatusPendente}
	before := m

	changed := (&UpdateTarefaRequest{}).Apply(&m, time.Now())
	assert.False(t, changed)
	assert.Equal(t, before, m)
}

func TestUpdateApplyFields(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	entrega := helper.FlexTime{Time: now.Add(48 * time.Hour)}
	m := model.TarefaModel{Titulo: "Lista 01", Pontos: 10, Status: model.StatusPendente}

	req := UpdateTarefaRequest{
		Titulo:      ptr("Lista 02"),
		Pontos:      ptr(0),
		DataEntrega: &entrega,
		Status:      ptr(model.StatusEmAndamento),
	}
	require.True(t, req.Apply(&m, now))

	assert.Equal(t, "Lista 02", m.Titulo)
	assert.Equal(t, 0, m.Pontos)
	assert.Equal(t, entrega.Time, m.DataEntrega)
	assert.Equal(t, model.StatusEmAndamento, m.Status)
	require.NotNil(t, m.IniciadaEm)
	assert.Equal(t, now, *m.IniciadaEm)
}

func TestUpdateSameStatusIsNoop(t *testing.T) {
	started := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	m := model.TarefaModel{Status: model.StatusEmAndamento, IniciadaEm: &started}

	changed := (&UpdateTarefaRequest{Status: ptr(model.StatusEmAndamento)}).Apply(&m, started.Add(time.Hour))
	assert.False(t, changed)
	assert.Equal(t, started, *m.IniciadaEm)
}

func TestCreateValidation(t *testing.T) {
	req := CreateTarefaRequest{Tipo: "atividade", Titulo: "  x ", Pontos: ptr(-1)}
	req.Normalize()
	assert.Equal(t, model.TipoAtividade, req.Tipo)

	verr := helper.ValidateStruct(&req)
	require.NotNil(t, verr)
	for _, field := range []string{"aluno_id", "disciplina_id", "professor_id", "titulo", "pontos", "data_entrega"} {
		assert.Contains(t, verr.Fields, field)
	}
	assert.NotContains(t, verr.Fields, "tipo")
}

func TestUpdateApplyClearsDescricaoWhenSent(t *testing.T) {
	m := model.TarefaModel{Titulo: "Lista 01", Descricao: ptr("Exercícios 1 a 5")}

	req := UpdateTarefaRequest{}
	assert.False(t, req.Apply(&m, time.Now()), "descricao ausente")
	require.NotNil(t, m.Descricao)

	req.SetFields(map[string]bool{"descricao": true})
	assert.True(t, req.Apply(&m, time.Now()))
	assert.Nil(t, m.Descricao)
}
