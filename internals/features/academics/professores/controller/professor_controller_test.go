package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestao_tarefas_backend/internals/features/academics/professores/model"
	"gestao_tarefas_backend/internals/testkit"
)

func TestProfessorCRUD(t *testing.T) {
	env := testkit.NewEnv(t)
	id := env.MustCreate(t, "/api/v1/professores", map[string]any{"nome": "Carlos Mendes", "email": "carlos.mendes@escola.com"})

	res := env.Do(t, http.MethodGet, "/api/v1/professores/"+id, nil, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "carlos.mendes@escola.com", res.Map(t)["email"])

	res = env.Do(t, http.MethodPut, "/api/v1/professores/"+id, map[string]any{"nome": "Carlos A. Mendes"}, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Carlos A. Mendes", res.Map(t)["nome"])

	res = env.Do(t, http.MethodPost, "/api/v1/professores", map[string]any{"nome": "Outro", "email": "carlos.mendes@escola.com"}, "")
	assert.Equal(t, http.StatusConflict, res.Status)

	res = env.Do(t, http.MethodDelete, "/api/v1/professores/"+id, nil, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Professor removido com sucesso", res.Map(t)["message"])

	res = env.Do(t, http.MethodGet, "/api/v1/professores/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Professor não encontrado", res.Map(t)["message"])
}

func TestProfessorDisciplinaLink(t *testing.T) {
	env := testkit.NewEnv(t)
	profID := env.MustCreate(t, "/api/v1/professores", map[string]any{"nome": "Carlos Mendes"})
	bdID := env.MustCreate(t, "/api/v1/disciplinas", map[string]any{"nome": "Banco de Dados"})
	algID := env.MustCreate(t, "/api/v1/disciplinas", map[string]any{"nome": "Algoritmos"})

	link := "/api/v1/professores/" + profID + "/disciplinas/"
	for i := 0; i < 2; i++ {
		res := env.Do(t, http.MethodPost, link+bdID, nil, "")
		require.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "Professor vinculado à disciplina com sucesso", res.Map(t)["message"])
	}
	require.Equal(t, http.StatusOK, env.Do(t, http.MethodPost, link+algID, nil, "").Status)

	var n int64
	require.NoError(t, env.DB.Model(&model.ProfessorDisciplinaModel{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)

	var disciplinas []map[string]any
	res := env.Do(t, http.MethodGet, "/api/v1/professores/"+profID+"/disciplinas", nil, "")
	require.Equal(t, http.StatusOK, res.Status)
	res.Decode(t, &disciplinas)
	require.Len(t, disciplinas, 2)
	assert.Equal(t, "Algoritmos", disciplinas[0]["nome"])
	assert.Equal(t, "Banco de Dados", disciplinas[1]["nome"])

	// remover o professor leva os vínculos junto
	require.Equal(t, http.StatusOK, env.Do(t, http.MethodDelete, "/api/v1/professores/"+profID, nil, "").Status)
	require.NoError(t, env.DB.Model(&model.ProfessorDisciplinaModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestProfessorDisciplinaLinkNotFound(t *testing.T) {
	env := testkit.NewEnv(t)
	profID := env.MustCreate(t, "/api/v1/professores", map[string]any{"nome": "Carlos Mendes"})
	missing := "5b1d8f0e-0000-4000-8000-000000000000"

	res := env.Do(t, http.MethodPost, "/api/v1/professores/"+profID+"/disciplinas/"+missing, nil, "")
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Professor ou disciplina não encontrados", res.Map(t)["message"])

	res = env.Do(t, http.MethodGet, "/api/v1/professores/"+missing+"/disciplinas", nil, "")
	assert.Equal(t, http.StatusNotFound, res.Status)
}

func TestProfessorEmailCanBeCleared(t *testing.T) {
	env := testkit.NewEnv(t)

	for _, vazio := range []any{nil, "", "   "} {
		id := env.MustCreate(t, "/api/v1/professores", map[string]any{"nome": "Carlos Mendes", "email": "carlos@escola.com"})
		path := "/api/v1/professores/" + id

		res := env.Do(t, http.MethodPut, path, map[string]any{"nome": "Carlos A. Mendes"}, "")
		require.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "carlos@escola.com", res.Map(t)["email"], "email ausente não muda")

		res = env.Do(t, http.MethodPut, path, map[string]any{"email": vazio}, "")
		require.Equal(t, http.StatusOK, res.Status)
		assert.Nil(t, res.Map(t)["email"], "email=%v", vazio)

		var stored model.ProfessorModel
		require.NoError(t, env.DB.First(&stored, "id = ?", id).Error)
		assert.Nil(t, stored.Email)

		require.Equal(t, http.StatusOK, env.Do(t, http.MethodDelete, path, nil, "").Status)
	}
}
