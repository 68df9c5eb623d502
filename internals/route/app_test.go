package routes_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "gestao_tarefas_backend/internals/databases"
	"gestao_tarefas_backend/internals/testkit"
)

func TestRootBanner(t *testing.T) {
	env := testkit.NewEnv(t)

	res := env.Do(t, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, res.Status)
	body := res.Map(t)
	assert.Equal(t, "API de Gestão de Tarefas Escolares", body["message"])
	assert.Equal(t, "Versao 1.0.0", body["detail"])
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	env := testkit.NewEnv(t)

	res := env.Do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, res.Status)
	body := res.Map(t)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "test", body["environment"])
	assert.NotEmpty(t, body["server_time"])

	database.Close(env.DB)
	res = env.Do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, res.Status)
	assert.Equal(t, "error", res.Map(t)["status"])
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	env := testkit.NewEnv(t)

	res := env.Do(t, http.MethodGet, "/api/v1/nao-existe", nil, "")
	assert.Equal(t, http.StatusNotFound, res.Status)
	body := res.Map(t)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestMalformedJSONBody(t *testing.T) {
	env := testkit.NewEnv(t)

	res := env.Do(t, http.MethodPost, "/api/v1/turmas", `{"nome":`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
}
