package controller_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "gestao_tarefas_backend/internals/features/auth/service"
	"gestao_tarefas_backend/internals/testkit"
)

func seedAluno(t *testing.T, env *testkit.Env) string {
	t.Helper()
	turmaID := env.MustCreate(t, "/api/v1/turmas", map[string]any{"nome": "ADS 2025.1 - Manhã"})
	return env.MustCreate(t, "/api/v1/alunos", map[string]any{
		"nome": "Ana Silva", "email": "ana.silva@email.com", "password": "senha123", "turma_id": turmaID,
	})
}

func login(t *testing.T, env *testkit.Env, email, password string) testkit.Response {
	t.Helper()
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	return env.Do(t, http.MethodPost, "/api/v1/auth/login", form, "")
}

func TestLoginForm(t *testing.T) {
	env := testkit.NewEnv(t)
	seedAluno(t, env)

	res := login(t, env, "ana.silva@email.com", "senha123")
	require.Equal(t, http.StatusOK, res.Status)
	body := res.Map(t)
	assert.Equal(t, "bearer", body["token_type"])
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, float64(30*60), body["expires_in"])
}

func TestLoginJSON(t *testing.T) {
	env := testkit.NewEnv(t)
	seedAluno(t, env)

	res := env.Do(t, http.MethodPost, "/api/v1/auth/login",
		map[string]any{"username": "ana.silva@email.com", "password": "senha123"}, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.NotEmpty(t, res.Map(t)["access_token"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := testkit.NewEnv(t)
	seedAluno(t, env)

	for _, tc := range []struct{ email, password string }{
		{"ana.silva@email.com", "errada123"},
		{"ninguem@email.com", "senha123"},
	} {
		res := login(t, env, tc.email, tc.password)
		require.Equal(t, http.StatusUnauthorized, res.Status, tc.email)
		assert.Equal(t, "Bearer", res.Header.Get("WWW-Authenticate"))
		assert.Equal(t, "Credenciais inválidas", res.Map(t)["message"])
	}

	res := login(t, env, "", "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
}

func TestMe(t *testing.T) {
	env := testkit.NewEnv(t)
	id := seedAluno(t, env)

	token, _ := login(t, env, "ana.silva@email.com", "senha123").Map(t)["access_token"].(string)
	require.NotEmpty(t, token)

	res := env.Do(t, http.MethodGet, "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, res.Status)
	me := res.Map(t)
	assert.Equal(t, id, me["id"])
	assert.Equal(t, "ana.silva@email.com", me["email"])
	assert.NotContains(t, me, "senha_hash")
}

func TestMeRejects(t *testing.T) {
	env := testkit.NewEnv(t)
	seedAluno(t, env)

	res := env.Do(t, http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Equal(t, "Não autenticado", res.Map(t)["message"])

	res = env.Do(t, http.MethodGet, "/api/v1/auth/me", nil, "nao.e.jwt")
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Equal(t, "Credenciais inválidas", res.Map(t)["message"])

	past, err := authService.NewTokenService(testkit.TestSecret, "HS256", time.Minute)
	require.NoError(t, err)
	old := time.Now().Add(-time.Hour)
	expired, _, err := past.WithClock(func() time.Time { return old }).Issue("ana.silva@email.com", 0)
	require.NoError(t, err)

	// exp vencido já falha na decodificação: mesma resposta de token inválido
	res = env.Do(t, http.MethodGet, "/api/v1/auth/me", nil, expired)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Equal(t, "Credenciais inválidas", res.Map(t)["message"])
	assert.Equal(t, "Bearer", res.Header.Get("WWW-Authenticate"))

	// token válido de quem não existe mais
	ghost, _, err := env.Auth.Tokens.Issue("removido@email.com", 0)
	require.NoError(t, err)
	res = env.Do(t, http.MethodGet, "/api/v1/auth/me", nil, ghost)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
}
