// Package testkit monta app + banco sqlite em memória para os testes de pacote.
package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/configs"
	database "gestao_tarefas_backend/internals/databases"
	authService "gestao_tarefas_backend/internals/features/auth/service"
	routes "gestao_tarefas_backend/internals/route"
)

const TestSecret = "segredo-de-teste"

func Config() configs.Config {
	return configs.Config{
		DBDriver:         database.DriverSQLite,
		DatabaseURL:      "file::memory:",
		AppEnv:           "test",
		Port:             "0",
		SecretKey:        TestSecret,
		JWTAlgorithm:     "HS256",
		AccessTokenTTL:   30 * time.Minute,
		APITitle:         "API de Gestão de Tarefas Escolares",
		APIVersion:       "1.0.0",
		CORSAllowOrigins: "*",
	}
}

// NewDB abre um sqlite em memória novo e migrado; fechado no Cleanup.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(Config())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

type Env struct {
	App  *fiber.App
	DB   *gorm.DB
	Auth *authService.AuthService
}

// NewEnv sobe a aplicação completa (middlewares + rotas) sobre um banco limpo.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	cfg := Config()
	db := NewDB(t)

	tokens, err := authService.NewTokenService(cfg.SecretKey, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	require.NoError(t, err)
	auth := authService.NewAuthService(db, tokens)

	app := routes.NewApp(cfg)
	routes.SetupRoutes(app, db, cfg, auth)
	return &Env{App: app, DB: db, Auth: auth}
}

// Response é o resultado cru de uma chamada.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Decode lê o corpo JSON em dst.
func (r Response) Decode(t *testing.T, dst any) {
	t.Helper()
	require.NoError(t, sonic.Unmarshal(r.Body, dst), "body: %s", r.Body)
}

// Map decodifica o corpo como objeto JSON genérico.
func (r Response) Map(t *testing.T) map[string]any {
	t.Helper()
	out := map[string]any{}
	r.Decode(t, &out)
	return out
}

// Do executa method/path. body url.Values vira form; outro não-nil vira JSON.
func (e *Env) Do(t *testing.T, method, path string, body any, token string) Response {
	t.Helper()

	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(b.Encode())
		contentType = fiber.MIMEApplicationForm
	case string:
		reader = strings.NewReader(b)
		contentType = fiber.MIMEApplicationJSON
	default:
		raw, err := sonic.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
		contentType = fiber.MIMEApplicationJSON
	}

	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return Response{Status: resp.StatusCode, Header: resp.Header, Body: raw}
}

// MustCreate faz POST e exige 201; devolve o "id" criado.
func (e *Env) MustCreate(t *testing.T, path string, body any) string {
	t.Helper()
	res := e.Do(t, http.MethodPost, path, body, "")
	require.Equal(t, http.StatusCreated, res.Status, "POST %s: %s", path, res.Body)
	id, _ := res.Map(t)["id"].(string)
	require.NotEmpty(t, id)
	return id
}
