package configs

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t,
		"DB_DRIVER", "DATABASE_URL", "APP_ENV", "DEBUG", "PORT", "SECRET_KEY",
		"JWT_ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES", "CORS_ALLOW_ORIGINS",
		"API_TITLE", "API_VERSION",
	)

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, "1.0.0", cfg.APIVersion)
	assert.Equal(t, "API de Gestão de Tarefas Escolares", cfg.APITitle)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DEBUG", "false")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("JWT_ALGORITHM", "hs512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "90")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://ads.example.com")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file::memory:", cfg.DatabaseURL)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.Debug)
	assert.Equal(t, "s3cr3t", cfg.SecretKey)
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
	assert.Equal(t, 90*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "https://ads.example.com", cfg.CORSAllowOrigins)
}

func TestLoadBuildsPostgresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_HOST", "h")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "n")
	t.Setenv("DB_SSLMODE", "require")

	cfg := Load()
	require.Contains(t, cfg.DatabaseURL, "postgresql://u:p@h:5433/n?sslmode=require")
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "trinta")
	t.Setenv("DEBUG", "talvez")

	assert.Equal(t, 30, GetInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30))
	assert.True(t, GetBool("DEBUG", true))
}
