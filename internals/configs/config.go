package configs

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	defaultSecretKey   = "change-me-in-production"
	defaultAPITitle    = "API de Gestão de Tarefas Escolares"
	defaultAPIDesc     = "API REST para gestão de tarefas, alunos, turmas e disciplinas"
	defaultAPIVersion  = "1.0.0"
	defaultTokenMinute = 30
)

// Config é montada uma vez no startup e repassada para quem precisa.
type Config struct {
	// Banco de dados
	DBDriver    string
	DatabaseURL string

	// Aplicação
	AppEnv    string
	Debug     bool
	Port      string
	SecretKey string

	// JWT
	JWTAlgorithm   string
	AccessTokenTTL time.Duration

	// API
	APITitle       string
	APIDescription string
	APIVersion     string

	CORSAllowOrigins string
	KeepAliveCron    string
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Arquivo .env não encontrado, usando variáveis do sistema")
	} else {
		log.Println("✅ Arquivo .env carregado!")
	}
}

// Load lê o ambiente (depois de LoadEnv) e monta a Config.
func Load() Config {
	cfg := Config{
		DBDriver:       strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		DatabaseURL:    GetEnv("DATABASE_URL"),
		AppEnv:         GetEnv("APP_ENV", "development"),
		Debug:          GetBool("DEBUG", true),
		Port:           GetEnv("PORT", "8000"),
		SecretKey:      GetEnv("SECRET_KEY", defaultSecretKey),
		JWTAlgorithm:   strings.ToUpper(GetEnv("JWT_ALGORITHM", "HS256")),
		AccessTokenTTL: time.Duration(GetInt("ACCESS_TOKEN_EXPIRE_MINUTES", defaultTokenMinute)) * time.Minute,
		APITitle:       GetEnv("API_TITLE", defaultAPITitle),
		APIDescription: GetEnv("API_DESCRIPTION", defaultAPIDesc),
		APIVersion:     GetEnv("API_VERSION", defaultAPIVersion),
		KeepAliveCron:  GetEnv("DB_KEEPALIVE_CRON", "@every 5m"),
	}

	if cfg.DatabaseURL == "" && cfg.DBDriver == "postgres" {
		cfg.DatabaseURL = BuildPostgresDSN()
	}

	origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	switch {
	case ok:
		cfg.CORSAllowOrigins = origins
	case cfg.IsDevelopment():
		cfg.CORSAllowOrigins = "*"
	}

	if cfg.SecretKey == defaultSecretKey {
		log.Println("❌ SECRET_KEY não definida, usando valor padrão!")
	} else {
		log.Println("✅ SECRET_KEY carregada.")
	}
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s inválido (%q), usando %d", key, v, def)
		return def
	}
	return n
}

func GetBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️ %s inválido (%q), usando %v", key, v, def)
		return def
	}
	return b
}

// BuildPostgresDSN monta a URL a partir de DB_USER, DB_PASSWORD, DB_HOST, DB_PORT, DB_NAME.
func BuildPostgresDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s&application_name=gestao_tarefas",
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_HOST", "db"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME", "gestao_tarefas_db"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(debug bool) gormLogger.Interface {
	level := gormLogger.Warn
	if debug {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
