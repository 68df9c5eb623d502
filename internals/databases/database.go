package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gestao_tarefas_backend/internals/configs"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSQLitePath = "file:gestao_tarefas.db"
)

// Open abre a conexão conforme cfg.DBDriver. Não derruba o processo; quem chama decide.
func Open(cfg configs.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger:         configs.NewGormLogger(cfg.Debug),
		TranslateError: true, // 23505/23503 → gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverPostgres, "postgresql", "":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseURL,
			PreferSimpleProtocol: true, // 👍 compatível com PgBouncer (transaction pooling)
		})
	case DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.DatabaseURL))
	default:
		return nil, fmt.Errorf("DB_DRIVER desconhecido: %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, err
	}
	TunePool(db)
	return db, nil
}

// ConnectDB é o caminho do main: falha de conexão encerra a aplicação.
func ConnectDB(cfg configs.Config) *gorm.DB {
	log.Printf("🔌 Conectando ao banco (%s)...", cfg.DBDriver)
	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	log.Println("✅ DB connected.")
	return db
}

// SQLiteDSN garante foreign keys ligadas em toda conexão sqlite.
func SQLiteDSN(dsn string) string {
	dsn = strings.TrimPrefix(strings.TrimSpace(dsn), "sqlite://")
	if dsn == "" {
		dsn = defaultSQLitePath
	}
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	if db.Dialector.Name() == DriverSQLite {
		// sqlite: uma conexão só (":memory:" é por conexão e escrita é serializada)
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
