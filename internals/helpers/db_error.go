package helper

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type DBErrorKind int

const (
	DBErrorOther DBErrorKind = iota
	DBErrorNotFound
	DBErrorDuplicate
	DBErrorForeignKey
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ClassifyDBError mapeia erro do banco (pgx, lib/pq, sqlite) para um tipo conhecido.
func ClassifyDBError(err error) DBErrorKind {
	if err == nil {
		return DBErrorOther
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return DBErrorNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return DBErrorDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return DBErrorForeignKey
	}

	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return kindFromSQLState(pgxErr.Code)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return kindFromSQLState(string(pqErr.Code))
	}

	// sem driver conhecido: cai para o texto da mensagem
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, pgUniqueViolation):
		return DBErrorDuplicate
	case strings.Contains(msg, "foreign key"),
		strings.Contains(msg, pgForeignKeyViolation):
		return DBErrorForeignKey
	}
	return DBErrorOther
}

func kindFromSQLState(code string) DBErrorKind {
	switch code {
	case pgUniqueViolation:
		return DBErrorDuplicate
	case pgForeignKeyViolation:
		return DBErrorForeignKey
	default:
		return DBErrorOther
	}
}

// DBErrorMessages são as mensagens de uma operação para cada tipo de falha.
type DBErrorMessages struct {
	NotFound   string
	Duplicate  string
	ForeignKey string
	FKStatus   int // 0 → 400
}

// FiberFromDBError traduz o erro de uma transação em *fiber.Error.
// Erros que já são *fiber.Error ou *ValidationError passam intactos.
func FiberFromDBError(err error, msgs DBErrorMessages) error {
	if err == nil {
		return nil
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}

	switch ClassifyDBError(err) {
	case DBErrorNotFound:
		if msgs.NotFound != "" {
			return fiber.NewError(fiber.StatusNotFound, msgs.NotFound)
		}
	case DBErrorDuplicate:
		msg := msgs.Duplicate
		if msg == "" {
			msg = "Registro duplicado"
		}
		return fiber.NewError(fiber.StatusConflict, msg)
	case DBErrorForeignKey:
		status := msgs.FKStatus
		if status == 0 {
			status = fiber.StatusBadRequest
		}
		msg := msgs.ForeignKey
		if msg == "" {
			msg = "Referência inválida"
		}
		return fiber.NewError(status, msg)
	}

	log.Printf("[DB] erro não mapeado: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Erro interno ao acessar o banco de dados")
}
