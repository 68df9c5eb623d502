package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type Paging struct {
	Offset int
	Limit  int
}

// ResolvePaging lê ?skip= e ?limit= e normaliza.
// - skip negativo/inválido → 0
// - limit vazio/inválido/<=0 → defaultLimit; > maxLimit → maxLimit (0 = sem teto)
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	skip, _ := strconv.Atoi(strings.TrimSpace(c.Query("skip", "0")))
	if skip < 0 {
		skip = 0
	}

	limit, err := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Paging{Offset: skip, Limit: limit}
}
