package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordSaltsEachCall(t *testing.T) {
	h1, err := HashPassword("senha123")
	require.NoError(t, err)
	h2, err := HashPassword("senha123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NotContains(t, h1, "senha123")
	assert.True(t, VerifyPassword("senha123", h1))
	assert.True(t, VerifyPassword("senha123", h2))
}

func TestVerifyPassword(t *testing.T) {
	h, err := HashPassword("senha123")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("senha124", h))
	assert.False(t, VerifyPassword("", h))
	assert.False(t, VerifyPassword("senha123", "nao-e-um-hash"))
	assert.Error(t, CheckPasswordHash(h, "errada"))
	assert.NoError(t, CheckPasswordHash(h, "senha123"))
}

func TestLongPasswordsAreAccepted(t *testing.T) {
	long := strings.Repeat("a", 128)
	h, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(long, h))
}
