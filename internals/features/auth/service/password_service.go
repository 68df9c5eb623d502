package service

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt só considera os primeiros 72 bytes; cortamos antes para senhas longas não falharem.
const bcryptMaxBytes = 72

func clampPassword(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxBytes {
		b = b[:bcryptMaxBytes]
	}
	return b
}

// HashPassword gera um hash bcrypt (salt novo a cada chamada).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(clampPassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash devolve nil quando a senha confere com o hash.
func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), clampPassword(password))
}

// VerifyPassword: hash malformado conta como senha errada.
func VerifyPassword(password, hash string) bool {
	return CheckPasswordHash(hash, password) == nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnPasswordCheck faz um compare contra hash fixo para email inexistente
// gastar o mesmo tempo que senha errada.
func burnPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		h, err := HashPassword("senha-inexistente-para-timing")
		if err == nil {
			dummyHash = h
		}
	})
	if dummyHash != "" {
		_ = CheckPasswordHash(dummyHash, password)
	}
}
