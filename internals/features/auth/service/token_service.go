package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const TokenTypeAccess = "access"

// AccessClaims: sub = email do aluno.
type AccessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
	now    func() time.Time
}

func signingMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	switch strings.ToUpper(strings.TrimSpace(alg)) {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("JWT_ALGORITHM não suportado: %q", alg)
	}
}

func NewTokenService(secret, alg string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("SECRET_KEY vazia")
	}
	method, err := signingMethod(alg)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// WithClock troca o relógio (testes de expiração).
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue assina um access token para email. ttl <= 0 usa o padrão configurado.
func (s *TokenService) Issue(email string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	now := s.now()
	exp := now.Add(ttl).Truncate(time.Second)
	claims := AccessClaims{
		Type: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Decode valida assinatura, algoritmo e exp. Qualquer falha → (nil, false).
func (s *TokenService) Decode(token string) (*AccessClaims, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	claims := &AccessClaims{}
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		return nil, false
	}
	if expired(claims.ExpiresAt, s.now()) {
		return nil, false
	}
	return claims, true
}

// expired compara em segundos inteiros, a precisão do claim exp: o token vale
// até o fim do segundo de exp. exp ausente conta como expirado.
func expired(exp *jwt.NumericDate, now time.Time) bool {
	if exp == nil {
		return true
	}
	return now.Unix() > exp.Unix()
}
