package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	alunoModel "gestao_tarefas_backend/internals/features/academics/alunos/model"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrTokenExpired       = errors.New("token expirado")
)

type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

// TokenResponse é o corpo de POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*alunoModel.AlunoModel, error) {
	var a alunoModel.AlunoModel
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Authenticate não diferencia email inexistente de senha errada.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*alunoModel.AlunoModel, error) {
	email = strings.TrimSpace(email)
	aluno, err := s.findByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			burnPasswordCheck(password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !VerifyPassword(password, aluno.SenhaHash) {
		return nil, ErrInvalidCredentials
	}
	return aluno, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	aluno, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	token, _, err := s.Tokens.Issue(aluno.Email, 0)
	if err != nil {
		return nil, err
	}
	log.Printf("[AUTH] login ok: aluno=%s", aluno.ID)
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.Tokens.TTL() / time.Second),
	}, nil
}

// CurrentUser resolve o aluno dono do token.
// ErrInvalidCredentials para token inválido/aluno sumido, ErrTokenExpired para exp vencido.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*alunoModel.AlunoModel, error) {
	claims, ok := s.Tokens.Decode(token)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrInvalidCredentials
	}
	if expired(claims.ExpiresAt, s.Tokens.now()) {
		return nil, ErrTokenExpired
	}

	aluno, err := s.findByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return aluno, nil
}
