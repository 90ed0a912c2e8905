package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BuzzLyutic/todo-auth-api/internal/model"
	"github.com/BuzzLyutic/todo-auth-api/internal/repo"
	"github.com/BuzzLyutic/todo-auth-api/internal/token"
)

// ErrInvalidCredentials одинаков для неизвестного email и неверного
// пароля - ответ не раскрывает, что именно не совпало
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users  repo.UserRepository
	tokens *token.Service
}

func NewAuthService(users repo.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" || email == "" || req.Password == "" {
		return model.User{}, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	return s.users.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.User, string, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrorNotFound) {
			return model.User{}, "", ErrInvalidCredentials
		}
		return model.User{}, "", err
	}

	// bcrypt сравнивает за константное время
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return model.User{}, "", ErrInvalidCredentials
	}

	raw, err := s.tokens.Issue(u.ID)
	if err != nil {
		return model.User{}, "", err
	}
	return u, raw, nil
}
