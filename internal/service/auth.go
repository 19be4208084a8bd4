package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/repository"
)

// AuthService issues and checks admin bearer tokens for a single configured admin.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.LoginResponse, error)
	// Verify returns the admin email a live token was issued to.
	Verify(ctx context.Context, token string) (string, error)
}

type authService struct {
	tokens   repository.TokenRepository
	email    string
	password string
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(tokens repository.TokenRepository, email, password string, ttl time.Duration) AuthService {
	return &authService{tokens: tokens, email: email, password: password, ttl: ttl, now: time.Now}
}

func (s *authService) Login(ctx context.Context, email, password string) (model.LoginResponse, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(s.email))) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if s.email == "" || !emailOK || !passOK {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	now := s.now()
	if _, err := s.tokens.DeleteExpired(ctx, now); err != nil {
		return model.LoginResponse{}, fmt.Errorf("prune tokens: %w", err)
	}
	tok := repository.Token{
		Value:     uuid.NewString(),
		Email:     s.email,
		ExpiresAt: now.Add(s.ttl).UTC(),
	}
	if err := s.tokens.Save(ctx, tok); err != nil {
		return model.LoginResponse{}, fmt.Errorf("save token: %w", err)
	}
	return model.LoginResponse{Token: tok.Value, Email: tok.Email, ExpiresAt: timestamp(tok.ExpiresAt)}, nil
}

func (s *authService) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	tok, err := s.tokens.Find(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	if !s.now().Before(tok.ExpiresAt) {
		_ = s.tokens.Delete(ctx, token)
		return "", ErrInvalidToken
	}
	return tok.Email, nil
}
