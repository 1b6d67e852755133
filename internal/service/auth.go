package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API ports.BlogAPI
}

// AuthService handles credential exchange with the platform.
type AuthService struct {
	api ports.BlogAPI
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{api: opts.API}
}

// Login exchanges credentials for an opaque bearer token.
func (s *AuthService) Login(ctx context.Context, creds model.Credentials) (string, error) {
	if creds.Email == "" || creds.Password == "" {
		return "", errors.New("email and password are required")
	}
	token, err := s.api.Login(ctx, creds)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return token, nil
}

// Register creates an account and returns an opaque bearer token.
func (s *AuthService) Register(ctx context.Context, reg model.Registration) (string, error) {
	if reg.Email == "" || reg.Password == "" || reg.DisplayName == "" {
		return "", errors.New("email, password and display name are required")
	}
	token, err := s.api.Register(ctx, reg)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return token, nil
}
