package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/ports"
)

// AccountServiceOptions groups dependencies for AccountService.
type AccountServiceOptions struct {
	API ports.BlogAPI
}

// AccountService handles account detail and password updates.
type AccountService struct {
	api ports.BlogAPI
}

// NewAccountService constructs a new AccountService.
func NewAccountService(opts AccountServiceOptions) *AccountService {
	return &AccountService{api: opts.API}
}

// UpdateDetails updates the display name and, optionally, the avatar.
func (s *AccountService) UpdateDetails(ctx context.Context, token string, req model.AccountUpdate) error {
	if req.DisplayName == "" {
		return errors.New("display name is required")
	}
	if err := s.api.UpdateAccount(ctx, token, req); err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// ChangePassword rotates the viewer's password.
func (s *AccountService) ChangePassword(ctx context.Context, token string, req model.PasswordChange) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return errors.New("old and new passwords are required")
	}
	if err := s.api.ChangePassword(ctx, token, req); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}
