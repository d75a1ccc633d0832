package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
)

// Service implements registration and credential verification on top of a
// UserStore. Passwords are bcrypt-hashed before they reach storage and are
// never recoverable from it.
type Service struct {
	Store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{Store: store}
}

func (s *Service) Register(ctx context.Context, email, name, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, apperr.Invalid("email", "required")
	}
	if !strings.Contains(email, "@") {
		return nil, apperr.Invalid("email", "must be a valid email address")
	}
	if name == "" {
		return nil, apperr.Invalid("name", "required")
	}
	if len(password) < 6 {
		return nil, apperr.Invalid("password", "must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.Store.CreateUser(ctx, email, name, string(hashed))
}

// Verify checks the email/password pair. Unknown emails and wrong passwords
// return the same error so callers cannot tell which emails are registered.
func (s *Service) Verify(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.Store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	return u, nil
}
