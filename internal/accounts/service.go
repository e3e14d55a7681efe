package accounts

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/packpal/packpal/internal/shared"
)

// SignupInput carries the fields required to register an identity.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	RoleText  string
}

// Service wraps account business rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Signup registers a new identity. The password is stored as a bcrypt hash and
// the role text must parse into the closed role set. Signup does not log the
// identity in.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*Identity, error) {
	// Duplicate email wins over any other input problem. The unique constraint
	// on insert still backs this check under concurrent signups.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, shared.ErrDuplicateEmail
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("accounts: find identity: %w: %w", shared.ErrStoreUnavailable, err)
	}

	role, ok := ParseRole(input.RoleText)
	if !ok {
		return nil, shared.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("accounts: hash password: %w", err)
	}

	identity, err := s.repo.Create(ctx, &Identity{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, shared.ErrDuplicateEmail) {
			return nil, shared.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("accounts: create identity: %w: %w", shared.ErrStoreUnavailable, err)
	}
	return identity, nil
}

// Authenticate validates email/password credentials and returns the matched
// identity. It has no session side effect.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("accounts: find identity: %w: %w", shared.ErrStoreUnavailable, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrBadCredential
	}
	return identity, nil
}
