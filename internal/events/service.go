package events

import (
	"context"
	"fmt"

	"github.com/packpal/packpal/internal/accounts"
	"github.com/packpal/packpal/internal/auth"
	"github.com/packpal/packpal/internal/shared"
)

// Authorizer is the capability check consumed by event creation.
type Authorizer interface {
	RequireRole(ctx context.Context, token string, role accounts.Role) (*auth.Principal, error)
}

// Service wraps event business rules.
type Service struct {
	repo       Repository
	authorizer Authorizer
}

// NewService constructs a new Service.
func NewService(repo Repository, authorizer Authorizer) *Service {
	return &Service{repo: repo, authorizer: authorizer}
}

// Create persists a new event on behalf of the session's principal. Only an
// OWNER may create events; authorization failures propagate unchanged and
// nothing is persisted. Ownership and the ONGOING status are stamped here,
// discarding whatever the client may have supplied.
func (s *Service) Create(ctx context.Context, token string, draft Draft) (*Event, error) {
	principal, err := s.authorizer.RequireRole(ctx, token, accounts.RoleOwner)
	if err != nil {
		return nil, err
	}

	event := &Event{
		Name:        draft.Name,
		Description: draft.Description,
		Source:      draft.Source,
		Destination: draft.Destination,
		OwnerEmail:  principal.Email,
		Purpose:     draft.Purpose,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Status:      StatusOngoing,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("events: create: %w: %w", shared.ErrStoreUnavailable, err)
	}
	return created, nil
}
