package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packpal/packpal/internal/accounts"
	"github.com/packpal/packpal/internal/auth"
	"github.com/packpal/packpal/internal/shared"
)

type mockRepository struct {
	events      []*Event
	nextID      int64
	createError error
}

func newMockRepository() *mockRepository {
	return &mockRepository{nextID: 1}
}

func (m *mockRepository) Create(ctx context.Context, event *Event) (*Event, error) {
	if m.createError != nil {
		return nil, m.createError
	}
	created := *event
	created.ID = m.nextID
	m.nextID++
	m.events = append(m.events, &created)
	return &created, nil
}

type stubAuthorizer struct {
	principal *auth.Principal
	err       error
}

func (s *stubAuthorizer) RequireRole(ctx context.Context, token string, role accounts.Role) (*auth.Principal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.principal, nil
}

func ownerPrincipal() *auth.Principal {
	return &auth.Principal{ID: 1, Email: "ada@example.com", Role: accounts.RoleOwner}
}

func TestCreateStampsOwnerAndStatus(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo, &stubAuthorizer{principal: ownerPrincipal()})

	event, err := service.Create(context.Background(), "token", Draft{
		Name:        "Trip",
		Description: "Summer trip",
		Source:      "Berlin",
		Destination: "Lisbon",
		Purpose:     "vacation",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
	assert.Equal(t, "ada@example.com", event.OwnerEmail)
	assert.Equal(t, StatusOngoing, event.Status)
	assert.Equal(t, "Trip", event.Name)
}

func TestCreateUnauthenticatedPersistsNothing(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo, &stubAuthorizer{err: shared.ErrUnauthenticated})

	_, err := service.Create(context.Background(), "", Draft{Name: "Trip"})
	require.ErrorIs(t, err, shared.ErrUnauthenticated)
	assert.Empty(t, repo.events)
}

func TestCreateForbiddenPersistsNothing(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo, &stubAuthorizer{err: shared.ErrForbidden})

	_, err := service.Create(context.Background(), "token", Draft{Name: "Trip"})
	require.ErrorIs(t, err, shared.ErrForbidden)
	assert.Empty(t, repo.events)
}

func TestCreateStoreFailure(t *testing.T) {
	repo := newMockRepository()
	repo.createError = errors.New("connection refused")
	service := NewService(repo, &stubAuthorizer{principal: ownerPrincipal()})

	_, err := service.Create(context.Background(), "token", Draft{Name: "Trip"})
	require.ErrorIs(t, err, shared.ErrStoreUnavailable)
}
