package auth

import (
	"context"
	"fmt"

	"github.com/packpal/packpal/internal/accounts"
	"github.com/packpal/packpal/internal/shared"
)

// Authorizer answers "is this session logged in" and "does it hold role R".
type Authorizer struct {
	store *SessionStore
}

// NewAuthorizer constructs an Authorizer over a session store.
func NewAuthorizer(store *SessionStore) *Authorizer {
	return &Authorizer{store: store}
}

// Login binds the identity to the session token, replacing any prior binding
// for that token. Safe to call while the identity has another active session;
// the store evicts it.
func (a *Authorizer) Login(ctx context.Context, token string, identity *accounts.Identity) error {
	principal := Principal{
		ID:        identity.ID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
		Role:      identity.Role,
	}
	if err := a.store.Bind(ctx, token, principal); err != nil {
		return fmt.Errorf("auth: bind session: %w: %w", shared.ErrStoreUnavailable, err)
	}
	return nil
}

// Logout clears any binding for the token. Logging out an unbound token is
// not an error.
func (a *Authorizer) Logout(ctx context.Context, token string) error {
	if err := a.store.Clear(ctx, token); err != nil {
		return fmt.Errorf("auth: clear session: %w: %w", shared.ErrStoreUnavailable, err)
	}
	return nil
}

// CurrentIdentity returns the principal bound to the token, or nil when the
// token is unbound or unknown. Absence is a normal outcome.
func (a *Authorizer) CurrentIdentity(ctx context.Context, token string) (*Principal, error) {
	principal, err := a.store.Lookup(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("auth: lookup session: %w: %w", shared.ErrStoreUnavailable, err)
	}
	return principal, nil
}

// RequireRole returns the bound principal when it holds exactly the required
// role. There is no role hierarchy.
func (a *Authorizer) RequireRole(ctx context.Context, token string, role accounts.Role) (*Principal, error) {
	principal, err := a.CurrentIdentity(ctx, token)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, shared.ErrUnauthenticated
	}
	if principal.Role != role {
		return nil, shared.ErrForbidden
	}
	return principal, nil
}
