package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail indicates a signup email that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidRole indicates a role outside the allowed set.
	ErrInvalidRole = errors.New("invalid role")
	// ErrBadCredential indicates a password mismatch for an existing account.
	ErrBadCredential = errors.New("invalid password")
	// ErrUnauthenticated indicates no identity is bound to the session.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden indicates the bound identity lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrStoreUnavailable indicates a persistence or session store failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)
