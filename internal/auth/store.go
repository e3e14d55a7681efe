// Package auth binds authenticated identities to opaque session tokens and
// answers role capability checks for actions that need authorization.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/packpal/packpal/internal/accounts"
)

// Principal is the identity snapshot bound to a session token.
type Principal struct {
	ID        int64         `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Role      accounts.Role `json:"role"`
}

// SessionStore maps opaque session tokens to principal snapshots in Redis.
// Bindings expire with the configured TTL; at most one session per identity
// is kept alive at a time.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore constructs a SessionStore.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// NewToken generates a fresh opaque session token.
func NewToken() string {
	return uuid.NewString()
}

// TTL exposes the configured session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Bind associates the principal with the token, replacing any prior binding
// for that token. Any other live session for the same identity is evicted so
// the single-session-per-identity cap holds.
func (s *SessionStore) Bind(ctx context.Context, token string, principal Principal) error {
	payload, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("auth: marshal principal: %w", err)
	}

	prior, err := s.client.GetSet(ctx, s.identityKey(principal.ID), token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if prior != "" && prior != token {
		if err := s.client.Del(ctx, s.sessionKey(prior)).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
	}
	if err := s.client.Expire(ctx, s.identityKey(principal.ID), s.ttl).Err(); err != nil {
		return err
	}

	return s.client.Set(ctx, s.sessionKey(token), payload, s.ttl).Err()
}

// Lookup returns the principal bound to the token, or nil when none is bound.
// An unknown or expired token is a normal outcome, not an error.
func (s *SessionStore) Lookup(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, nil
	}
	payload, err := s.client.Get(ctx, s.sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var principal Principal
	if err := json.Unmarshal(payload, &principal); err != nil {
		return nil, fmt.Errorf("auth: unmarshal principal: %w", err)
	}
	return &principal, nil
}

// Clear removes any binding for the token. Clearing an unbound token is a no-op.
func (s *SessionStore) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	principal, err := s.Lookup(ctx, token)
	if err != nil {
		return err
	}
	if principal != nil {
		if err := s.client.Del(ctx, s.identityKey(principal.ID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
	}
	if err := s.client.Del(ctx, s.sessionKey(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (s *SessionStore) sessionKey(token string) string {
	return "session:" + token
}

func (s *SessionStore) identityKey(id int64) string {
	return "session_owner:" + strconv.FormatInt(id, 10)
}
