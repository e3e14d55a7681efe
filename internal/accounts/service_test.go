package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/packpal/packpal/internal/shared"
)

type mockRepository struct {
	byEmail map[string]*Identity
	nextID  int64

	findError   error
	createError error
}

func newMockRepository() *mockRepository {
	return &mockRepository{byEmail: make(map[string]*Identity), nextID: 1}
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	identity, ok := m.byEmail[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *identity
	return &copied, nil
}

func (m *mockRepository) Create(ctx context.Context, identity *Identity) (*Identity, error) {
	if m.createError != nil {
		return nil, m.createError
	}
	if _, exists := m.byEmail[identity.Email]; exists {
		return nil, shared.ErrDuplicateEmail
	}
	created := *identity
	created.ID = m.nextID
	m.nextID++
	m.byEmail[created.Email] = &created
	return &created, nil
}

func validSignup() SignupInput {
	return SignupInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct horse",
		RoleText:  "OWNER",
	}
}

func TestSignupThenAuthenticate(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	identity, err := service.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	assert.Equal(t, RoleOwner, identity.Role)
	assert.NotEqual(t, "correct horse", identity.PasswordHash, "plaintext password must not be stored")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte("correct horse")))

	authed, err := service.Authenticate(context.Background(), "ada@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, authed.ID)
}

func TestSignupParsesRoleCaseInsensitively(t *testing.T) {
	for _, text := range []string{"owner", "Owner", "OWNER"} {
		repo := newMockRepository()
		service := NewService(repo)

		input := validSignup()
		input.RoleText = text
		identity, err := service.Signup(context.Background(), input)
		require.NoError(t, err, "role text %q", text)
		assert.Equal(t, RoleOwner, identity.Role, "role text %q", text)
	}
}

func TestSignupInvalidRole(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	input := validSignup()
	input.RoleText = "superuser"
	_, err := service.Signup(context.Background(), input)
	require.ErrorIs(t, err, shared.ErrInvalidRole)
	assert.Empty(t, repo.byEmail, "nothing persisted on invalid role")
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	_, err := service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	again := validSignup()
	again.FirstName = "Someone"
	again.Password = "different password"
	again.RoleText = "viewer"
	_, err = service.Signup(context.Background(), again)
	require.ErrorIs(t, err, shared.ErrDuplicateEmail)

	// Duplicate email wins even when the role is also invalid.
	again.RoleText = "not-a-role"
	_, err = service.Signup(context.Background(), again)
	require.ErrorIs(t, err, shared.ErrDuplicateEmail)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	service := NewService(newMockRepository())

	_, err := service.Authenticate(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	_, err := service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = service.Authenticate(context.Background(), "ada@example.com", "wrong")
	require.ErrorIs(t, err, shared.ErrBadCredential)
}

func TestStoreFailuresSurfaceAsStoreUnavailable(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	repo.createError = errors.New("connection refused")
	_, err := service.Signup(context.Background(), validSignup())
	require.ErrorIs(t, err, shared.ErrStoreUnavailable)

	repo.findError = errors.New("connection refused")
	_, err = service.Authenticate(context.Background(), "ada@example.com", "correct horse")
	require.ErrorIs(t, err, shared.ErrStoreUnavailable)
}
