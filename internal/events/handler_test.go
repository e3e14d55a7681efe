package events

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packpal/packpal/internal/shared"
	_ "github.com/packpal/packpal/testing"
)

func newEventsRouter(repo Repository, authorizer Authorizer) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo, authorizer))
	r := chi.NewRouter()
	r.Route("/event", handler.MountRoutes)
	return r
}

func postCreate(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/event/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestHandleCreateSuccess(t *testing.T) {
	repo := newMockRepository()
	router := newEventsRouter(repo, &stubAuthorizer{principal: ownerPrincipal()})

	res := postCreate(router, `{"name":"Trip","description":"Summer trip","source":"Berlin","destination":"Lisbon","purpose":"vacation","ownerEmail":"spoof@example.com","status":"ENDED"}`)

	require.Equal(t, http.StatusCreated, res.Code)
	assert.Contains(t, res.Body.String(), "Event created successfully.")
	require.Len(t, repo.events, 1)
	assert.Equal(t, "ada@example.com", repo.events[0].OwnerEmail, "client-supplied ownerEmail must be discarded")
	assert.Equal(t, StatusOngoing, repo.events[0].Status, "client-supplied status must be discarded")
}

func TestHandleCreateUnauthenticated(t *testing.T) {
	repo := newMockRepository()
	router := newEventsRouter(repo, &stubAuthorizer{err: shared.ErrUnauthenticated})

	res := postCreate(router, `{"name":"Trip"}`)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), "You must be logged in to create an event.")
	assert.Empty(t, repo.events)
}

func TestHandleCreateForbidden(t *testing.T) {
	repo := newMockRepository()
	router := newEventsRouter(repo, &stubAuthorizer{err: shared.ErrForbidden})

	res := postCreate(router, `{"name":"Trip"}`)

	require.Equal(t, http.StatusForbidden, res.Code)
	assert.Contains(t, res.Body.String(), "Access denied: Only users with OWNER role can create events.")
	assert.Empty(t, repo.events)
}

func TestHandleCreateMissingName(t *testing.T) {
	repo := newMockRepository()
	router := newEventsRouter(repo, &stubAuthorizer{principal: ownerPrincipal()})

	res := postCreate(router, `{"description":"no name"}`)

	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Empty(t, repo.events)
}
