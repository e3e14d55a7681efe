package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/packpal/packpal/internal/platform/httpx"
	"github.com/packpal/packpal/internal/shared"
)

type principalKey struct{}

// ContextWithPrincipal stores the resolved principal in context.
func ContextWithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFromContext extracts the resolved principal, or nil.
func PrincipalFromContext(ctx context.Context) *Principal {
	principal, _ := ctx.Value(principalKey{}).(*Principal)
	return principal
}

// SessionToken reads the session cookie and stores the opaque token in the
// request context. Requests without a cookie pass through with no token.
func (h *Handler) SessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
			r = r.WithContext(shared.ContextWithSessionToken(r.Context(), cookie.Value))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession rejects requests whose session token is not bound to an
// identity. The resolved principal is stored in the request context.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := shared.SessionTokenFromContext(r.Context())
		principal, err := h.authorizer.CurrentIdentity(r.Context(), token)
		if err != nil {
			h.logger.Error("resolve session failed", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		if principal == nil {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "Not authorized to access this resource")
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(r.Context(), principal)))
	})
}
