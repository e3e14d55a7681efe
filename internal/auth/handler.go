package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/packpal/packpal/internal/accounts"
	"github.com/packpal/packpal/internal/observability"
	"github.com/packpal/packpal/internal/platform/httpx"
	"github.com/packpal/packpal/internal/shared"
)

// CookieConfig controls how the session token travels to the client.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Handler wires HTTP endpoints for signup, login, logout and the current
// principal.
type Handler struct {
	logger     *slog.Logger
	accounts   *accounts.Service
	authorizer *Authorizer
	cookie     CookieConfig
	metrics    *observability.Metrics
	validator  *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, accountsSvc *accounts.Service, authorizer *Authorizer, cookie CookieConfig, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		accounts:   accountsSvc,
		authorizer: authorizer,
		cookie:     cookie,
		metrics:    metrics,
		validator:  validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
	r.Group(func(r chi.Router) {
		r.Use(h.RequireSession)
		r.Get("/me", h.handleMe)
	})
}

type signupRequest struct {
	FirstName string `json:"fName" validate:"required"`
	LastName  string `json:"lName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", validationDetail(err))
		return
	}

	_, err := h.accounts.Signup(r.Context(), accounts.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		RoleText:  req.Role,
	})
	switch {
	case err == nil:
		httpx.Message(w, http.StatusCreated, "Signup successful")
	case errors.Is(err, shared.ErrDuplicateEmail):
		httpx.Problem(w, http.StatusConflict, "Duplicate", "Email is already registered")
	case errors.Is(err, shared.ErrInvalidRole):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed",
			"Invalid role. Allowed roles are: OWNER, ADMIN, MEMBER, VIEWER")
	default:
		h.logger.Error("signup failed", slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", validationDetail(err))
		return
	}

	identity, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, shared.ErrNotFound):
		h.metrics.RecordLogin("failure")
		httpx.Problem(w, http.StatusNotFound, "Not Found", "user not found")
		return
	case errors.Is(err, shared.ErrBadCredential):
		h.metrics.RecordLogin("failure")
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "Invalid password")
		return
	default:
		h.logger.Error("login failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	token := shared.SessionTokenFromContext(r.Context())
	if token == "" {
		token = NewToken()
	}
	if err := h.authorizer.Login(r.Context(), token, identity); err != nil {
		h.logger.Error("bind session failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	h.metrics.RecordLogin("success")
	h.setSessionCookie(w, token, h.cookie.TTL)
	httpx.Message(w, http.StatusOK, "login success")
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := shared.SessionTokenFromContext(r.Context())
	if err := h.authorizer.Logout(r.Context(), token); err != nil {
		h.logger.Error("logout failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.setSessionCookie(w, "", -time.Second)
	httpx.Message(w, http.StatusOK, "Logged out successfully.")
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	principal := PrincipalFromContext(r.Context())
	if principal == nil {
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "Not authorized to access this resource")
		return
	}
	httpx.JSON(w, http.StatusOK, principal)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().Add(ttl)
	}
	http.SetCookie(w, cookie)
}

func validationDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "invalid request"
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields = append(fields, fieldErr.Field())
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}
