package events

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/packpal/packpal/internal/platform/httpx"
	"github.com/packpal/packpal/internal/shared"
)

// Handler wires HTTP endpoints for events.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers event routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/create", h.handleCreate)
}

type createRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Source      string     `json:"source"`
	Destination string     `json:"destination"`
	Purpose     string     `json:"purpose"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type createResponse struct {
	Message string `json:"message"`
	Event   *Event `json:"event"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "event name is required")
		return
	}

	token := shared.SessionTokenFromContext(r.Context())
	event, err := h.service.Create(r.Context(), token, Draft{
		Name:        req.Name,
		Description: req.Description,
		Source:      req.Source,
		Destination: req.Destination,
		Purpose:     req.Purpose,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	switch {
	case err == nil:
		httpx.JSON(w, http.StatusCreated, createResponse{Message: "Event created successfully.", Event: event})
	case errors.Is(err, shared.ErrUnauthenticated):
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "You must be logged in to create an event.")
	case errors.Is(err, shared.ErrForbidden):
		httpx.Problem(w, http.StatusForbidden, "Forbidden", "Access denied: Only users with OWNER role can create events.")
	default:
		h.logger.Error("create event failed", slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}
