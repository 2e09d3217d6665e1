package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusconnect/internal/events/models"
	"campusconnect/internal/platform/middleware"
	"campusconnect/internal/transport/http/shared"
	dErrors "campusconnect/pkg/domain-errors"
)

// Service defines the event operations the handler delegates to.
type Service interface {
	List(ctx context.Context, eventType models.EventType, query string) ([]models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, sessionID string, req *models.CreateEventRequest) (*models.Event, error)
	Register(ctx context.Context, sessionID, eventID string) (*models.RegistrationResult, error)
	Unregister(ctx context.Context, sessionID, eventID string) (*models.RegistrationResult, error)
}

type Handler struct {
	logger       *slog.Logger
	events       Service
	jwtValidator middleware.JWTValidator
}

func New(events Service, logger *slog.Logger, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		events:       events,
		jwtValidator: jwtValidator,
	}
}

// Register registers the event routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/events", h.handleList)
	r.Get("/events/{id}", h.handleGet)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		r.Post("/events", h.handleCreate)
		r.Post("/events/{id}/register", h.handleRegister)
		r.Delete("/events/{id}/register", h.handleUnregister)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	eventType := models.EventType(r.URL.Query().Get("type"))
	query := r.URL.Query().Get("q")

	events, err := h.events.List(r.Context(), eventType, query)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, event)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	event, err := h.events.Create(ctx, middleware.GetSessionID(ctx), &req)
	if err != nil {
		h.logger.WarnContext(ctx, "event rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, event)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.events.Register(ctx, middleware.GetSessionID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.events.Unregister(ctx, middleware.GetSessionID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}
