package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusconnect/internal/chat/models"
	"campusconnect/internal/platform/middleware"
	"campusconnect/internal/transport/http/shared"
	dErrors "campusconnect/pkg/domain-errors"
)

// Service defines the chat operations the handler delegates to.
type Service interface {
	Contacts(ctx context.Context, query string) ([]models.Contact, error)
	Messages(ctx context.Context, conversationID string) ([]models.Message, error)
	Send(ctx context.Context, sessionID, conversationID string, req *models.SendMessageRequest) (*models.Message, error)
	MarkAsRead(ctx context.Context, conversationID string) error
	UnreadCount(ctx context.Context, conversationID string) (*models.UnreadCount, error)
	TotalUnread(ctx context.Context) (*models.TotalUnread, error)
}

type Handler struct {
	logger       *slog.Logger
	chat         Service
	jwtValidator middleware.JWTValidator
}

func New(chat Service, logger *slog.Logger, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		chat:         chat,
		jwtValidator: jwtValidator,
	}
}

// Register registers the chat routes with the chi router. The whole surface
// is behind authentication; chat has no anonymous reads.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		r.Get("/chat/contacts", h.handleContacts)
		r.Get("/chat/unread", h.handleTotalUnread)
		r.Get("/chat/conversations/{id}/messages", h.handleMessages)
		r.Post("/chat/conversations/{id}/messages", h.handleSend)
		r.Post("/chat/conversations/{id}/read", h.handleMarkAsRead)
		r.Get("/chat/conversations/{id}/unread", h.handleUnreadCount)
	})
}

func (h *Handler) handleContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.chat.Contacts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, contacts)
}

func (h *Handler) handleMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.chat.Messages(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, msgs)
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	msg, err := h.chat.Send(ctx, middleware.GetSessionID(ctx), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.logger.WarnContext(ctx, "message rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, msg)
}

func (h *Handler) handleMarkAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.chat.MarkAsRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.chat.UnreadCount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, count)
}

func (h *Handler) handleTotalUnread(w http.ResponseWriter, r *http.Request) {
	total, err := h.chat.TotalUnread(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, total)
}
