package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusconnect/internal/feed/models"
	"campusconnect/internal/platform/middleware"
	"campusconnect/internal/transport/http/shared"
	dErrors "campusconnect/pkg/domain-errors"
)

// Service defines the feed operations the handler delegates to.
type Service interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, sessionID string, req *models.CreatePostRequest) (*models.Post, error)
	ToggleLike(ctx context.Context, sessionID, postID string) (*models.LikeResult, error)
	AddComment(ctx context.Context, sessionID, postID string, req *models.CommentRequest) (*models.CommentResult, error)
}

type Handler struct {
	logger       *slog.Logger
	feed         Service
	jwtValidator middleware.JWTValidator
}

func New(feed Service, logger *slog.Logger, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		feed:         feed,
		jwtValidator: jwtValidator,
	}
}

// Register registers the feed routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/posts", h.handleList)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		r.Post("/posts", h.handleCreate)
		r.Post("/posts/{id}/like", h.handleToggleLike)
		r.Post("/posts/{id}/comments", h.handleAddComment)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feed.List(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	post, err := h.feed.Create(ctx, middleware.GetSessionID(ctx), &req)
	if err != nil {
		h.logger.WarnContext(ctx, "post rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, post)
}

func (h *Handler) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.feed.ToggleLike(ctx, middleware.GetSessionID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.feed.AddComment(ctx, middleware.GetSessionID(ctx), chi.URLParam(r, "id"), &req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}
