package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusconnect/internal/directory/models"
	"campusconnect/internal/transport/http/shared"
)

// Service defines the directory operations the handler delegates to.
type Service interface {
	Colleges(ctx context.Context, location, query string) ([]models.College, error)
	Clubs(ctx context.Context, location, query string) ([]models.Club, error)
}

// Handler serves the public directory listings. No authentication: the
// directory is browsable before login.
type Handler struct {
	directory Service
}

func New(directory Service) *Handler {
	return &Handler{directory: directory}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/directory/colleges", h.handleColleges)
	r.Get("/directory/clubs", h.handleClubs)
}

func (h *Handler) handleColleges(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	colleges, err := h.directory.Colleges(r.Context(), q.Get("location"), q.Get("q"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, colleges)
}

func (h *Handler) handleClubs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	clubs, err := h.directory.Clubs(r.Context(), q.Get("location"), q.Get("q"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, clubs)
}
