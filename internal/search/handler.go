package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusconnect/internal/transport/http/shared"
)

// Handler serves the aggregated search endpoint.
type Handler struct {
	search *Service
}

func NewHandler(search *Service) *Handler {
	return &Handler{search: search}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/search", h.handleSearch)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := h.search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, results)
}
