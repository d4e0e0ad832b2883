package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olehsv/videolanding/internal/models"
	"github.com/olehsv/videolanding/internal/service"
)

// CatalogService defines the catalog operations required by the
// CatalogHandler.
type CatalogService interface {
	// List returns the public view of the portfolio with embed annotations.
	List(ctx context.Context) ([]service.PublicVideo, error)
	// Add appends a new portfolio entry.
	Add(ctx context.Context, title, description, url, videoType string) (*models.VideoEntry, error)
	// Remove deletes an entry by id.
	Remove(ctx context.Context, id string) error
}

// CatalogHandler handles the public portfolio listing and the operator's
// catalog mutations.
type CatalogHandler struct {
	// CatalogService performs the underlying catalog operations.
	CatalogService CatalogService
}

// List handles GET /api/videos.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.CatalogService.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

// addVideoRequest is the JSON payload for creating a portfolio entry.
type addVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type"`
}

// Add handles POST /api/videos. Requires an admin session.
func (h *CatalogHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgBadRequest})
		return
	}

	entry, err := h.CatalogService.Add(r.Context(), req.Title, req.Description, req.URL, req.Type)

	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgMissingFields, Field: vErr.Field})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
	default:
		writeJSON(w, http.StatusCreated, entry)
	}
}

// Remove handles DELETE /api/videos/{id}. Requires an admin session.
// Removing an unknown id succeeds: the end state is the same.
func (h *CatalogHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.CatalogService.Remove(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
