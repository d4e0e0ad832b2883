// Package repository provides persistence implementations for the portfolio
// catalog.
package repository

import (
	"context"

	"github.com/olehsv/videolanding/internal/models"
)

// CatalogRepository owns the ordered collection of portfolio videos.
// Insertion order is preserved and is the display order; ids are unique
// within the catalog.
type CatalogRepository interface {
	// List returns the full persisted collection in insertion order.
	// An absent store yields an empty slice, not an error.
	List(ctx context.Context) ([]models.VideoEntry, error)
	// Add appends a new entry with a freshly generated id, persists the
	// updated collection and returns the new entry.
	Add(ctx context.Context, title, description, url, videoType string) (*models.VideoEntry, error)
	// Remove deletes the entry with the given id and persists the result.
	// Removing an absent id is a no-op, not an error.
	Remove(ctx context.Context, id string) error
}
