package service

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/olehsv/videolanding/internal/models"
)

// CatalogRepository defines the persistence operations required by the
// catalog service.
type CatalogRepository interface {
	// List returns the full collection in insertion order.
	List(ctx context.Context) ([]models.VideoEntry, error)
	// Add appends a new entry and returns it with its generated id.
	Add(ctx context.Context, title, description, url, videoType string) (*models.VideoEntry, error)
	// Remove deletes the entry with the given id; absent ids are a no-op.
	Remove(ctx context.Context, id string) error
}

// PublicVideo is a catalog entry annotated for the public rendering layer:
// when the URL resolves to an embeddable identifier the page shows an
// inline player, otherwise it falls back to a plain link.
type PublicVideo struct {
	models.VideoEntry
	// EmbedID is the embeddable video identifier, empty when the URL does
	// not resolve.
	EmbedID string `json:"embedId,omitempty"`
}

// listCacheKey is the single cache slot for the public listing.
const listCacheKey = "catalog"

// CatalogService orchestrates catalog reads and operator mutations. The
// public listing is cached and invalidated on every mutation.
type CatalogService struct {
	repo  CatalogRepository
	cache *cache.Cache
	log   *zap.Logger
}

// NewCatalogService constructs a CatalogService using the provided
// repository.
func NewCatalogService(repo CatalogRepository, log *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
		log:   log,
	}
}

// List returns the public view of the catalog with embed annotations,
// served from cache when possible.
func (s *CatalogService) List(ctx context.Context) ([]PublicVideo, error) {
	if v, ok := s.cache.Get(listCacheKey); ok {
		return v.([]PublicVideo), nil
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PublicVideo, 0, len(entries))
	for _, e := range entries {
		pv := PublicVideo{VideoEntry: e}
		if id, ok := ResolveEmbedID(e.URL); ok {
			pv.EmbedID = id
		}
		out = append(out, pv)
	}

	s.cache.Set(listCacheKey, out, cache.DefaultExpiration)
	return out, nil
}

// Add validates and appends a new portfolio entry, then invalidates the
// listing cache.
func (s *CatalogService) Add(ctx context.Context, title, description, url, videoType string) (*models.VideoEntry, error) {
	switch {
	case strings.TrimSpace(title) == "":
		return nil, &ValidationError{Field: "title"}
	case strings.TrimSpace(url) == "":
		return nil, &ValidationError{Field: "url"}
	case strings.TrimSpace(videoType) == "":
		return nil, &ValidationError{Field: "type"}
	}

	entry, err := s.repo.Add(ctx, title, description, url, videoType)
	if err != nil {
		return nil, err
	}

	s.cache.Delete(listCacheKey)
	s.log.Info("portfolio video added", zap.String("id", entry.ID), zap.String("type", entry.Type))
	return entry, nil
}

// Remove deletes an entry and invalidates the listing cache.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(listCacheKey)
	s.log.Info("portfolio video removed", zap.String("id", id))
	return nil
}
