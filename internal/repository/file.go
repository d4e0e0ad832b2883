package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/olehsv/videolanding/internal/models"
)

// FileCatalogRepository persists the catalog as a single JSON file holding
// the whole ordered collection. Every mutation rewrites the file as a full
// replace; there are no partial writes.
type FileCatalogRepository struct {
	path string
	log  *zap.Logger

	mu      sync.Mutex
	entries []models.VideoEntry
	loaded  bool
}

// NewFileCatalogRepository creates a repository backed by the JSON file at
// path. The file is read lazily on first use.
func NewFileCatalogRepository(path string, log *zap.Logger) *FileCatalogRepository {
	return &FileCatalogRepository{path: path, log: log}
}

// load reads the persisted collection into memory once. Reads are
// permissive: a missing file or unparseable content yields an empty
// catalog. Corrupt data is logged so it is never lost silently.
func (r *FileCatalogRepository) load() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.entries = []models.VideoEntry{}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("failed to read catalog file, starting empty",
				zap.String("path", r.path), zap.Error(err))
		}
		return
	}

	var entries []models.VideoEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		r.log.Warn("catalog file is corrupt, starting empty",
			zap.String("path", r.path), zap.Error(err))
		return
	}
	r.entries = entries
}

// save rewrites the whole collection atomically via a temp file rename.
func (r *FileCatalogRepository) save() error {
	data, err := json.Marshal(r.entries)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

// List returns a copy of the collection in insertion order.
func (r *FileCatalogRepository) List(_ context.Context) ([]models.VideoEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load()

	out := make([]models.VideoEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// Add appends a new entry and persists the collection. If persisting
// fails, the in-memory state is rolled back so memory never diverges from
// disk.
func (r *FileCatalogRepository) Add(_ context.Context, title, description, url, videoType string) (*models.VideoEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load()

	entry := models.VideoEntry{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		URL:         url,
		Type:        videoType,
	}
	r.entries = append(r.entries, entry)

	if err := r.save(); err != nil {
		r.entries = r.entries[:len(r.entries)-1]
		return nil, err
	}
	return &entry, nil
}

// Remove filters out the entry with the given id and persists the result.
// An absent id leaves the store untouched.
func (r *FileCatalogRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load()

	idx := -1
	for i, e := range r.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	removed := r.entries[idx]
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)

	if err := r.save(); err != nil {
		r.entries = append(r.entries[:idx], append([]models.VideoEntry{removed}, r.entries[idx:]...)...)
		return err
	}
	return nil
}
