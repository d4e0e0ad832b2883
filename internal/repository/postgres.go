package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/olehsv/videolanding/internal/models"
)

// videosSchema keeps the catalog table definition in one place.
// position preserves insertion order for display.
const videosSchema = `
CREATE TABLE IF NOT EXISTS videos (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    url TEXT NOT NULL,
    type TEXT NOT NULL,
    position BIGSERIAL
);
`

// InitPostgres opens a PostgreSQL connection and ensures the catalog
// schema exists.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(videosSchema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}

// PostgresCatalogRepository implements CatalogRepository against a
// PostgreSQL database. It is the alternative catalog backend for
// deployments that outgrow the single-file store.
type PostgresCatalogRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCatalogRepository creates a repository using the provided
// *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

// List fetches all catalog entries in insertion order.
func (r *PostgresCatalogRepository) List(ctx context.Context) ([]models.VideoEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, description, url, type FROM videos ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	entries := []models.VideoEntry{}
	for rows.Next() {
		var e models.VideoEntry
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.URL, &e.Type); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Add inserts a new entry with a freshly generated id.
func (r *PostgresCatalogRepository) Add(ctx context.Context, title, description, url, videoType string) (*models.VideoEntry, error) {
	entry := models.VideoEntry{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		URL:         url,
		Type:        videoType,
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO videos (id, title, description, url, type) VALUES ($1, $2, $3, $4, $5)
	`, entry.ID, entry.Title, entry.Description, entry.URL, entry.Type)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	return &entry, nil
}

// Remove deletes the entry with the given id. Deleting an absent id
// affects zero rows and is not an error.
func (r *PostgresCatalogRepository) Remove(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	return nil
}
