package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupCatalogMock(t *testing.T) (*PostgresCatalogRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresCatalogRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestPostgresList(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "url", "type"}).
		AddRow("id-1", "Весілля", "", "https://youtu.be/dQw4w9WgXcQ", "wedding").
		AddRow("id-2", "Ювілей", "опис", "https://example.com/v.mp4", "anniversary")
	mock.ExpectQuery("SELECT id, title, description, url, type FROM videos ORDER BY position").
		WillReturnRows(rows)

	entries, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "id-1" || entries[1].ID != "id-2" {
		t.Errorf("order not preserved: %+v", entries)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresList_Empty(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, title, description, url, type FROM videos").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "url", "type"}))

	entries, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", entries)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresAdd(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO videos (id, title, description, url, type) VALUES ($1, $2, $3, $4, $5)`)).
		WithArgs(sqlmock.AnyArg(), "title", "desc", "https://example.com", "corporate").
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry, err := repo.Add(context.Background(), "title", "desc", "https://example.com", "corporate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected a generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresAdd_Error(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO videos").
		WillReturnError(errors.New("insert failed"))

	if _, err := repo.Add(context.Background(), "t", "", "u", "other"); err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresRemove(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM videos WHERE id = $1`)).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Remove(context.Background(), "id-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresRemove_AbsentID(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM videos WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Remove(context.Background(), "missing"); err != nil {
		t.Fatalf("removing an absent id must not error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
