package service_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/olehsv/videolanding/internal/models"
	"github.com/olehsv/videolanding/internal/service"
)

type mockCatalogRepo struct {
	ListFunc   func(ctx context.Context) ([]models.VideoEntry, error)
	AddFunc    func(ctx context.Context, title, description, url, videoType string) (*models.VideoEntry, error)
	RemoveFunc func(ctx context.Context, id string) error
}

func (m *mockCatalogRepo) List(ctx context.Context) ([]models.VideoEntry, error) {
	return m.ListFunc(ctx)
}
func (m *mockCatalogRepo) Add(ctx context.Context, title, description, url, videoType string) (*models.VideoEntry, error) {
	return m.AddFunc(ctx, title, description, url, videoType)
}
func (m *mockCatalogRepo) Remove(ctx context.Context, id string) error {
	return m.RemoveFunc(ctx, id)
}

func TestCatalogList_AnnotatesEmbeds(t *testing.T) {
	repo := &mockCatalogRepo{
		ListFunc: func(context.Context) ([]models.VideoEntry, error) {
			return []models.VideoEntry{
				{ID: "1", Title: "embeddable", URL: "https://youtu.be/dQw4w9WgXcQ", Type: "wedding"},
				{ID: "2", Title: "plain", URL: "https://example.com/video.mp4", Type: "other"},
			}, nil
		},
	}
	svc := service.NewCatalogService(repo, zap.NewNop())

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].EmbedID != "dQw4w9WgXcQ" {
		t.Errorf("first entry EmbedID = %q; want dQw4w9WgXcQ", out[0].EmbedID)
	}
	if out[1].EmbedID != "" {
		t.Errorf("second entry EmbedID = %q; want empty (plain link fallback)", out[1].EmbedID)
	}
}

func TestCatalogList_Cached(t *testing.T) {
	calls := 0
	repo := &mockCatalogRepo{
		ListFunc: func(context.Context) ([]models.VideoEntry, error) {
			calls++
			return []models.VideoEntry{{ID: "1", Title: "t", URL: "u", Type: "other"}}, nil
		},
	}
	svc := service.NewCatalogService(repo, zap.NewNop())

	for i := 0; i < 3; i++ {
		if _, err := svc.List(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("repository List called %d times; want 1 (cached)", calls)
	}
}

func TestCatalogAdd_InvalidatesCache(t *testing.T) {
	listCalls := 0
	repo := &mockCatalogRepo{
		ListFunc: func(context.Context) ([]models.VideoEntry, error) {
			listCalls++
			return nil, nil
		},
		AddFunc: func(_ context.Context, title, description, url, videoType string) (*models.VideoEntry, error) {
			return &models.VideoEntry{ID: "new", Title: title, Description: description, URL: url, Type: videoType}, nil
		},
	}
	svc := service.NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.List(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(ctx, "title", "", "https://example.com", "wedding"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.List(ctx); err != nil {
		t.Fatal(err)
	}

	if listCalls != 2 {
		t.Errorf("repository List called %d times; want 2 (cache invalidated by Add)", listCalls)
	}
}

func TestCatalogAdd_Validation(t *testing.T) {
	repo := &mockCatalogRepo{
		AddFunc: func(context.Context, string, string, string, string) (*models.VideoEntry, error) {
			t.Fatal("repository must not be called for invalid input")
			return nil, nil
		},
	}
	svc := service.NewCatalogService(repo, zap.NewNop())

	tests := []struct {
		name      string
		title     string
		url       string
		videoType string
		wantField string
	}{
		{"missing title", "", "https://example.com", "wedding", "title"},
		{"missing url", "title", "", "wedding", "url"},
		{"missing type", "title", "https://example.com", "", "type"},
		{"blank title", "   ", "https://example.com", "wedding", "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), tt.title, "", tt.url, tt.videoType)
			var vErr *service.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Add error = %v; want ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q; want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestCatalogRemove(t *testing.T) {
	removed := ""
	repo := &mockCatalogRepo{
		RemoveFunc: func(_ context.Context, id string) error {
			removed = id
			return nil
		},
	}
	svc := service.NewCatalogService(repo, zap.NewNop())

	if err := svc.Remove(context.Background(), "id-7"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed != "id-7" {
		t.Errorf("repository Remove called with %q; want id-7", removed)
	}
}

func TestCatalogRemove_RepoError(t *testing.T) {
	wantErr := errors.New("disk gone")
	repo := &mockCatalogRepo{
		RemoveFunc: func(context.Context, string) error { return wantErr },
	}
	svc := service.NewCatalogService(repo, zap.NewNop())

	if err := svc.Remove(context.Background(), "x"); !errors.Is(err, wantErr) {
		t.Fatalf("Remove error = %v; want %v", err, wantErr)
	}
}
