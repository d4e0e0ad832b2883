package service

import "testing"

func TestResolveEmbedID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed link", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"v path", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"user path", "https://www.youtube.com/u/someuser/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"second query param", "https://www.youtube.com/watch?feature=shared&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"trailing query", "https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ", true},
		{"trailing fragment", "https://youtu.be/dQw4w9WgXcQ#start", "dQw4w9WgXcQ", true},
		{"plain file", "https://example.com/video.mp4", "", false},
		{"too short", "https://youtu.be/short", "", false},
		{"too long", "https://youtu.be/waaaaaaaaytoolong", "", false},
		{"empty candidate", "https://youtu.be/", "", false},
		{"vimeo", "https://vimeo.com/123456789", "", false},
		{"empty string", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveEmbedID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ResolveEmbedID(%q) ok = %v; want %v", tt.url, ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("ResolveEmbedID(%q) = %q; want %q", tt.url, id, tt.wantID)
			}
		})
	}
}
