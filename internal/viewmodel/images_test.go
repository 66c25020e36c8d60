package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewImageResolver_StripsVersionSegment(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		fileName string
		want     string
	}{
		{
			name:     "versioned base",
			baseURL:  "https://api.datsan.vn/api/v1",
			fileName: "abc123.jpg",
			want:     "https://api.datsan.vn/api/files/abc123.jpg",
		},
		{
			name:     "versioned base with trailing slash",
			baseURL:  "https://api.datsan.vn/api/v1/",
			fileName: "abc123.jpg",
			want:     "https://api.datsan.vn/api/files/abc123.jpg",
		},
		{
			name:     "v2 segment",
			baseURL:  "https://api.datsan.vn/api/v2",
			fileName: "x.png",
			want:     "https://api.datsan.vn/api/files/x.png",
		},
		{
			name:     "unversioned base kept as is",
			baseURL:  "https://api.datsan.vn/api",
			fileName: "x.png",
			want:     "https://api.datsan.vn/api/files/x.png",
		},
		{
			name:     "leading slash on candidate",
			baseURL:  "https://api.datsan.vn/api/v1",
			fileName: "/x.png",
			want:     "https://api.datsan.vn/api/files/x.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewImageResolver(tt.baseURL)
			assert.Equal(t, tt.want, r.Resolve(tt.fileName, "k"))
		})
	}
}

func TestImageResolver_AbsoluteURLPassesThrough(t *testing.T) {
	r := NewImageResolver("https://api.datsan.vn/api/v1")
	assert.Equal(t, "https://cdn.example.com/a.jpg", r.Resolve("https://cdn.example.com/a.jpg", "k"))
	assert.Equal(t, "http://cdn.example.com/a.jpg", r.Resolve("http://cdn.example.com/a.jpg", "k"))
}

func TestImageResolver_EmptyFallsBackToPlaceholder(t *testing.T) {
	r := NewImageResolver("https://api.datsan.vn/api/v1")

	got := r.Resolve("", "loc-42")
	assert.Contains(t, got, "placeholder_court_")

	// deterministic in the key
	assert.Equal(t, got, r.Resolve("  ", "loc-42"))
	assert.Equal(t, got, Placeholder("loc-42"))
}

func TestImageResolver_ResolveFirst(t *testing.T) {
	r := NewImageResolver("https://api.datsan.vn/api/v1")

	got := r.ResolveFirst([]string{"", "  ", "real.jpg"}, "k")
	assert.Equal(t, "https://api.datsan.vn/api/files/real.jpg", got)

	assert.Equal(t, Placeholder("k"), r.ResolveFirst(nil, "k"))
	assert.Equal(t, Placeholder("k"), r.ResolveFirst([]string{"", ""}, "k"))
}

func TestImageResolver_ResolveAll(t *testing.T) {
	r := NewImageResolver("https://api.datsan.vn/api/v1")

	got := r.ResolveAll([]string{"a.jpg", "https://cdn.example.com/b.jpg"}, "k")
	assert.Equal(t, []string{
		"https://api.datsan.vn/api/files/a.jpg",
		"https://cdn.example.com/b.jpg",
	}, got)

	assert.Equal(t, []string{Placeholder("k")}, r.ResolveAll(nil, "k"))
}
