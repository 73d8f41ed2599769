package scanner

import (
	"testing"

	"photoscan/internal/apperr"
)

func TestCompilePatterns(t *testing.T) {
	ps, err := compilePatterns(nil)
	if err != nil {
		t.Fatalf("compilePatterns(nil): %v", err)
	}
	if ps != nil {
		t.Error("empty pattern list should compile to a nil set")
	}

	if _, err := compilePatterns([]string{"*.jpg", "[invalid"}); err == nil {
		t.Fatal("expected error for malformed pattern")
	} else if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("error kind = %v, want validation", apperr.KindOf(err))
	}
}

func TestPatternSetMatches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{
			name:     "star matches in root",
			patterns: []string{"*.jpg"},
			path:     "photo.jpg",
			want:     true,
		},
		{
			name:     "star does not cross separators",
			patterns: []string{"*.jpg"},
			path:     "nested/photo.jpg",
			want:     false,
		},
		{
			name:     "doublestar crosses separators",
			patterns: []string{"**/*.jpg"},
			path:     "a/b/c/photo.jpg",
			want:     true,
		},
		{
			name:     "doublestar matches zero segments",
			patterns: []string{"**/.cache/**"},
			path:     ".cache/photo.jpg",
			want:     true,
		},
		{
			name:     "doublestar matches deep directory",
			patterns: []string{"**/.cache/**"},
			path:     "a/b/.cache/c/photo.jpg",
			want:     true,
		},
		{
			name:     "any of several patterns",
			patterns: []string{"*.png", "*.jpg"},
			path:     "photo.jpg",
			want:     true,
		},
		{
			name:     "question mark",
			patterns: []string{"img?.jpg"},
			path:     "img1.jpg",
			want:     true,
		},
		{
			name:     "bracket class",
			patterns: []string{"img[0-9].jpg"},
			path:     "imgx.jpg",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := compilePatterns(tt.patterns)
			if err != nil {
				t.Fatalf("compilePatterns: %v", err)
			}
			if got := ps.matches(tt.path); got != tt.want {
				t.Errorf("matches(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
