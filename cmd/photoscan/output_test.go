package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "single",
			input: "*.jpg",
			want:  []string{"*.jpg"},
		},
		{
			name:  "several with spaces",
			input: "*.jpg, *.png ,**/raw/**",
			want:  []string{"*.jpg", "*.png", "**/raw/**"},
		},
		{
			name:  "trailing comma",
			input: "*.jpg,",
			want:  []string{"*.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsePatterns(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePatterns(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewResponse(t *testing.T) {
	start := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	end := start.Add(1500 * time.Millisecond)

	r := newResponse("payload", start, end)
	if r.StartedAt != "2025-01-15T14:30:00Z" {
		t.Errorf("StartedAt = %q", r.StartedAt)
	}
	if r.FinishedAt != "2025-01-15T14:30:01Z" {
		t.Errorf("FinishedAt = %q", r.FinishedAt)
	}
	if r.DurationMs != 1500 {
		t.Errorf("DurationMs = %d, want 1500", r.DurationMs)
	}
	if r.Data != "payload" {
		t.Errorf("Data = %v", r.Data)
	}
}

func TestProgressPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := newProgressPrinter("/photos", &buf)

	p.FileStarted("/photos/a.jpg")
	if buf.Len() != 0 {
		t.Errorf("start printed output: %q", buf.String())
	}

	p.FileCompleted("/photos/a.jpg", 100, nil)
	p.FileCompleted("/photos/sub/b.jpg", 0, errors.New("permission denied"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	// Non-terminal writers use plain markers.
	if lines[0] != "a.jpg ... ok" {
		t.Errorf("success line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "sub/b.jpg ... FAILED") || !strings.Contains(lines[1], "permission denied") {
		t.Errorf("failure line = %q", lines[1])
	}
}
