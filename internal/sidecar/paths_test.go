package sidecar

import (
	"testing"
)

func TestPathDerivations(t *testing.T) {
	original := "/photos/2020/IMG_1234.JPG"

	if got := PathFor(original); got != "/photos/2020/IMG_1234.JPG.json" {
		t.Errorf("PathFor = %q", got)
	}
	if got := TempPathFor(original); got != "/photos/2020/IMG_1234.JPG.json.tmp" {
		t.Errorf("TempPathFor = %q", got)
	}
	if got := BackupPathFor(original, 1); got != "/photos/2020/IMG_1234.JPG.json.bak1" {
		t.Errorf("BackupPathFor(1) = %q", got)
	}
	if got := BackupPathFor(original, 3); got != "/photos/2020/IMG_1234.JPG.json.bak3" {
		t.Errorf("BackupPathFor(3) = %q", got)
	}
}

func TestIsSidecarPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "sidecar for jpg",
			path: "a/b/photo.jpg.json",
			want: true,
		},
		{
			name: "sidecar for uppercase original",
			path: "IMG_1234.JPG.json",
			want: true,
		},
		{
			name: "sidecar for raw",
			path: "shot.nef.json",
			want: true,
		},
		{
			name: "unrelated json",
			path: "config.json",
			want: false,
		},
		{
			name: "json for non-image",
			path: "notes.txt.json",
			want: false,
		},
		{
			name: "original image itself",
			path: "photo.jpg",
			want: false,
		},
		{
			name: "backup file",
			path: "photo.jpg.json.bak1",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSidecarPath(tt.path); got != tt.want {
				t.Errorf("IsSidecarPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsTempPath(t *testing.T) {
	if !IsTempPath("photo.jpg.json.tmp") {
		t.Error("expected temp path to be recognized")
	}
	if IsTempPath("photo.jpg.json") {
		t.Error("sidecar path misidentified as temp")
	}
	if IsTempPath("notes.txt.json.tmp") {
		t.Error("temp for non-image misidentified")
	}
}

func TestIsBackupPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantGen int
		wantOK  bool
	}{
		{
			name:    "first generation",
			path:    "photo.jpg.json.bak1",
			wantGen: 1,
			wantOK:  true,
		},
		{
			name:    "third generation",
			path:    "photo.cr2.json.bak3",
			wantGen: 3,
			wantOK:  true,
		},
		{
			name:   "generation beyond depth",
			path:   "photo.jpg.json.bak4",
			wantOK: false,
		},
		{
			name:   "backup of non-image json",
			path:   "notes.txt.json.bak1",
			wantOK: false,
		},
		{
			name:   "plain sidecar",
			path:   "photo.jpg.json",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, ok := IsBackupPath(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("IsBackupPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && gen != tt.wantGen {
				t.Errorf("IsBackupPath(%q) gen = %d, want %d", tt.path, gen, tt.wantGen)
			}
		})
	}
}

func TestOriginalFor(t *testing.T) {
	got, ok := OriginalFor("a/photo.jpg.json")
	if !ok || got != "a/photo.jpg" {
		t.Errorf("OriginalFor = (%q, %v)", got, ok)
	}

	if _, ok := OriginalFor("config.json"); ok {
		t.Error("OriginalFor should reject non-sidecar json")
	}
}
