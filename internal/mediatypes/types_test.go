package mediatypes

import (
	"testing"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "JPEG image",
			path: "photo.jpg",
			want: true,
		},
		{
			name: "uppercase extension",
			path: "photo.JPG",
			want: true,
		},
		{
			name: "jpeg variant",
			path: "photo.jpeg",
			want: true,
		},
		{
			name: "PNG image",
			path: "photo.png",
			want: true,
		},
		{
			name: "HEIC image",
			path: "photo.heic",
			want: true,
		},
		{
			name: "generic RAW",
			path: "photo.raw",
			want: true,
		},
		{
			name: "Canon RAW",
			path: "photo.cr2",
			want: true,
		},
		{
			name: "Nikon RAW",
			path: "photo.nef",
			want: true,
		},
		{
			name: "Sony RAW",
			path: "photo.arw",
			want: true,
		},
		{
			name: "Adobe DNG",
			path: "photo.dng",
			want: true,
		},
		{
			name: "TIFF",
			path: "photo.tiff",
			want: true,
		},
		{
			name: "short TIFF",
			path: "photo.tif",
			want: true,
		},
		{
			name: "WebP",
			path: "photo.webp",
			want: true,
		},
		{
			name: "full path",
			path: "/photos/2020/IMG_1234.JPG",
			want: true,
		},
		{
			name: "text file",
			path: "notes.txt",
			want: false,
		},
		{
			name: "video file",
			path: "clip.mp4",
			want: false,
		},
		{
			name: "no extension",
			path: "photo",
			want: false,
		},
		{
			name: "sidecar json",
			path: "photo.jpg.json",
			want: false,
		},
		{
			name: "dotfile",
			path: ".gitignore",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSupported(tt.path); got != tt.want {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "lowercase",
			path: "a.jpg",
			want: ".jpg",
		},
		{
			name: "uppercase normalized",
			path: "a.NEF",
			want: ".nef",
		},
		{
			name: "no extension",
			path: "a",
			want: "",
		},
		{
			name: "trailing dot",
			path: "a.",
			want: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ext(tt.path); got != tt.want {
				t.Errorf("Ext(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMimeType(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want string
	}{
		{
			name: "JPEG mime type",
			ext:  ".jpg",
			want: "image/jpeg",
		},
		{
			name: "TIFF mime type",
			ext:  ".tif",
			want: "image/tiff",
		},
		{
			name: "Canon RAW mime type",
			ext:  ".cr2",
			want: "image/x-canon-cr2",
		},
		{
			name: "Unknown extension returns octet-stream",
			ext:  ".xyz",
			want: "application/octet-stream",
		},
		{
			name: "Empty extension returns octet-stream",
			ext:  "",
			want: "application/octet-stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MimeType(tt.ext); got != tt.want {
				t.Errorf("MimeType(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}
