package mediatypes

import (
	"path/filepath"
	"strings"
)

// ImageExtensions maps file extensions to whether they are supported image
// formats. Covers common raster and RAW container formats:
//   - JPEG variants: jpg, jpeg
//   - PNG: png
//   - HEIC/HEIF (Apple formats): heic, heif
//   - RAW formats: raw (generic), cr2 (Canon), nef (Nikon), arw (Sony), dng (Adobe)
//   - TIFF: tiff, tif
//   - WebP: webp
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".heif": true,
	".raw":  true,
	".cr2":  true,
	".nef":  true,
	".arw":  true,
	".dng":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// MimeTypes maps supported extensions to their MIME types.
var MimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".heic": "image/heic",
	".heif": "image/heif",
	".raw":  "image/x-raw",
	".cr2":  "image/x-canon-cr2",
	".nef":  "image/x-nikon-nef",
	".arw":  "image/x-sony-arw",
	".dng":  "image/x-adobe-dng",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".webp": "image/webp",
}

// Ext returns the lower-cased extension of path, including the leading dot.
// Returns "" for paths without an extension.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsSupported returns true if the path's extension, lower-cased, is a
// supported image format. The check is purely syntactic; no file content is
// inspected. Paths without an extension are never supported.
func IsSupported(path string) bool {
	return ImageExtensions[Ext(path)]
}

// MimeType returns the MIME type for a given file extension. The extension
// should be lowercase and include the leading dot (e.g., ".jpg").
// Returns "application/octet-stream" if the extension is not recognized.
func MimeType(ext string) string {
	if mime, ok := MimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}
