// Package mediatypes provides shared type definitions and utilities for media
// file handling across photoscan.
//
// This package exists as a dependency-free foundation that can be imported by
// other packages without creating import cycles. It contains constants and
// pure utility functions with no external dependencies beyond the standard
// library.
//
// # Extension Detection
//
// Use IsSupported to decide whether a path denotes a supported image file:
//
//	if mediatypes.IsSupported(path) {
//	    // Candidate for scanning
//	}
//
// The check is purely syntactic (extension only, case-insensitive); no file
// content is inspected. A path with no extension is never supported.
//
// # MIME Types
//
// Use MimeType to get the MIME type for a supported extension:
//
//	mime := mediatypes.MimeType(".jpg") // "image/jpeg"
//
// # Supported Formats
//
// The ImageExtensions map can be used directly for validation or iteration:
//
//	if mediatypes.ImageExtensions[ext] {
//	    // Extension is a supported image format
//	}
package mediatypes
