// Package cleanup removes generated files: sidecars, their backups,
// interrupted-write temp files, and thumbnails referenced by sidecars.
// Original media files are never touched. Dry-run reports what would be
// deleted without deleting anything.
package cleanup
