// Package catalog maintains a SQLite index of scanned sidecars and answers
// duplicate queries over it. Duplicate detection is the primary consumer of
// the content fingerprint: two originals with the same hash hold the same
// bytes, wherever they live.
package catalog
