// Package scanner implements the scan pipeline: directory traversal with
// include/exclude filtering, content hashing, and sidecar persistence.
//
// ScanPath is the entry point. It dispatches to a single-file scan or a
// directory walk depending on the path kind, fans candidate files out over a
// bounded worker pool, and aggregates per-file outcomes into a Result. A
// failure scanning one file is recorded in that file's entry and never aborts
// the rest of the run; only path-level problems (missing root, unsupported
// single file) fail the whole call.
package scanner
