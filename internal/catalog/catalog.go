package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"photoscan/internal/apperr"
	"photoscan/internal/logging"
	"photoscan/internal/metrics"
	"photoscan/internal/sidecar"
)

const defaultTimeout = 5 * time.Second

// Catalog is a SQLite-backed index of scanned sidecars.
type Catalog struct {
	db     *sql.DB
	dbPath string
}

// DuplicateGroup is a set of originals sharing one content hash.
type DuplicateGroup struct {
	Hash      string   `json:"hash"`
	SizeBytes uint64   `json:"size_bytes"`
	Paths     []string `json:"paths"`
}

// Open opens (creating if needed) the catalog database at dbPath. The parent
// directory must exist and be writable.
func Open(ctx context.Context, dbPath string) (*Catalog, error) {
	// busy_timeout prevents "database is locked" errors when a scan and a
	// dedupe query overlap.
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, apperr.IOf("failed to open catalog %s: %v", dbPath, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, apperr.IOf("failed to connect to catalog %s: %v", dbPath, err)
	}

	c := &Catalog{db: db, dbPath: dbPath}
	if err := c.initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logging.Debug("Catalog opened at %s", dbPath)
	return c, nil
}

func (c *Catalog) initialize(ctx context.Context) error {
	timer := time.Now()
	defer func() {
		metrics.CatalogQueryDuration.WithLabelValues("init_schema").Observe(time.Since(timer).Seconds())
	}()

	schema := `
	CREATE TABLE IF NOT EXISTS sidecars (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		original_path TEXT NOT NULL UNIQUE,
		file_hash TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		schema_version TEXT NOT NULL,
		scanned_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sidecars_file_hash ON sidecars(file_hash);
	`
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return apperr.IOf("failed to initialize catalog schema: %v", err)
	}
	return nil
}

// AddSidecar upserts one sidecar into the catalog, keyed by original path.
// Re-scanning a file replaces its row rather than duplicating it.
func (c *Catalog) AddSidecar(ctx context.Context, s *sidecar.Sidecar) error {
	timer := time.Now()
	defer func() {
		metrics.CatalogQueryDuration.WithLabelValues("add_sidecar").Observe(time.Since(timer).Seconds())
	}()

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO sidecars (original_path, file_hash, file_size, schema_version, scanned_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(original_path) DO UPDATE SET
			file_hash = excluded.file_hash,
			file_size = excluded.file_size,
			schema_version = excluded.schema_version,
			scanned_at = excluded.scanned_at`,
		s.Source.FilePath, s.Source.FileHash, s.Source.FileSizeBytes,
		s.SchemaVersion, s.UpdatedAt)
	if err != nil {
		return apperr.IOf("failed to index sidecar for %s: %v", s.Source.FilePath, err)
	}

	metrics.CatalogSidecarsIndexed.Inc()
	return nil
}

// IndexTree loads every sidecar under root into the catalog. Corrupt or
// unreadable sidecars are counted as skipped, not fatal; a missing root is
// an I/O error.
func (c *Catalog) IndexTree(ctx context.Context, root string) (indexed, skipped int, err error) {
	var sidecarPaths []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logging.Warn("Failed to access %s: %v", path, err)
			return nil
		}
		if !d.IsDir() && sidecar.IsSidecarPath(path) {
			sidecarPaths = append(sidecarPaths, path)
		}
		return nil
	})
	if walkErr != nil {
		return 0, 0, apperr.IOf("cannot access %s: %v", root, walkErr)
	}

	for _, path := range sidecarPaths {
		s, err := sidecar.Read(path)
		if err != nil {
			logging.Warn("Skipping %s: %v", path, err)
			skipped++
			continue
		}
		if err := c.AddSidecar(ctx, s); err != nil {
			return indexed, skipped, err
		}
		indexed++
	}

	logging.Info("Indexed %d sidecars under %s (skipped: %d)", indexed, root, skipped)
	return indexed, skipped, nil
}

// Duplicates returns groups of originals sharing a content hash, ordered by
// hash, each group's paths ordered lexically. Groups of one are not
// duplicates and are not returned.
func (c *Catalog) Duplicates(ctx context.Context) ([]DuplicateGroup, error) {
	timer := time.Now()
	defer func() {
		metrics.CatalogQueryDuration.WithLabelValues("duplicates").Observe(time.Since(timer).Seconds())
	}()

	rows, err := c.db.QueryContext(ctx, `
		SELECT file_hash, file_size, original_path
		FROM sidecars
		WHERE file_hash IN (
			SELECT file_hash FROM sidecars GROUP BY file_hash HAVING COUNT(*) > 1
		)
		ORDER BY file_hash, original_path`)
	if err != nil {
		return nil, apperr.IOf("duplicate query failed: %v", err)
	}
	defer rows.Close()

	var groups []DuplicateGroup
	for rows.Next() {
		var hash, path string
		var size uint64
		if err := rows.Scan(&hash, &size, &path); err != nil {
			return nil, apperr.IOf("failed to scan duplicate row: %v", err)
		}
		if len(groups) == 0 || groups[len(groups)-1].Hash != hash {
			groups = append(groups, DuplicateGroup{Hash: hash, SizeBytes: size})
		}
		last := &groups[len(groups)-1]
		last.Paths = append(last.Paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.IOf("duplicate query failed: %v", err)
	}
	return groups, nil
}

// Count returns the number of indexed sidecars.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	timer := time.Now()
	defer func() {
		metrics.CatalogQueryDuration.WithLabelValues("count").Observe(time.Since(timer).Seconds())
	}()

	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sidecars`).Scan(&n); err != nil {
		return 0, apperr.IOf("count query failed: %v", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	if err := c.db.Close(); err != nil {
		return apperr.IOf("failed to close catalog %s: %v", c.dbPath, err)
	}
	return nil
}
