package cleanup

import (
	"io/fs"
	"os"
	"path/filepath"

	"photoscan/internal/apperr"
	"photoscan/internal/logging"
	"photoscan/internal/metrics"
	"photoscan/internal/sidecar"
)

// FileType classifies a deleted file.
type FileType string

const (
	TypeSidecar   FileType = "sidecar"
	TypeBackup    FileType = "backup"
	TypeTemp      FileType = "temp"
	TypeThumbnail FileType = "thumbnail"
)

// Options selects what a cleanup run removes. If none of the selection
// fields are set, everything generated is removed.
type Options struct {
	// Recursive cleans the full subtree instead of direct children only.
	Recursive bool

	// DryRun reports deletions without performing them.
	DryRun bool

	Sidecars   bool
	Backups    bool
	Temp       bool
	Thumbnails bool
}

// All selects every generated file type.
func All() Options {
	return Options{Sidecars: true, Backups: true, Temp: true, Thumbnails: true}
}

// SidecarsOnly selects current sidecar records only.
func SidecarsOnly() Options { return Options{Sidecars: true} }

// BackupsOnly selects rotated sidecar backups only.
func BackupsOnly() Options { return Options{Backups: true} }

// TempOnly selects interrupted-write leftovers only.
func TempOnly() Options { return Options{Temp: true} }

// ThumbnailsOnly selects thumbnails referenced by sidecars only.
func ThumbnailsOnly() Options { return Options{Thumbnails: true} }

func (o Options) selection() Options {
	if !o.Sidecars && !o.Backups && !o.Temp && !o.Thumbnails {
		o.Sidecars, o.Backups, o.Temp, o.Thumbnails = true, true, true, true
	}
	return o
}

// DeletedFile is one removed (or, under dry-run, would-be-removed) file.
type DeletedFile struct {
	Path      string   `json:"path"`
	Type      FileType `json:"type"`
	SizeBytes uint64   `json:"size_bytes"`
}

// Result aggregates one cleanup invocation.
type Result struct {
	Deleted    []DeletedFile `json:"deleted"`
	TotalFiles int           `json:"total_files"`
	TotalBytes uint64        `json:"total_bytes"`
	Failed     int           `json:"failed"`
}

// target is one file staged for deletion.
type target struct {
	path string
	typ  FileType
}

// Run removes generated files under root per opts and returns what was
// deleted. A missing root is an I/O error and a root that is not a
// directory is a validation error; per-file deletion failures are counted
// and logged, never fatal.
func Run(root string, opts Options) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, apperr.IOf("cannot access %s: %v", root, err)
	}
	if !info.IsDir() {
		return nil, apperr.Validationf("%s is not a directory", root)
	}

	sel := opts.selection()
	metrics.CleanupRunsTotal.Inc()

	targets := collectTargets(root, sel)

	result := &Result{}
	for _, tgt := range targets {
		st, err := os.Lstat(tgt.path)
		if err != nil {
			// A sidecar can reference a thumbnail that is already gone.
			logging.Debug("Skipping %s: %v", tgt.path, err)
			continue
		}
		size := uint64(st.Size())

		if !sel.DryRun {
			if err := os.Remove(tgt.path); err != nil {
				logging.Warn("Failed to delete %s: %v", tgt.path, err)
				result.Failed++
				continue
			}
			metrics.CleanupFilesDeleted.WithLabelValues(string(tgt.typ)).Inc()
			metrics.CleanupBytesDeleted.Add(float64(size))
		}

		result.Deleted = append(result.Deleted, DeletedFile{
			Path:      tgt.path,
			Type:      tgt.typ,
			SizeBytes: size,
		})
		result.TotalFiles++
		result.TotalBytes += size
	}

	logging.Info("Cleanup of %s complete: %d files, %d bytes (failed: %d, dry run: %v)",
		root, result.TotalFiles, result.TotalBytes, result.Failed, sel.DryRun)
	return result, nil
}

// collectTargets walks root and stages every selected generated file, in
// discovery order. Thumbnails are found through the sidecars that reference
// them, the only authoritative source, and are staged before the sidecar so
// the reference outlives its target in no observable state.
func collectTargets(root string, sel Options) []target {
	var targets []target

	visit := func(path string) {
		switch {
		case sidecar.IsTempPath(path):
			if sel.Temp {
				targets = append(targets, target{path: path, typ: TypeTemp})
			}
		case isBackup(path):
			if sel.Backups {
				targets = append(targets, target{path: path, typ: TypeBackup})
			}
		case sidecar.IsSidecarPath(path):
			if sel.Thumbnails {
				targets = append(targets, thumbnailTargets(path)...)
			}
			if sel.Sidecars {
				targets = append(targets, target{path: path, typ: TypeSidecar})
			}
		}
	}

	if !sel.Recursive {
		children, err := os.ReadDir(root)
		if err != nil {
			logging.Warn("Failed to list %s: %v", root, err)
			return nil
		}
		for _, d := range children {
			if d.IsDir() {
				continue
			}
			visit(filepath.Join(root, d.Name()))
		}
		return targets
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Warn("Failed to access %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		visit(path)
		return nil
	})
	if err != nil {
		logging.Warn("Walk of %s ended early: %v", root, err)
	}
	return targets
}

func isBackup(path string) bool {
	_, ok := sidecar.IsBackupPath(path)
	return ok
}

// thumbnailTargets reads a sidecar and stages the thumbnails it references.
// Relative thumbnail paths resolve against the sidecar's directory. An
// unreadable or corrupt sidecar contributes no thumbnails.
func thumbnailTargets(sidecarPath string) []target {
	s, err := sidecar.Read(sidecarPath)
	if err != nil {
		logging.Debug("Cannot read %s for thumbnail cleanup: %v", sidecarPath, err)
		return nil
	}

	var targets []target
	for _, th := range s.Thumbnails {
		p := th.Path
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(sidecarPath), p)
		}
		targets = append(targets, target{path: p, typ: TypeThumbnail})
	}
	return targets
}
