package scanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"photoscan/internal/logging"
	"photoscan/internal/mediatypes"
)

// walkEntry is one discovered file, either already classified as a filter
// skip or a candidate awaiting a scan. Entries keep discovery order so the
// final result is deterministic given a deterministic directory listing.
type walkEntry struct {
	path string
	skip *ScannedFile // non-nil when filtered out before scanning
}

// collectEntries lists candidate files under root. Non-recursive walks visit
// direct children only; recursive walks visit the full subtree. Directories
// are never candidates. Listing errors on individual entries are logged and
// the entry is dropped; they never abort the walk.
//
// Filters apply per candidate in a fixed order, each short-circuiting the
// rest: exclude patterns, then include patterns, then the supported-extension
// check. A filtered candidate is recorded as skipped and is never read.
func collectEntries(root string, recursive bool, include, exclude *patternSet) []walkEntry {
	var entries []walkEntry

	visit := func(path string, d fs.DirEntry) {
		if d.IsDir() {
			return
		}
		entries = append(entries, classify(root, path, include, exclude))
	}

	if !recursive {
		children, err := os.ReadDir(root)
		if err != nil {
			logging.Warn("Failed to list %s: %v", root, err)
			return nil
		}
		for _, d := range children {
			visit(filepath.Join(root, d.Name()), d)
		}
		return entries
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Warn("Failed to access %s: %v", path, err)
			return nil
		}
		if path == root {
			return nil
		}
		visit(path, d)
		return nil
	})
	if err != nil {
		logging.Warn("Walk of %s ended early: %v", root, err)
	}
	return entries
}

// classify applies the filter chain to one discovered file.
func classify(root, path string, include, exclude *patternSet) walkEntry {
	rel := relSlash(root, path)

	if exclude != nil && exclude.matches(rel) {
		return skipEntry(path, ReasonExcluded)
	}
	if include != nil && !include.matches(rel) {
		return skipEntry(path, ReasonNotIncluded)
	}
	if !mediatypes.IsSupported(path) {
		return skipEntry(path, ReasonUnsupported)
	}
	return walkEntry{path: path}
}

func skipEntry(path, reason string) walkEntry {
	return walkEntry{
		path: path,
		skip: &ScannedFile{Path: path, Action: ActionSkipped, Reason: reason},
	}
}

// relSlash returns path relative to root in slash form, the shape patterns
// match against. An include pattern like "*.jpg" then matches files directly
// under the scan root regardless of how deep the root itself sits.
func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
