package sidecar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"photoscan/internal/mediatypes"
)

const (
	// Suffix is appended to the original file name to derive the sidecar
	// path. The derivation is fixed; sidecars always live beside their
	// originals.
	Suffix = ".json"

	// TempSuffix marks the transient file used during an atomic write.
	TempSuffix = ".tmp"

	// BackupDepth is the number of backup generations retained.
	BackupDepth = 3
)

var backupRe = regexp.MustCompile(`\.json\.bak([1-9])$`)

// PathFor returns the sidecar path for an original file: <original>.json.
func PathFor(originalPath string) string {
	return originalPath + Suffix
}

// TempPathFor returns the temporary path used while writing the sidecar for
// an original file: <original>.json.tmp.
func TempPathFor(originalPath string) string {
	return PathFor(originalPath) + TempSuffix
}

// BackupPathFor returns the path of the generation-th backup of an original
// file's sidecar: <original>.json.bak<generation>. Generation is 1-based;
// 1 is the most recent backup.
func BackupPathFor(originalPath string, generation int) string {
	return fmt.Sprintf("%s.bak%d", PathFor(originalPath), generation)
}

// IsSidecarPath reports whether path names a sidecar: a .json file whose
// stem is a supported image file.
func IsSidecarPath(path string) bool {
	if !strings.HasSuffix(path, Suffix) {
		return false
	}
	return mediatypes.IsSupported(strings.TrimSuffix(path, Suffix))
}

// IsTempPath reports whether path names an interrupted-write leftover for a
// sidecar.
func IsTempPath(path string) bool {
	if !strings.HasSuffix(path, Suffix+TempSuffix) {
		return false
	}
	return mediatypes.IsSupported(strings.TrimSuffix(path, Suffix+TempSuffix))
}

// IsBackupPath reports whether path names a sidecar backup, and if so which
// generation it is.
func IsBackupPath(path string) (int, bool) {
	m := backupRe.FindStringSubmatch(path)
	if m == nil {
		return 0, false
	}
	stem := strings.TrimSuffix(path, Suffix+".bak"+m[1])
	if !mediatypes.IsSupported(stem) {
		return 0, false
	}
	gen, err := strconv.Atoi(m[1])
	if err != nil || gen > BackupDepth {
		return 0, false
	}
	return gen, true
}

// OriginalFor returns the original file path a sidecar path refers to.
// The second return value is false when path is not a sidecar path.
func OriginalFor(sidecarPath string) (string, bool) {
	if !IsSidecarPath(sidecarPath) {
		return "", false
	}
	return strings.TrimSuffix(sidecarPath, Suffix), true
}
