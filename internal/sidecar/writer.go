package sidecar

import (
	"encoding/json"
	"os"

	"photoscan/internal/apperr"
	"photoscan/internal/logging"
	"photoscan/internal/metrics"
)

// Write persists a sidecar for originalPath atomically.
//
// The record is serialized, written to <original>.json.tmp, fsynced, and
// renamed over <original>.json. Rename is atomic with respect to concurrent
// readers on the same filesystem, so a reader observes either the old record
// or the new one, never a mixture.
//
// If a sidecar already exists at the target, the backup chain rotates first:
// bak2 to bak3 (overwriting bak3), bak1 to bak2, current to bak1. A failure
// in the middle of rotation is reported as an I/O error and the partially
// rotated chain is left as-is; the current sidecar is never the casualty.
func Write(originalPath string, s *Sidecar) error {
	sidecarPath := PathFor(originalPath)
	tmpPath := TempPathFor(originalPath)

	if _, err := os.Lstat(sidecarPath); err == nil {
		if err := rotateBackups(originalPath); err != nil {
			metrics.SidecarWriteErrors.Inc()
			return err
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// A sidecar is plain data; marshaling it cannot legitimately fail.
		metrics.SidecarWriteErrors.Inc()
		return apperr.Internalf("failed to serialize sidecar for %s: %v", originalPath, err)
	}
	data = append(data, '\n')

	if err := writeFileSynced(tmpPath, data); err != nil {
		metrics.SidecarWriteErrors.Inc()
		return err
	}

	if err := os.Rename(tmpPath, sidecarPath); err != nil {
		metrics.SidecarWriteErrors.Inc()
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			logging.Warn("Failed to remove temp sidecar %s: %v", tmpPath, rmErr)
		}
		return apperr.IOf("failed to replace sidecar %s: %v", sidecarPath, err)
	}

	metrics.SidecarWritesTotal.Inc()
	return nil
}

// writeFileSynced writes data to path and forces it durably to storage
// before returning.
func writeFileSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return apperr.IOf("failed to create temp sidecar %s: %v", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return apperr.IOf("failed to write temp sidecar %s: %v", path, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(path)
		return apperr.IOf("failed to sync temp sidecar %s: %v", path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return apperr.IOf("failed to close temp sidecar %s: %v", path, err)
	}

	return nil
}

// rotateBackups shifts the backup chain one generation down:
// bak2 -> bak3 (bak3 is overwritten and lost), bak1 -> bak2, current -> bak1.
func rotateBackups(originalPath string) error {
	sidecarPath := PathFor(originalPath)

	for gen := BackupDepth - 1; gen >= 1; gen-- {
		src := BackupPathFor(originalPath, gen)
		dst := BackupPathFor(originalPath, gen+1)
		if _, err := os.Lstat(src); err != nil {
			continue
		}
		if err := os.Rename(src, dst); err != nil {
			return apperr.IOf("failed to rotate backup %s: %v", src, err)
		}
	}

	if err := os.Rename(sidecarPath, BackupPathFor(originalPath, 1)); err != nil {
		return apperr.IOf("failed to rotate sidecar %s to backup: %v", sidecarPath, err)
	}

	metrics.SidecarBackupRotations.Inc()
	return nil
}
