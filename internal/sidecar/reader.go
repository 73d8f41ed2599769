package sidecar

import (
	"encoding/json"
	"os"

	"photoscan/internal/apperr"
)

// Read loads and decodes the sidecar at sidecarPath.
//
// Missing or unreadable files are I/O errors; malformed JSON or a record
// without a schema version is a validation error (a corrupt sidecar, not a
// filesystem problem).
func Read(sidecarPath string) (*Sidecar, error) {
	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		return nil, apperr.IOf("failed to read sidecar %s: %v", sidecarPath, err)
	}

	var s Sidecar
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, apperr.Validationf("corrupt sidecar %s: %v", sidecarPath, err)
	}

	if s.SchemaVersion == "" {
		return nil, apperr.Validationf("sidecar %s has no schema_version", sidecarPath)
	}

	return &s, nil
}

// ReadFor loads the sidecar belonging to originalPath, if any.
func ReadFor(originalPath string) (*Sidecar, error) {
	return Read(PathFor(originalPath))
}
