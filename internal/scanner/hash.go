package scanner

import (
	"encoding/hex"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"

	"photoscan/internal/apperr"
	"photoscan/internal/metrics"
)

// hashChunkSize bounds the read buffer so hashing never loads a whole file
// into memory. RAW files routinely run to tens of megabytes.
const hashChunkSize = 256 * 1024

// HashFile streams the file's bytes through BLAKE2b-256 and returns the
// digest as lowercase hex. The fingerprint depends only on content: two
// byte-identical files hash the same regardless of path or timestamps.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", apperr.IOf("failed to open %s for hashing: %v", path, err)
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", apperr.Internalf("failed to initialize hasher: %v", err)
	}

	n, err := io.CopyBuffer(h, f, make([]byte, hashChunkSize))
	if err != nil {
		return "", apperr.IOf("failed to read %s while hashing: %v", path, err)
	}
	metrics.ScanBytesHashed.Add(float64(n))

	return hex.EncodeToString(h.Sum(nil)), nil
}
