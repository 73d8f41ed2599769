package scanner

import (
	"os"
	"time"

	"photoscan/internal/apperr"
	"photoscan/internal/logging"
	"photoscan/internal/mediatypes"
	"photoscan/internal/metrics"
	"photoscan/internal/sidecar"
	"photoscan/internal/workers"
)

// defaultMaxWorkers caps the worker pool when the caller does not set one.
// Hashing is I/O bound; past a handful of workers the disk is the limit.
const defaultMaxWorkers = 8

// Options configures one scan invocation. The zero value scans
// non-recursively with no filters, persisting sidecars, with an
// automatically sized worker pool and no progress reporting.
type Options struct {
	// Recursive walks the full subtree instead of direct children only.
	Recursive bool

	// Include and Exclude are glob pattern lists matched against paths
	// relative to the scan root. Exclude wins over Include.
	Include []string
	Exclude []string

	// DryRun computes hashes and sidecars but never touches the disk.
	DryRun bool

	// MaxWorkers bounds the worker pool. Zero or negative selects a default
	// from the host CPU count.
	MaxWorkers int

	// Progress receives per-file start/complete events. Nil disables
	// progress reporting.
	Progress ProgressSink
}

func (o Options) progress() ProgressSink {
	if o.Progress == nil {
		return NopSink{}
	}
	return o.Progress
}

func (o Options) workerCount() int {
	if o.MaxWorkers > 0 {
		return o.MaxWorkers
	}
	return workers.ForIO(defaultMaxWorkers)
}

// ScanPath scans a file or directory tree and returns the aggregate result.
//
// A single supported file yields a one-entry result; an unsupported single
// file is a validation error. A directory is walked per Options and each
// surviving candidate is scanned on the worker pool. Per-file failures are
// recorded in their entries and never fail the call; only a missing path, a
// special file, or a malformed pattern does.
func ScanPath(path string, opts Options) (*Result, error) {
	include, err := compilePatterns(opts.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compilePatterns(opts.Exclude)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, apperr.IOf("cannot access %s: %v", path, err)
	}

	started := time.Now()
	metrics.ScanRunsTotal.Inc()

	var files []ScannedFile
	switch {
	case info.Mode().IsRegular():
		if !mediatypes.IsSupported(path) {
			return nil, apperr.Validationf("%s is not a supported image file", path)
		}
		files = []ScannedFile{scanCandidate(path, opts.DryRun, opts.progress())}

	case info.IsDir():
		entries := collectEntries(path, opts.Recursive, include, exclude)
		files = scanEntries(entries, opts)

	default:
		return nil, apperr.Validationf("%s is neither a file nor a directory", path)
	}

	result := newResult(files)
	for _, f := range result.Files {
		metrics.ScanFilesTotal.WithLabelValues(string(f.Action)).Inc()
	}
	metrics.ScanLastRunTimestamp.SetToCurrentTime()
	metrics.ScanLastRunDuration.Set(time.Since(started).Seconds())

	logging.Info("Scan of %s complete: %d files, %d written, %d skipped, %d failed in %v",
		path, result.TotalFiles, result.Successful, result.Skipped, result.Failed,
		time.Since(started).Round(time.Millisecond))
	return result, nil
}

// ScanFile scans one file directly, outside any directory walk, and returns
// the sidecar it produced (persisted unless dryRun). A missing path is an
// I/O error; a path that exists but is not a regular file is a validation
// error.
func ScanFile(path string, dryRun bool) (*sidecar.Sidecar, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperr.IOf("cannot access %s: %v", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, apperr.Validationf("%s is not a regular file", path)
	}
	return scanOne(path, dryRun)
}

// scanOne performs the per-file pipeline: metadata read, content hash,
// sidecar construction, and (unless dryRun) atomic persistence. Dry runs
// perform no filesystem mutation of any kind, including backup rotation.
func scanOne(path string, dryRun bool) (*sidecar.Sidecar, error) {
	timer := time.Now()
	defer func() {
		metrics.ScanFileDuration.Observe(time.Since(timer).Seconds())
	}()

	info, err := os.Stat(path)
	if err != nil {
		return nil, apperr.IOf("cannot stat %s: %v", path, err)
	}

	hash, err := HashFile(path)
	if err != nil {
		return nil, err
	}

	s := sidecar.New(sidecar.SourceInfo{
		FilePath:       path,
		FileSizeBytes:  uint64(info.Size()),
		FileHash:       hash,
		FileModifiedAt: sidecar.Timestamp(info.ModTime()),
	}, time.Now())

	if !dryRun {
		if err := sidecar.Write(path, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// scanCandidate runs scanOne for one walk candidate and folds the outcome
// into a ScannedFile, emitting the surrounding progress events.
func scanCandidate(path string, dryRun bool, sink ProgressSink) ScannedFile {
	sink.FileStarted(path)

	s, err := scanOne(path, dryRun)
	if err != nil {
		logging.Debug("Scan of %s failed: %v", path, err)
		sink.FileCompleted(path, 0, err)
		return ScannedFile{Path: path, Action: ActionFailed, Error: err.Error()}
	}

	sink.FileCompleted(path, s.Source.FileSizeBytes, nil)

	if dryRun {
		return ScannedFile{
			Path:      path,
			Action:    ActionSkipped,
			Reason:    ReasonDryRun,
			Hash:      s.Source.FileHash,
			SizeBytes: s.Source.FileSizeBytes,
		}
	}
	return ScannedFile{
		Path:        path,
		Action:      ActionWritten,
		SidecarPath: sidecar.PathFor(path),
		Hash:        s.Source.FileHash,
		SizeBytes:   s.Source.FileSizeBytes,
	}
}
