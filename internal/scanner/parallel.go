package scanner

import (
	"sync"

	"photoscan/internal/logging"
	"photoscan/internal/metrics"
)

// scanJob is one candidate dispatched to the pool. slot is the candidate's
// position in the entry list, so results land in discovery order no matter
// which worker finishes first.
type scanJob struct {
	slot int
	path string
}

// scanEntries runs the per-file pipeline for every candidate entry on a
// bounded worker pool. Filter skips pass through unchanged. Sidecar paths
// derive 1:1 from original paths and each candidate is dispatched exactly
// once, so no two workers ever write the same sidecar.
func scanEntries(entries []walkEntry, opts Options) []ScannedFile {
	results := make([]ScannedFile, len(entries))
	jobs := make(chan scanJob, len(entries))

	numWorkers := opts.workerCount()
	if numWorkers > len(entries) {
		numWorkers = len(entries)
	}
	metrics.ScanWorkers.Set(float64(numWorkers))
	logging.Debug("Scanning %d entries with %d workers", len(entries), numWorkers)

	sink := opts.progress()
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.slot] = scanCandidate(job.path, opts.DryRun, sink)
			}
		}()
	}

	for i, e := range entries {
		if e.skip != nil {
			results[i] = *e.skip
			continue
		}
		jobs <- scanJob{slot: i, path: e.path}
	}
	close(jobs)
	wg.Wait()

	return results
}
