package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	// --- Scan outcomes ---
	for _, outcome := range []string{"written", "skipped", "failed"} {
		ScanFilesTotal.WithLabelValues(outcome)
	}

	// --- Cleanup file types ---
	for _, t := range []string{"sidecar", "backup", "temp", "thumbnail"} {
		CleanupFilesDeleted.WithLabelValues(t)
	}

	// --- Catalog query operations ---
	for _, op := range []string{"init_schema", "add_sidecar", "duplicates", "count"} {
		CatalogQueryDuration.WithLabelValues(op)
	}
}
