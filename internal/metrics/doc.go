// Package metrics provides Prometheus instrumentation for photoscan.
//
// All metrics are prefixed with "photoscan_" to avoid naming collisions with
// other applications. Collectors are registered with the default registry via
// promauto at package initialization; the scan command can expose them over
// HTTP with --metrics-listen for long-running scans, and embedding
// applications may gather them from prometheus.DefaultGatherer.
//
// # Metric Categories
//
// ## Scan Metrics
//
//   - ScanRunsTotal: Counter of scan invocations
//   - ScanLastRunTimestamp / ScanLastRunDuration: Gauges for the last run
//   - ScanFilesTotal: Counter of handled files by outcome (written, skipped, failed)
//   - ScanFileDuration: Histogram of per-file scan duration
//   - ScanBytesHashed: Counter of bytes fed through the content hasher
//   - ScanWorkers: Gauge of the current worker pool size
//
// ## Sidecar Persistence Metrics
//
//   - SidecarWritesTotal / SidecarWriteErrors: Counters of atomic writes
//   - SidecarBackupRotations: Counter of backup chain rotations
//
// ## Cleanup Metrics
//
//   - CleanupRunsTotal: Counter of cleanup invocations
//   - CleanupFilesDeleted: Counter of deleted files by type
//   - CleanupBytesDeleted: Counter of reclaimed bytes
//
// ## Catalog Metrics
//
//   - CatalogSidecarsIndexed: Counter of sidecars loaded for duplicate detection
//   - CatalogQueryDuration: Histogram of catalog query duration by operation
package metrics
