package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan metrics
var (
	ScanRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoscan_scan_runs_total",
			Help: "Total number of scan invocations",
		},
	)

	ScanLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photoscan_scan_last_run_timestamp",
			Help: "Unix timestamp of the last completed scan",
		},
	)

	ScanLastRunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photoscan_scan_last_run_duration_seconds",
			Help: "Duration of the last completed scan in seconds",
		},
	)

	ScanFilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoscan_scan_files_total",
			Help: "Total number of files handled by scans, by outcome",
		},
		[]string{"outcome"}, // "written", "skipped", "failed"
	)

	ScanFileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "photoscan_scan_file_duration_seconds",
			Help:    "Per-file scan duration (metadata read, hash, persist) in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	ScanBytesHashed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoscan_scan_bytes_hashed_total",
			Help: "Total number of bytes fed through the content hasher",
		},
	)

	ScanWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photoscan_scan_workers",
			Help: "Worker pool size of the current scan",
		},
	)
)

// Sidecar persistence metrics
var (
	SidecarWritesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoscan_sidecar_writes_total",
			Help: "Total number of sidecars written atomically",
		},
	)

	SidecarWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoscan_sidecar_write_errors_total",
			Help: "Total number of failed sidecar writes",
		},
	)

	SidecarBackupRotations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoscan_sidecar_backup_rotations_total",
			Help: "Total number of backup chain rotations performed before a rewrite",
		},
	)
)

// Cleanup metrics
var (
	CleanupRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoscan_cleanup_runs_total",
			Help: "Total number of cleanup invocations",
		},
	)

	CleanupFilesDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoscan_cleanup_files_deleted_total",
			Help: "Total number of generated files deleted, by type",
		},
		[]string{"type"}, // "sidecar", "backup", "temp", "thumbnail"
	)

	CleanupBytesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoscan_cleanup_bytes_deleted_total",
			Help: "Total number of bytes reclaimed by cleanup",
		},
	)
)

// Catalog metrics
var (
	CatalogSidecarsIndexed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoscan_catalog_sidecars_indexed_total",
			Help: "Total number of sidecars loaded into the duplicate catalog",
		},
	)

	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photoscan_catalog_query_duration_seconds",
			Help:    "Catalog query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)
)
