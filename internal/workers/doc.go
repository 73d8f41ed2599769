/*
Package workers provides utilities for determining scan worker pool sizes.

# Overview

When running in containers, the number of available CPUs may be limited by
cgroup constraints. While Go 1.19+ automatically sets GOMAXPROCS based on
container CPU limits, runtime.NumCPU() still returns the host machine's CPU
count. This package derives worker counts from GOMAXPROCS so photoscan
respects container resource limits.

# Usage

The scan pipeline is I/O bound (file reads, hashing, sidecar writes), so the
scan command sizes its pool with:

	threads := workers.ForIO(8)

The limit caps the pool; a PHOTOSCAN_WORKERS environment variable overrides
the derived count for troubleshooting.
*/
package workers
