package bookmark

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one page is converted at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrent pages; beyond this the build is disk-bound.
	MaxWorkers = 16
)

// ResolveWorkers determines how many pages Build converts at once.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs.
func ResolveWorkers(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	return min(max(n, MinWorkers), MaxWorkers)
}
