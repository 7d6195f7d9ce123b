package sitegen

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one page is converted at a time.
	MinWorkers = 1

	// MaxWorkers caps automatic sizing; conversion is CPU bound and small.
	MaxWorkers = 16
)

// ResolveWorkers determines the number of parallel page conversions.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0)

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
