package solve

import "errors"

// Error kinds (§7). Every error surfaces to the solver's entrypoint; the
// board is always restored to the caller's starting configuration before
// returning, regardless of outcome (§8.8).
var (
	// ErrNoSolution means the search space was exhausted without finding a solution.
	ErrNoSolution = errors.New("solve: no solution")
	// ErrCancelled means the caller's cancellation flag was observed set.
	ErrCancelled = errors.New("solve: cancelled")
	// ErrOutOfMemory means free memory dropped below the configured floor.
	ErrOutOfMemory = errors.New("solve: out of memory")
	// ErrDeadlockAtStart means the b-type lower-bound estimator reported DEADLOCK
	// for the starting position.
	ErrDeadlockAtStart = errors.New("solve: deadlock at start")
)
