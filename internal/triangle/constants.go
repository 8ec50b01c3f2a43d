package triangle

// ─────────────────────────────────────────────────────────────────────────────
// Solver Registry Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// AlgoNaive is the registry key of the divide and conquer solver.
	AlgoNaive = "naive"

	// AlgoMemoized is the registry key of the cached recursive solver.
	AlgoMemoized = "memoized"

	// AlgoIterative is the registry key of the bottom-up folding solver.
	AlgoIterative = "iterative"

	// DefaultAlgorithm is the solver used when the caller expresses no
	// preference. The bottom-up fold is linear in the number of cells and
	// needs no recursion, so it is the only solver safe at every admitted
	// height.
	DefaultAlgorithm = AlgoIterative
)

// ─────────────────────────────────────────────────────────────────────────────
// Capacity Limits
// ─────────────────────────────────────────────────────────────────────────────
//
// These limits turn runaway inputs into typed errors before any memory is
// committed. They are deliberately generous defaults; hosts tune them through
// Options or let config.ApplyAdaptiveLimits estimate them from the hardware.

const (
	// DefaultMaxRows caps the height of admitted triangles. The bottom-up
	// fold keeps one arbitrary-precision accumulator per base column, so a
	// million rows stays within ordinary memory budgets while covering any
	// realistic input.
	DefaultMaxRows = 1_000_000

	// DefaultMaxRecursionRows caps the height accepted by the recursive
	// solvers. The memoized walk recurses one frame per row and caches one
	// cell per triangle position; at 2048 rows that is roughly 2M cached
	// cells, past which the iterative solver is strictly better.
	DefaultMaxRecursionRows = 2048
)

// ─────────────────────────────────────────────────────────────────────────────
// Progress Reporting Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// progressReportSteps is the number of progress notifications a solver
	// aims to emit over a full run. Observers receive a bounded stream no
	// matter how many cells or paths the solve visits.
	progressReportSteps = 256
)
