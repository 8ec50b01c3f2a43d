package config

import "runtime"

// Limit resolution chain (highest priority first):
//   1. Fields set by the embedding application
//   2. Environment variables (TRICALC_MAX_ROWS, TRICALC_MAX_RECURSION_ROWS)
//   3. Adaptive hardware estimation (this file)
//   4. Static defaults in triangle/constants.go

// ApplyAdaptiveLimits adjusts the configuration limits based on hardware
// characteristics (word size, CPU cores) when default values are detected.
// This raises the admission limits on capable machines without requiring
// explicit tuning.
//
// The function only modifies limits that are set to their zero default,
// preserving any caller-specified overrides.
func ApplyAdaptiveLimits(cfg Config) Config {
	if cfg.MaxRows == 0 {
		cfg.MaxRows = EstimateMaxRows()
	}
	if cfg.MaxRecursionRows == 0 {
		cfg.MaxRecursionRows = EstimateRecursionRowLimit()
	}
	return cfg
}

// EstimateMaxRows provides a heuristic admission limit for triangle height
// without probing memory. The bottom-up fold keeps one accumulator cell per
// base column, so height is bounded by how many arbitrary-precision cells
// one address space comfortably holds.
func EstimateMaxRows() int {
	wordSize := 32 << (^uint(0) >> 63)

	if wordSize == 64 {
		return 2_000_000 // Base row of big-int accumulators stays in the hundreds of MB
	}
	return 500_000 // Tighter address space on 32-bit
}

// EstimateRecursionRowLimit provides a heuristic height limit for the
// recursive solvers. The memoized walk keeps one cached cell per triangle
// position, which grows quadratically with height, so the limit is far
// below EstimateMaxRows.
func EstimateRecursionRowLimit() int {
	numCPU := runtime.NumCPU()
	wordSize := 32 << (^uint(0) >> 63)

	if wordSize == 64 {
		if numCPU >= 4 {
			return 4096 // Roughly 8M cached cells
		}
		return 3072
	}
	return 1024
}
