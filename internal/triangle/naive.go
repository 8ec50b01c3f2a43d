package triangle

import (
	"context"
	"math/big"

	"github.com/agbru/tricalc/internal/progress"
)

// NaiveSplit is the divide and conquer reference strategy. Each call splits
// the triangle below the apex into two copied subtriangles and recurses
// into both, so overlapping cells are recomputed and the running time
// doubles with every row. It is the executable statement of the problem,
// kept as the oracle the efficient strategies are checked against.
type NaiveSplit struct{}

// Name implements coreSolver.
func (s *NaiveSplit) Name() string {
	return "Naive Split (O(2^n), Copying Recursion)"
}

// Description implements coreSolver.
func (s *NaiveSplit) Description() string {
	return "Divide and conquer over copied subtriangles, exponential time"
}

// SolveCore walks every root-to-base path. Progress is measured in visited
// base cells out of the 2^(rows-1) total paths, reported on a stride so the
// callback count stays bounded.
func (s *NaiveSplit) SolveCore(ctx context.Context, report progress.ProgressCallback, t Triangle, opts Options) (*big.Int, error) {
	if err := opts.checkRecursionRows(len(t)); err != nil {
		return nil, err
	}

	total := progress.CalcLeafWork(len(t))
	stride := total / progressReportSteps
	var leaves, nextReport float64

	var walk func(t Triangle) (*Int, error)
	walk = func(t Triangle) (*Int, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		apex := newInt(t[0][0])
		if len(t) == 1 {
			leaves++
			if leaves >= nextReport {
				progress.ReportStepProgress(report, leaves, total)
				nextReport = leaves + stride
			}
			return apex, nil
		}

		left, right := Split(t)
		best, err := walk(left)
		if err != nil {
			return nil, err
		}
		other, err := walk(right)
		if err != nil {
			return nil, err
		}
		if best.Cmp(other) < 0 {
			best = other
		}
		return apex.Add(apex, best), nil
	}

	sum, err := walk(t)
	if err != nil {
		return nil, err
	}
	progress.ReportStepProgress(report, total, total)
	return toBig(sum), nil
}
