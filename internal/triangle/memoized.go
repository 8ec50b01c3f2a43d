package triangle

import (
	"context"
	"math/big"

	"github.com/agbru/tricalc/internal/progress"
)

// MemoizedTopDown is the cached recursive strategy. The best descent from
// each cell is computed once and remembered for the duration of the call,
// collapsing the naive walk to one visit per cell. The cache lives on the
// stack frame of SolveCore and is never shared, so concurrent and repeated
// solves stay independent.
type MemoizedTopDown struct{}

// Name implements coreSolver.
func (s *MemoizedTopDown) Name() string {
	return "Memoized Top-Down (O(n^2), Per-Call Cache)"
}

// Description implements coreSolver.
func (s *MemoizedTopDown) Description() string {
	return "Top-down recursion with a per-call cache of best descents"
}

// SolveCore computes the best sum from the apex downwards, memoizing each
// cell on first visit. Progress counts filled cache cells out of the
// rows*(rows+1)/2 total, reported on a stride.
func (s *MemoizedTopDown) SolveCore(ctx context.Context, report progress.ProgressCallback, t Triangle, opts Options) (*big.Int, error) {
	if err := opts.checkRecursionRows(len(t)); err != nil {
		return nil, err
	}

	cache := newMemoCache(len(t))
	total := float64(cache.size())
	stride := cache.size() / progressReportSteps
	if stride == 0 {
		stride = 1
	}
	last := len(t) - 1

	var maxFrom func(i, j int) (*Int, error)
	maxFrom = func(i, j int) (*Int, error) {
		if v := cache.get(i, j); v != nil {
			return v, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sum := newInt(t[i][j])
		if i < last {
			down, err := maxFrom(i+1, j)
			if err != nil {
				return nil, err
			}
			diag, err := maxFrom(i+1, j+1)
			if err != nil {
				return nil, err
			}
			best := down
			if best.Cmp(diag) < 0 {
				best = diag
			}
			sum.Add(sum, best)
		}

		cache.put(i, j, sum)
		if cache.filled%stride == 0 {
			progress.ReportStepProgress(report, float64(cache.filled), total)
		}
		return sum, nil
	}

	sum, err := maxFrom(0, 0)
	if err != nil {
		return nil, err
	}
	progress.ReportStepProgress(report, total, total)
	return toBig(sum), nil
}
