package triangle

import (
	"context"
	"math/big"

	"github.com/agbru/tricalc/internal/progress"
)

// IterativeBottomUp is the folding strategy. The base row is copied into an
// accumulator and the rows above are folded in one at a time; after row i
// is consumed, acc[j] holds the best sum reachable from cell (i, j)
// downwards. Space stays linear in the base width and there is no
// recursion, which makes this the preferred strategy for large inputs.
type IterativeBottomUp struct{}

// Name implements coreSolver.
func (s *IterativeBottomUp) Name() string {
	return "Iterative Bottom-Up (O(n^2) Time, O(n) Space)"
}

// Description implements coreSolver.
func (s *IterativeBottomUp) Description() string {
	return "Bottom-up fold over a single accumulator row, linear space"
}

// SolveCore folds the triangle upwards into an accumulator row. Progress
// counts folded cells against the rows*(rows-1)/2 total, reported once per
// row. The accumulator entries are updated left to right, so acc[j] is
// consumed before it is overwritten and acc[j+1] is still the value from
// the row below when read.
func (s *IterativeBottomUp) SolveCore(ctx context.Context, report progress.ProgressCallback, t Triangle, opts Options) (*big.Int, error) {
	rows := len(t)
	base := t[rows-1]
	acc := make([]*Int, len(base))
	for j, v := range base {
		acc[j] = newInt(v)
	}

	if rows == 1 {
		progress.ReportStepProgress(report, 1, 1)
		return toBig(acc[0]), nil
	}

	cum := progress.PrecomputeRowWork(rows)
	total := cum[len(cum)-1]

	tmp := new(Int)
	for i := rows - 2; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := t[i]
		for j := range row {
			best := acc[j]
			if best.Cmp(acc[j+1]) < 0 {
				best = acc[j+1]
			}
			tmp.SetInt64(row[j])
			acc[j].Add(best, tmp)
		}
		acc = acc[:len(row)]
		progress.ReportStepProgress(report, cum[rows-2-i], total)
	}

	return toBig(acc[0]), nil
}
