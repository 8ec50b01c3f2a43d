package progress

import "math"

// CalcLeafWork returns the number of root-to-base paths a divide and conquer
// walk visits for a triangle of the given height, which is the natural unit
// of work for exponential solvers. The count doubles with every row, so the
// result saturates at MaxFloat64 once it leaves float64 range.
func CalcLeafWork(rows int) float64 {
	if rows <= 0 {
		return 0
	}
	if rows-1 >= 1024 {
		return math.MaxFloat64
	}
	return math.Ldexp(1, rows-1)
}

// CalcCellWork returns the number of cells in a triangle of the given
// height. Memoized and iterative solvers touch each cell a bounded number
// of times, so cells are their unit of work.
func CalcCellWork(rows int) float64 {
	if rows <= 0 {
		return 0
	}
	n := uint64(rows)
	return float64(n*(n+1)) / 2
}

// PrecomputeRowWork returns cumulative cell counts for a bottom-up fold of
// a triangle with the given height. Element k holds the number of cells
// handled once the fold has consumed k+1 rows above the base, so a solver
// can report progress with a single slice lookup per row.
func PrecomputeRowWork(rows int) []float64 {
	if rows <= 1 {
		return nil
	}
	cum := make([]float64, rows-1)
	var total float64
	for k := 0; k < rows-1; k++ {
		// The fold handles rows-1-k cells when it consumes row rows-2-k.
		total += float64(rows - 1 - k)
		cum[k] = total
	}
	return cum
}

// ReportStepProgress reports completed/total through report, clamped to
// [0, 1]. It tolerates a nil callback and a non-positive total so call
// sites stay free of guards.
func ReportStepProgress(report ProgressCallback, completed, total float64) {
	if report == nil || total <= 0 {
		return
	}
	value := completed / total
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	report(value)
}
