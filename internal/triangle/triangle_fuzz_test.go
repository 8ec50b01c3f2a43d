package triangle

import (
	"context"
	"math/big"
	"testing"
)

// triangleFromBytes decodes fuzz data into a valid triangle. The first byte
// selects the height, the remaining bytes feed cell values cyclically as
// signed 8-bit integers so negative values are covered.
func triangleFromBytes(data []byte, maxRows int) Triangle {
	if len(data) < 2 {
		return nil
	}
	rows := int(data[0])%maxRows + 1
	vals := data[1:]

	tri := make(Triangle, rows)
	k := 0
	for i := range tri {
		row := make([]int64, i+1)
		for j := range row {
			row[j] = int64(int8(vals[k%len(vals)]))
			k++
		}
		tri[i] = row
	}
	return tri
}

// FuzzStrategyConsistency compares all three strategies on byte-decoded
// triangles. They implement the same mathematical function through
// different algorithms, so any disagreement is a bug.
func FuzzStrategyConsistency(f *testing.F) {
	f.Add([]byte{3, 6, 3, 5, 9, 7, 1, 4, 6, 8, 4})
	f.Add([]byte{0, 5})
	f.Add([]byte{11, 200, 1, 130, 0, 255})
	f.Fuzz(func(t *testing.T, data []byte) {
		tri := triangleFromBytes(data, 12)
		if tri == nil {
			return
		}

		naive, err := solveWith(&NaiveSplit{}, tri)
		if err != nil {
			t.Skipf("naive error: %v", err)
		}
		memo, err := solveWith(&MemoizedTopDown{}, tri)
		if err != nil {
			t.Skipf("memoized error: %v", err)
		}
		iter, err := solveWith(&IterativeBottomUp{}, tri)
		if err != nil {
			t.Skipf("iterative error: %v", err)
		}

		if naive.Cmp(memo) != 0 || naive.Cmp(iter) != 0 {
			t.Errorf("disagreement at %d rows: naive=%s memoized=%s iterative=%s",
				len(tri), naive, memo, iter)
		}
	})
}

// FuzzFoldVsMemoized compares the fold with the memoized recursion on
// triangles too tall for the exponential reference walk.
func FuzzFoldVsMemoized(f *testing.F) {
	f.Add([]byte{40, 1, 2, 3, 4, 5})
	f.Add([]byte{99, 255, 0, 128, 7})
	f.Fuzz(func(t *testing.T, data []byte) {
		tri := triangleFromBytes(data, 100)
		if tri == nil {
			return
		}

		memo, err := solveWith(&MemoizedTopDown{}, tri)
		if err != nil {
			t.Skipf("memoized error: %v", err)
		}
		iter, err := solveWith(&IterativeBottomUp{}, tri)
		if err != nil {
			t.Skipf("iterative error: %v", err)
		}

		if memo.Cmp(iter) != 0 {
			t.Errorf("disagreement at %d rows: memoized=%s iterative=%s", len(tri), memo, iter)
		}
	})
}

// FuzzPathSumBounds checks two algebraic bounds that hold for every
// triangle: the maximum path sum is at most the sum of per-row maxima, and
// at least the sum along the leftmost descent (one concrete path).
func FuzzPathSumBounds(f *testing.F) {
	f.Add([]byte{5, 10, 20, 30})
	f.Add([]byte{60, 255, 254, 1})
	f.Fuzz(func(t *testing.T, data []byte) {
		tri := triangleFromBytes(data, 80)
		if tri == nil {
			return
		}

		got, err := solveWith(&IterativeBottomUp{}, tri)
		if err != nil {
			t.Skipf("iterative error: %v", err)
		}

		upper := new(big.Int)
		lower := new(big.Int)
		for _, row := range tri {
			rowMax := row[0]
			for _, v := range row {
				if v > rowMax {
					rowMax = v
				}
			}
			upper.Add(upper, big.NewInt(rowMax))
			lower.Add(lower, big.NewInt(row[0]))
		}

		if got.Cmp(upper) > 0 {
			t.Errorf("result %s exceeds row-maxima bound %s", got, upper)
		}
		if got.Cmp(lower) < 0 {
			t.Errorf("result %s below leftmost-path bound %s", got, lower)
		}
	})
}

// FuzzSolveShapeRejection feeds raw, possibly malformed row shapes to the
// full pipeline and asserts it never panics: every input is either solved
// or rejected with an error.
func FuzzSolveShapeRejection(f *testing.F) {
	f.Add([]byte{1, 2, 2, 3})
	f.Add([]byte{0})
	f.Add([]byte{4, 4, 4, 4, 4})
	f.Fuzz(func(t *testing.T, data []byte) {
		// Interpret each byte as a row length, capped to keep memory flat.
		rows := make([][]int64, 0, len(data))
		for i, b := range data {
			if i >= 8 {
				break
			}
			row := make([]int64, int(b)%10)
			for j := range row {
				row[j] = int64(i + j)
			}
			rows = append(rows, row)
		}

		solver := NewSolver(&IterativeBottomUp{})
		result, err := solver.Solve(context.Background(), nil, 0, Triangle(rows), Options{})
		if err == nil && result == nil {
			t.Error("Solve returned neither a result nor an error")
		}
	})
}
