package triangle

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestStrategyAgreement_PropertyBased cross-checks the three strategies on
// generated triangles. All strategies implement the same function, so any
// disagreement is a correctness bug in at least one of them. Heights stay
// small enough for the exponential reference walk.
func TestStrategyAgreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("all strategies agree on the maximum path sum", prop.ForAll(
		func(seed int64, rows int) bool {
			rng := rand.New(rand.NewSource(seed))
			tri := randomTriangle(rng, rows, 10_000)

			first, err := solveWith(&NaiveSplit{}, tri)
			if err != nil {
				t.Logf("naive failed at %d rows: %v", rows, err)
				return false
			}
			for _, core := range []coreSolver{&MemoizedTopDown{}, &IterativeBottomUp{}} {
				got, err := solveWith(core, tri)
				if err != nil {
					t.Logf("%s failed at %d rows: %v", core.Name(), rows, err)
					return false
				}
				if got.Cmp(first) != 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 14),
	))

	properties.TestingRun(t)
}

// TestDeepAgreement_PropertyBased cross-checks the two polynomial
// strategies on triangles too tall for the exponential reference walk.
func TestDeepAgreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("memoized and iterative agree on tall triangles", prop.ForAll(
		func(seed int64, rows int) bool {
			rng := rand.New(rand.NewSource(seed))
			tri := randomTriangle(rng, rows, 1_000_000)

			memoized, err := solveWith(&MemoizedTopDown{}, tri)
			if err != nil {
				t.Logf("memoized failed at %d rows: %v", rows, err)
				return false
			}
			iterative, err := solveWith(&IterativeBottomUp{}, tri)
			if err != nil {
				t.Logf("iterative failed at %d rows: %v", rows, err)
				return false
			}
			return memoized.Cmp(iterative) == 0
		},
		gen.Int64(),
		gen.IntRange(1, 60),
	))

	properties.TestingRun(t)
}

// TestConstantTriangle_PropertyBased verifies the closed form for constant
// triangles: with every cell equal to v, each of the n rows contributes
// exactly v, so the maximum path sum is n*v regardless of the path taken.
func TestConstantTriangle_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, core := range allStrategies() {
		properties.Property(core.Name()+" satisfies the constant closed form", prop.ForAll(
			func(rows int, v int64) bool {
				got, err := solveWith(core, allEqualTriangle(rows, v))
				if err != nil {
					t.Logf("%s failed at %d rows: %v", core.Name(), rows, err)
					return false
				}
				want := new(big.Int).Mul(big.NewInt(int64(rows)), big.NewInt(v))
				return got.Cmp(want) == 0
			},
			gen.IntRange(1, 14),
			gen.Int64Range(-1_000_000, 1_000_000),
		))
	}

	properties.TestingRun(t)
}

// TestMonotonicGrowth_PropertyBased verifies the growth bound for appended
// rows: the old optimal path extends into the new row at a cost of at
// least its minimum element, so the result grows by at least that much.
// With non-negative rows this implies the result never decreases.
func TestMonotonicGrowth_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("appending a row grows the result by at least its minimum", prop.ForAll(
		func(seed int64, rows int) bool {
			rng := rand.New(rand.NewSource(seed))

			tri := make(Triangle, 0, rows)
			prev := new(big.Int)
			for i := 0; i < rows; i++ {
				row := make([]int64, i+1)
				rowMin := int64(1000)
				for j := range row {
					row[j] = rng.Int63n(1000)
					if row[j] < rowMin {
						rowMin = row[j]
					}
				}
				tri = append(tri, row)

				got, err := solveWith(&IterativeBottomUp{}, tri)
				if err != nil {
					t.Logf("iterative failed at %d rows: %v", i+1, err)
					return false
				}
				if i > 0 {
					bound := new(big.Int).Add(prev, big.NewInt(rowMin))
					if got.Cmp(bound) < 0 {
						return false
					}
				}
				prev = got
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(2, 30),
	))

	properties.TestingRun(t)
}

// TestMirrorSymmetry_PropertyBased verifies that reversing every row leaves
// the maximum path sum unchanged. Mirroring maps each path onto its
// reflection, so the set of path sums is identical.
func TestMirrorSymmetry_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("mirroring the triangle preserves the maximum path sum", prop.ForAll(
		func(seed int64, rows int) bool {
			rng := rand.New(rand.NewSource(seed))
			tri := randomTriangle(rng, rows, 10_000)

			mirror := make(Triangle, rows)
			for i, row := range tri {
				rev := make([]int64, len(row))
				for j, v := range row {
					rev[len(row)-1-j] = v
				}
				mirror[i] = rev
			}

			got, err := solveWith(&IterativeBottomUp{}, tri)
			if err != nil {
				return false
			}
			mirrored, err := solveWith(&IterativeBottomUp{}, mirror)
			if err != nil {
				return false
			}
			return got.Cmp(mirrored) == 0
		},
		gen.Int64(),
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}
