// Package tricalc computes maximum root-to-base path sums over number
// triangles with exact arbitrary-precision arithmetic.
//
// The one-call entry point is MaxPath:
//
//	sum, err := tricalc.MaxPath([][]int64{
//		{6},
//		{3, 5},
//		{9, 7, 1},
//		{4, 6, 8, 4},
//	})
//
// Hosts that want solver selection, cross-checked comparison runs,
// structured logging, and Prometheus metrics build an App instead:
//
//	app, err := tricalc.New(tricalc.DefaultConfig())
//	if err != nil {
//		...
//	}
//	cmp, err := app.Compare(ctx, tri)
//
// Three strategies are registered: a naive divide and conquer reference
// (AlgoNaive), a memoized top-down recursion (AlgoMemoized), and the
// bottom-up fold (AlgoIterative) used by default. All of them return equal
// sums on equal triangles; Compare exploits that to cross-check them
// against each other.
//
// The implementation lives in internal packages. This package re-exports
// the types and constructors that form the public surface.
package tricalc
