//go:build !gmp

package triangle

import "math/big"

// Int is the arbitrary-precision accumulator type used for path sums.
// Row values are int64, but a path sum over many rows can exceed any fixed
// width, so all accumulation happens in Int and never overflows.
//
// The default backend is math/big. Building with -tags gmp swaps in the
// GMP-backed implementation, which is faster once operands outgrow a few
// machine words.
type Int = big.Int

// newInt allocates an accumulator holding x.
func newInt(x int64) *Int {
	return big.NewInt(x)
}

// toBig converts a finished accumulator into the *big.Int handed to
// callers. With the math/big backend the accumulator already is one.
func toBig(x *Int) *big.Int {
	return x
}
