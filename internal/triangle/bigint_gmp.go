//go:build gmp

package triangle

import (
	"math/big"

	"github.com/ncw/gmp"
)

// Int is the arbitrary-precision accumulator type used for path sums,
// backed by GMP under the gmp build tag. The gmp package mirrors the
// math/big surface, so solver code is identical under both backends.
type Int = gmp.Int

// newInt allocates an accumulator holding x.
func newInt(x int64) *Int {
	return gmp.NewInt(x)
}

// toBig converts a finished accumulator into the *big.Int handed to
// callers. GMP values round-trip through the magnitude bytes; the sign is
// restored separately because Bytes carries the absolute value only.
func toBig(x *Int) *big.Int {
	out := new(big.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		out.Neg(out)
	}
	return out
}
