package sequence

import (
	"fmt"
	"math"
	"math/bits"
)

// Estimate bounds the number of items remaining in a sequence. Lower is
// always valid; Upper is only meaningful when UpperKnown is true. An unknown
// upper bound means the sequence may be unbounded or its size cannot be
// represented.
type Estimate struct {
	Lower      uint64
	Upper      uint64
	UpperKnown bool
}

// Exact returns an estimate for a sequence whose remaining count is known
// precisely.
func Exact(n uint64) Estimate {
	return Estimate{Lower: n, Upper: n, UpperKnown: true}
}

// AtLeast returns an estimate with a known lower bound and an unknown upper
// bound.
func AtLeast(n uint64) Estimate {
	return Estimate{Lower: n}
}

// Times combines two estimates multiplicatively. Lower bounds multiply
// saturating at the maximum representable value; upper bounds multiply
// checked, with any overflow or unknown operand making the result's upper
// bound unknown. Times never panics.
func (e Estimate) Times(other Estimate) Estimate {
	result := Estimate{Lower: saturatingMul(e.Lower, other.Lower)}
	if e.UpperKnown && other.UpperKnown {
		if product, ok := checkedMul(e.Upper, other.Upper); ok {
			result.Upper = product
			result.UpperKnown = true
		}
	}
	return result
}

// plusOne accounts for a single buffered item held outside the underlying
// sequence, saturating the lower bound and degrading the upper bound to
// unknown if it cannot be incremented.
func (e Estimate) plusOne() Estimate {
	if e.Lower < math.MaxUint64 {
		e.Lower++
	}
	if e.UpperKnown {
		if e.Upper == math.MaxUint64 {
			e.Upper = 0
			e.UpperKnown = false
		} else {
			e.Upper++
		}
	}
	return e
}

// String renders the estimate for human consumption.
func (e Estimate) String() string {
	switch {
	case !e.UpperKnown:
		return fmt.Sprintf("at least %d", e.Lower)
	case e.Lower == e.Upper:
		return fmt.Sprintf("exactly %d", e.Lower)
	default:
		return fmt.Sprintf("between %d and %d", e.Lower, e.Upper)
	}
}

func saturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

func checkedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
