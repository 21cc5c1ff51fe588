package sequence

import (
	"math"

	"github.com/ccoveille/go-safecast/v2"
)

// Integer covers the integer kinds usable with Range and Count.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Range returns a Sequence producing every integer in the half-open interval
// [lo, hi), ascending. An empty interval (lo >= hi) yields an exhausted
// sequence.
func Range[T Integer](lo, hi T) Sequence[T] {
	return &rangeSequence[T]{next: lo, hi: hi}
}

type rangeSequence[T Integer] struct {
	next T
	hi   T
}

func (r *rangeSequence[T]) Next() (T, bool) {
	if r.next >= r.hi {
		var zero T
		return zero, false
	}
	value := r.next
	r.next++
	return value, true
}

func (r *rangeSequence[T]) Clone() Sequence[T] {
	return &rangeSequence[T]{next: r.next, hi: r.hi}
}

func (r *rangeSequence[T]) Estimate() Estimate {
	if r.next >= r.hi {
		return Exact(0)
	}
	// The subtraction can wrap for extreme signed bounds; degrade to an
	// unknown upper bound rather than report a wrong one.
	remaining, err := safecast.Convert[uint64](r.hi - r.next)
	if err != nil {
		return AtLeast(1)
	}
	return Exact(remaining)
}

// Count returns an unbounded Sequence producing from, from+1, from+2 and so
// on, wrapping at the limits of T. Its estimate carries an unknown upper
// bound; in a product, an unbounded factor belongs at position one so that
// enumeration stays lazy.
func Count[T Integer](from T) Sequence[T] {
	return &countSequence[T]{next: from}
}

type countSequence[T Integer] struct {
	next T
}

func (c *countSequence[T]) Next() (T, bool) {
	value := c.next
	c.next++
	return value, true
}

func (c *countSequence[T]) Clone() Sequence[T] {
	return &countSequence[T]{next: c.next}
}

func (c *countSequence[T]) Estimate() Estimate {
	return AtLeast(math.MaxUint64)
}
