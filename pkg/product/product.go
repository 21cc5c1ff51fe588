package product

import (
	"errors"
	"iter"

	"github.com/cartprod/cartprod/pkg/sequence"
)

// ErrTooFewFactors is returned by New when fewer than two factor sequences
// are provided.
var ErrTooFewFactors = errors.New("cartesian product requires at least two factors")

// Product enumerates the cartesian product of N factor sequences in
// lexicographic odometer order: position one is the most significant digit,
// position N the least significant and varies fastest.
//
// A Product is a single forward pass: it cannot be restarted, and once it
// reports exhaustion every later call reports exhaustion as well. It is not
// safe for concurrent use; callers wanting parallel enumeration construct
// independent products over independently cloned sequences.
type Product[T any] struct {
	// heads[i] drives position i for every position except the last. These
	// cursors are only observed via Peek on a plain step and advance only on
	// carry.
	heads []*sequence.Peekable[T]

	// last drives the final position and is the only cursor consumed by a
	// plain step.
	last sequence.Sequence[T]

	// origins[i] is an untouched duplicate of factor i, kept to re-derive
	// that position's cursor when the position to its left carries.
	// origins[0] is nil: the first factor is traversed exactly once, start
	// to end, and never resets.
	origins []sequence.Sequence[T]

	exhausted bool
}

// New constructs a Product over the given factors, in positional order.
// Ownership of every factor passes to the product. No enumeration happens at
// construction.
func New[T any](factors ...sequence.Sequence[T]) (*Product[T], error) {
	if len(factors) < 2 {
		return nil, ErrTooFewFactors
	}

	n := len(factors)
	p := &Product[T]{
		heads:   make([]*sequence.Peekable[T], n-1),
		origins: make([]sequence.Sequence[T], n),
	}

	p.heads[0] = sequence.NewPeekable(factors[0])
	for i := 1; i < n-1; i++ {
		p.origins[i] = factors[i]
		p.heads[i] = sequence.NewPeekable(factors[i].Clone())
	}
	p.origins[n-1] = factors[n-1]
	p.last = factors[n-1].Clone()

	return p, nil
}

// Next produces the next tuple in lexicographic order, or false once every
// combination has been produced. The returned slice is freshly allocated and
// owned by the caller.
func (p *Product[T]) Next() ([]T, bool) {
	if p.exhausted {
		return nil, false
	}

	n := len(p.heads) + 1
	tuple := make([]T, n)
	for i, head := range p.heads {
		value, ok := head.Peek()
		if !ok {
			// An empty factor empties the whole product. For position one
			// this is also the normal terminal condition.
			p.exhausted = true
			return nil, false
		}
		tuple[i] = value
	}

	// Common case: increment the least significant digit.
	if value, ok := p.last.Next(); ok {
		tuple[n-1] = value
		return tuple, true
	}

	// The last position overflowed. Walk leftward for the first digit that
	// still has a value after its current one; that digit carries, and every
	// digit to its right restarts from its origin.
	for i := len(p.heads) - 1; i >= 0; i-- {
		p.heads[i].Next()
		value, ok := p.heads[i].Peek()
		if !ok {
			continue
		}
		tuple[i] = value

		for j := i + 1; j < len(p.heads); j++ {
			p.heads[j] = sequence.NewPeekable(p.origins[j].Clone())
			reset, ok := p.heads[j].Peek()
			if !ok {
				p.exhausted = true
				return nil, false
			}
			tuple[j] = reset
		}
		p.last = p.origins[n-1].Clone()
		first, ok := p.last.Next()
		if !ok {
			// The last factor was empty all along.
			p.exhausted = true
			return nil, false
		}
		tuple[n-1] = first
		return tuple, true
	}

	// Every digit overflowed, position one included.
	p.exhausted = true
	return nil, false
}

// Estimate bounds the number of tuples remaining from the current state,
// recomputed from the live cursors at call time. The lower bound is the
// saturating product of the cursors' lower bounds and always holds; the
// upper bound is the checked product of their upper bounds and is exact at
// construction and immediately after any carry. An unknown upper bound in
// any cursor, or overflow, makes the overall upper bound unknown.
func (p *Product[T]) Estimate() sequence.Estimate {
	if p.exhausted {
		return sequence.Exact(0)
	}
	estimate := p.heads[0].Estimate()
	for _, head := range p.heads[1:] {
		estimate = estimate.Times(head.Estimate())
	}
	return estimate.Times(p.last.Estimate())
}

// All returns a range-over-func iterator over the remaining tuples. It
// shares state with Next: the two may be interleaved, and both drive the
// same single forward pass.
func (p *Product[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			tuple, ok := p.Next()
			if !ok {
				return
			}
			if !yield(tuple) {
				return
			}
		}
	}
}
