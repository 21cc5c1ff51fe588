package product

import (
	"iter"

	"github.com/cartprod/cartprod/pkg/sequence"
)

// Product2 is the two-factor specialization of Product, producing fixed-size
// pairs instead of slices.
type Product2[T any] struct {
	inner Product[T]
}

// Pair constructs a Product2 over two factors.
func Pair[T any](first, second sequence.Sequence[T]) *Product2[T] {
	inner, err := New(first, second)
	if err != nil {
		// New only fails on arity, and the arity here is fixed.
		panic(err)
	}
	return &Product2[T]{inner: *inner}
}

// Next produces the next pair in lexicographic order, or false once
// exhausted.
func (p *Product2[T]) Next() ([2]T, bool) {
	tuple, ok := p.inner.Next()
	if !ok {
		return [2]T{}, false
	}
	return [2]T(tuple), true
}

// Estimate bounds the number of pairs remaining.
func (p *Product2[T]) Estimate() sequence.Estimate {
	return p.inner.Estimate()
}

// All returns a range-over-func iterator over the remaining pairs.
func (p *Product2[T]) All() iter.Seq[[2]T] {
	return func(yield func([2]T) bool) {
		for {
			pair, ok := p.Next()
			if !ok {
				return
			}
			if !yield(pair) {
				return
			}
		}
	}
}

// Product3 is the three-factor specialization of Product, producing
// fixed-size triples.
type Product3[T any] struct {
	inner Product[T]
}

// Triple constructs a Product3 over three factors.
func Triple[T any](first, second, third sequence.Sequence[T]) *Product3[T] {
	inner, err := New(first, second, third)
	if err != nil {
		panic(err)
	}
	return &Product3[T]{inner: *inner}
}

// Next produces the next triple in lexicographic order, or false once
// exhausted.
func (p *Product3[T]) Next() ([3]T, bool) {
	tuple, ok := p.inner.Next()
	if !ok {
		return [3]T{}, false
	}
	return [3]T(tuple), true
}

// Estimate bounds the number of triples remaining.
func (p *Product3[T]) Estimate() sequence.Estimate {
	return p.inner.Estimate()
}

// All returns a range-over-func iterator over the remaining triples.
func (p *Product3[T]) All() iter.Seq[[3]T] {
	return func(yield func([3]T) bool) {
		for {
			triple, ok := p.Next()
			if !ok {
				return
			}
			if !yield(triple) {
				return
			}
		}
	}
}
