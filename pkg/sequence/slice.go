package sequence

import (
	"github.com/ccoveille/go-safecast/v2"
)

// FromSlice returns a Sequence over the elements of items, in order. The
// slice is not copied; callers must not mutate it while any sequence derived
// from it is in use. Repeated elements are produced as distinct items.
func FromSlice[T any](items []T) Sequence[T] {
	return &sliceSequence[T]{items: items}
}

type sliceSequence[T any] struct {
	items []T
	next  int
}

func (s *sliceSequence[T]) Next() (T, bool) {
	if s.next >= len(s.items) {
		var zero T
		return zero, false
	}
	item := s.items[s.next]
	s.next++
	return item, true
}

func (s *sliceSequence[T]) Clone() Sequence[T] {
	return &sliceSequence[T]{items: s.items, next: s.next}
}

func (s *sliceSequence[T]) Estimate() Estimate {
	// NOTE: zero is fine here on failure; next never exceeds len(items).
	remaining, _ := safecast.Convert[uint64](len(s.items) - s.next)
	return Exact(remaining)
}
