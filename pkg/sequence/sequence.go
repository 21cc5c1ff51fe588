package sequence

// Sequence is a pull-based producer of items of a single type. It is the
// abstraction consumed by the product iterators: anything that can yield its
// items one at a time, be duplicated mid-traversal, and report how many items
// it has left can serve as a factor.
type Sequence[T any] interface {
	// Next consumes and returns the next item. The second return value is
	// false once the sequence is exhausted.
	Next() (T, bool)

	// Clone returns an independent sequence positioned identically to the
	// receiver at the moment of duplication. Clone must be cheap and must not
	// re-run any production that already happened.
	Clone() Sequence[T]

	// Estimate reports a best-effort bound on the number of items remaining.
	Estimate() Estimate
}
