package sequence

// Peekable wraps a Sequence with a one-slot lookahead buffer, allowing the
// next item to be observed without consuming it. The zero value is not
// usable; construct with NewPeekable.
type Peekable[T any] struct {
	source   Sequence[T]
	head     T
	buffered bool
}

// NewPeekable returns a Peekable cursor over source. Ownership of source
// passes to the cursor.
func NewPeekable[T any](source Sequence[T]) *Peekable[T] {
	return &Peekable[T]{source: source}
}

// Peek returns the next item without consuming it. Repeated calls return the
// same item until Next is called.
func (p *Peekable[T]) Peek() (T, bool) {
	if !p.buffered {
		head, ok := p.source.Next()
		if !ok {
			var zero T
			return zero, false
		}
		p.head = head
		p.buffered = true
	}
	return p.head, true
}

// Next consumes and returns the next item, draining the lookahead buffer
// first if it is filled.
func (p *Peekable[T]) Next() (T, bool) {
	if p.buffered {
		head := p.head
		var zero T
		p.head = zero
		p.buffered = false
		return head, true
	}
	return p.source.Next()
}

// Clone returns an independent cursor positioned identically to the
// receiver, buffered item included.
func (p *Peekable[T]) Clone() *Peekable[T] {
	clone := &Peekable[T]{source: p.source.Clone()}
	if p.buffered {
		clone.head = p.head
		clone.buffered = true
	}
	return clone
}

// Estimate reports the remaining count, counting a buffered item as
// remaining.
func (p *Peekable[T]) Estimate() Estimate {
	estimate := p.source.Estimate()
	if p.buffered {
		estimate = estimate.plusOne()
	}
	return estimate
}
