package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeekable(t *testing.T) {
	t.Run("peek does not consume", func(t *testing.T) {
		p := NewPeekable(FromSlice([]int{1, 2}))

		for range 3 {
			head, ok := p.Peek()
			require.True(t, ok)
			require.Equal(t, 1, head)
		}

		next, ok := p.Next()
		require.True(t, ok)
		require.Equal(t, 1, next)
	})

	t.Run("next works without a prior peek", func(t *testing.T) {
		p := NewPeekable(FromSlice([]int{1, 2}))

		next, ok := p.Next()
		require.True(t, ok)
		require.Equal(t, 1, next)
	})

	t.Run("peek on an exhausted cursor", func(t *testing.T) {
		p := NewPeekable(FromSlice[int](nil))

		_, ok := p.Peek()
		require.False(t, ok)
		_, ok = p.Next()
		require.False(t, ok)
	})

	t.Run("estimate counts the buffered item", func(t *testing.T) {
		p := NewPeekable(FromSlice([]int{1, 2, 3}))
		require.Equal(t, Exact(3), p.Estimate())

		_, ok := p.Peek()
		require.True(t, ok)
		require.Equal(t, Exact(3), p.Estimate())

		_, ok = p.Next()
		require.True(t, ok)
		require.Equal(t, Exact(2), p.Estimate())
	})

	t.Run("clone carries the buffered item", func(t *testing.T) {
		p := NewPeekable(FromSlice([]int{1, 2}))
		head, ok := p.Peek()
		require.True(t, ok)
		require.Equal(t, 1, head)

		clone := p.Clone()

		// Draining the original must not disturb the clone.
		next, ok := p.Next()
		require.True(t, ok)
		require.Equal(t, 1, next)
		next, ok = p.Next()
		require.True(t, ok)
		require.Equal(t, 2, next)

		require.Equal(t, Exact(2), clone.Estimate())
		next, ok = clone.Next()
		require.True(t, ok)
		require.Equal(t, 1, next)
		next, ok = clone.Next()
		require.True(t, ok)
		require.Equal(t, 2, next)
		_, ok = clone.Next()
		require.False(t, ok)
	})
}
