package pqueue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopReturnsMostImprovingGainFirst(t *testing.T) {
	q := New()
	q.Push(10, -1.0)
	q.Push(20, -3.0)
	q.Push(30, -2.0)
	require.Equal(t, 20, q.Pop(), "most negative gain is most improving")
	require.Equal(t, 30, q.Pop())
	require.Equal(t, 10, q.Pop())
	require.Equal(t, 0, q.Len())
}

func TestPopBreaksTiesByInsertionOrder(t *testing.T) {
	q := New()
	q.Push(1, 5.0)
	q.Push(2, 5.0)
	q.Push(3, 5.0)
	require.Equal(t, 1, q.Pop())
	require.Equal(t, 2, q.Pop())
	require.Equal(t, 3, q.Pop())
}

func TestResetDrainsAndRestartsSequence(t *testing.T) {
	q := New()
	q.Push(1, 1.0)
	q.Reset()
	require.Equal(t, 0, q.Len())
	q.Push(2, 1.0)
	q.Push(3, 1.0)
	require.Equal(t, 2, q.Pop())
}
