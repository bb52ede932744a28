package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pbanos/ebmgrow/ebmerr"
)

func TestAllocRootAndPair(t *testing.T) {
	a := New(3)
	root, err := a.AllocRoot()
	require.NoError(t, err)
	require.Equal(t, 0, root)
	left, right, err := a.AllocPair()
	require.NoError(t, err)
	require.Equal(t, 1, left)
	require.Equal(t, 2, right)
	require.Equal(t, 3, a.Len())
}

func TestAllocPairFailsWhenExhausted(t *testing.T) {
	a := New(1)
	_, err := a.AllocRoot()
	require.NoError(t, err)
	_, _, err = a.AllocPair()
	require.Error(t, err)
}

func TestResetReusesBackingArray(t *testing.T) {
	a := New(4)
	_, _ = a.AllocRoot()
	_, _, _ = a.AllocPair()
	capBefore := a.Cap()
	a.Reset()
	require.Equal(t, 0, a.Len())
	require.Equal(t, capBefore, a.Cap())
}

func TestGrowDoublesCapacity(t *testing.T) {
	a := New(2)
	err := a.Grow(0)
	require.NoError(t, err)
	require.Equal(t, 4, a.Cap())
	require.Equal(t, 0, a.Len())
}

func TestGrowHonorsMinCapacityFloor(t *testing.T) {
	a := New(2)
	err := a.Grow(100)
	require.NoError(t, err)
	require.Equal(t, 100, a.Cap())
}

func TestGrowRejectsOverflow(t *testing.T) {
	a := New(2)
	err := a.Grow(1 << 40)
	require.Error(t, err)
	require.True(t, errors.Is(err, ebmerr.ErrCapacityOverflow))
}

func TestAtReturnsWritablePointer(t *testing.T) {
	a := New(1)
	idx, err := a.AllocRoot()
	require.NoError(t, err)
	node := a.At(idx)
	node.Gain = 4.2
	require.Equal(t, 4.2, a.At(idx).Gain)
}
