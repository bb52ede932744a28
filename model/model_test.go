package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceDeltaRoundTrip(t *testing.T) {
	d := New()
	require.NoError(t, d.SetNumDivisions(2))
	copy(d.DivisionPointer(), []int{3, 7})
	require.NoError(t, d.EnsureValueCapacity(3))
	copy(d.ValuePointer(), []float64{1.5, -2.0, 0.25})
	require.Equal(t, []int{3, 7}, d.Divisions())
	require.Equal(t, []float64{1.5, -2.0, 0.25}, d.Values())
}

func TestSliceDeltaRejectsNegativeSizes(t *testing.T) {
	d := New()
	require.Error(t, d.SetNumDivisions(-1))
	require.Error(t, d.EnsureValueCapacity(-1))
}

func TestSliceDeltaZeroDivisionsIsValid(t *testing.T) {
	d := New()
	require.NoError(t, d.SetNumDivisions(0))
	require.Empty(t, d.Divisions())
}
