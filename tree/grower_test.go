package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pbanos/ebmgrow/histogram"
	"github.com/pbanos/ebmgrow/sampledset"
	"github.com/pbanos/ebmgrow/scratch"
)

func buildHistogram(t *testing.T, set sampledset.Slice, numBins, numClasses int) *histogram.Histogram {
	t.Helper()
	h, err := histogram.Build(set, numBins, numClasses)
	require.NoError(t, err)
	return h
}

func TestGrowSingleSplit(t *testing.T) {
	set := sampledset.Slice{
		{Bin: 0, Residuals: []float64{10}}, {Bin: 0, Residuals: []float64{10}},
		{Bin: 1, Residuals: []float64{-10}}, {Bin: 1, Residuals: []float64{-10}},
	}
	h := buildHistogram(t, set, 2, 1)
	sc := scratch.New(3)
	root, splits, gain, err := Grow(h, 1, 1, 1, sc)
	require.NoError(t, err)
	require.Equal(t, 0, root)
	require.Equal(t, 1, splits)
	require.Less(t, gain, 0.0, "gain is non-positive for an improving split")
	require.True(t, sc.Arena().At(0).Split)
}

func TestGrowRespectsMaxSplitsCap(t *testing.T) {
	set := sampledset.Slice{
		{Bin: 0, Residuals: []float64{10}},
		{Bin: 1, Residuals: []float64{-10}},
		{Bin: 2, Residuals: []float64{10}},
		{Bin: 3, Residuals: []float64{-10}},
	}
	h := buildHistogram(t, set, 4, 1)
	sc := scratch.New(3)
	_, splits, _, err := Grow(h, 1, 1, 1, sc)
	require.NoError(t, err)
	require.Equal(t, 1, splits, "max_splits=1 must commit exactly the root split and stop")
}

func TestGrowRegrowsArenaOnExhaustion(t *testing.T) {
	set := sampledset.Slice{
		{Bin: 0, Residuals: []float64{10}},
		{Bin: 1, Residuals: []float64{-10}},
		{Bin: 2, Residuals: []float64{10}},
		{Bin: 3, Residuals: []float64{-10}},
	}
	h := buildHistogram(t, set, 4, 1)
	sc := scratch.New(1)
	_, splits, _, err := Grow(h, 1, 3, 1, sc)
	require.NoError(t, err)
	require.GreaterOrEqual(t, splits, 1)
	require.GreaterOrEqual(t, sc.Arena().Cap(), 7)
}

func TestGrowTwoBinsStopsAfterRootSplit(t *testing.T) {
	set := sampledset.Slice{
		{Bin: 0, Residuals: []float64{5}},
		{Bin: 1, Residuals: []float64{-5}},
	}
	h := buildHistogram(t, set, 2, 1)
	sc := scratch.New(3)
	_, splits, _, err := Grow(h, 1, 64, 1, sc)
	require.NoError(t, err)
	require.Equal(t, 1, splits, "only two compacted bins means no further split is possible")
}
