package split

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pbanos/ebmgrow/histogram"
	"github.com/pbanos/ebmgrow/sampledset"
)

func buildHistogram(t *testing.T, set sampledset.Slice, numBins, numClasses int) *histogram.Histogram {
	t.Helper()
	h, err := histogram.Build(set, numBins, numClasses)
	require.NoError(t, err)
	return h
}

func TestBestPicksFirstOfTiedCuts(t *testing.T) {
	set := sampledset.Slice{
		{Bin: 0, Residuals: []float64{2}}, {Bin: 0, Residuals: []float64{2}},
		{Bin: 1, Residuals: []float64{0}}, {Bin: 1, Residuals: []float64{0}},
		{Bin: 2, Residuals: []float64{2}}, {Bin: 2, Residuals: []float64{2}},
	}
	h := buildHistogram(t, set, 3, 1)
	root := Range{BinFirst: 0, BinLast: 2, Instances: h.InstancesTotal, Agg: h.AggTotal}
	leftSums := make([]histogram.ClassStats, 1)
	result := Best(leftSums, h, root)
	require.Equal(t, 0, result.DivisionBin)
	require.InDelta(t, -1.3333333, result.Gain, 1e-5)
	require.Equal(t, 2, result.Left.Instances)
	require.Equal(t, 4, result.Right.Instances)
}

func TestSplittableRequiresMinInstancesAndMultipleBins(t *testing.T) {
	r := Range{BinFirst: 0, BinLast: 0, Instances: 100}
	require.False(t, r.Splittable(1), "single bin cannot be split regardless of instance count")
	r = Range{BinFirst: 0, BinLast: 1, Instances: 1}
	require.False(t, r.Splittable(2))
	r = Range{BinFirst: 0, BinLast: 1, Instances: 2}
	require.True(t, r.Splittable(2))
}

func TestBestOnAllZeroResidualsYieldsZeroGain(t *testing.T) {
	set := sampledset.Slice{{Bin: 0, Residuals: []float64{0}}, {Bin: 1, Residuals: []float64{0}}}
	h := buildHistogram(t, set, 2, 1)
	root := Range{BinFirst: 0, BinLast: 1, Instances: h.InstancesTotal, Agg: h.AggTotal}
	leftSums := make([]histogram.ClassStats, 1)
	result := Best(leftSums, h, root)
	require.Equal(t, 0.0, result.Gain)
}
