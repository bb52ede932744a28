/*
Package split implements the leaf-split evaluator: given a contiguous
range of compacted histogram bins and its aggregate per-class
statistics, it finds the single cut position that maximizes the
variance-reduction gain, mirroring the cut-position scan
partition.go's newRangePartition performs over a continuous feature's
sorted values, but over pre-binned integer positions with O(1)
incremental running sums instead of a dataset re-query per candidate.
*/
package split

import (
	"math"

	"github.com/pbanos/ebmgrow/histogram"
	"github.com/pbanos/ebmgrow/stats"
)

// Range is a leaf's pending-split state: the compacted bin range it
// covers and its aggregate statistics over that range.
type Range struct {
	BinFirst  int
	BinLast   int
	Instances int
	Agg       []histogram.ClassStats
}

// Splittable reports whether r has enough instances and enough
// distinct bins to be a candidate for splitting at all.
func (r Range) Splittable(minInstancesForSplit int) bool {
	return r.Instances >= minInstancesForSplit && r.BinLast > r.BinFirst
}

// Result is the outcome of evaluating the best candidate split of a
// Range: the bin the cut falls after, the two child ranges, and the
// gain the cut achieves over leaving the range unsplit.
type Result struct {
	DivisionBin int
	Left        Range
	Right       Range
	Gain        float64
}

// Best scans every cut position in [b.BinFirst, b.BinLast-1] against
// the compacted histogram's buckets and returns the cut with the
// largest score, breaking ties by keeping the first (lowest-indexed)
// maximum strictly greater than all before it. leftSums is the
// caller's reusable left-side running-sum buffer (a Scratch's
// LeftSums, sized and cleared by the caller for numClasses entries);
// Best accumulates into it directly instead of allocating a fresh one
// per call.
//
// TODO: the reference implementation this is ported from notes that
// ties should eventually be broken at random rather than by bin
// order; this preserves strict first-wins for determinism until that
// is revisited.
func Best(leftSums []histogram.ClassStats, h *histogram.Histogram, r Range) Result {
	if r.BinLast <= r.BinFirst {
		return Result{}
	}
	numClasses := len(r.Agg)
	leftAgg := leftSums
	var leftCount int
	parentScore := 0.0
	for k := range r.Agg {
		parentScore += stats.GainContrib(r.Agg[k].SumResidual, float64(r.Instances))
	}

	var best Result
	var bestLeftAgg []histogram.ClassStats
	bestScore := math.Inf(-1)
	for cut := r.BinFirst; cut < r.BinLast; cut++ {
		bucket := h.Buckets[cut]
		leftCount += bucket.Count
		for k := range leftAgg {
			leftAgg[k].SumResidual += bucket.Stats[k].SumResidual
			leftAgg[k].SumDenominator += bucket.Stats[k].SumDenominator
		}
		rightCount := r.Instances - leftCount
		score := 0.0
		for k := 0; k < numClasses; k++ {
			rightResidual := r.Agg[k].SumResidual - leftAgg[k].SumResidual
			score += stats.GainContrib(leftAgg[k].SumResidual, float64(leftCount))
			score += stats.GainContrib(rightResidual, float64(rightCount))
		}
		if score > bestScore {
			bestScore = score
			best.DivisionBin = cut
			best.Left.BinFirst, best.Left.BinLast, best.Left.Instances = r.BinFirst, cut, leftCount
			best.Right.BinFirst, best.Right.BinLast, best.Right.Instances = cut+1, r.BinLast, rightCount
			// bestLeftAgg is the one allocation Best cannot avoid: it
			// becomes Left.Agg, which outlives this call as a pending
			// candidate's (and eventually a committed leaf's) aggregate
			// state, so it can't share storage with the reused LeftSums
			// buffer that keeps mutating for later cuts and later calls.
			// Allocated at most once per call, on first improvement, and
			// overwritten in place on every later improvement.
			if bestLeftAgg == nil {
				bestLeftAgg = make([]histogram.ClassStats, numClasses)
			}
			copy(bestLeftAgg, leftAgg)
		}
	}
	best.Left.Agg = bestLeftAgg
	best.Right.Agg = make([]histogram.ClassStats, numClasses)
	for k := 0; k < numClasses; k++ {
		best.Right.Agg[k] = histogram.ClassStats{
			SumResidual:    r.Agg[k].SumResidual - bestLeftAgg[k].SumResidual,
			SumDenominator: r.Agg[k].SumDenominator - bestLeftAgg[k].SumDenominator,
		}
	}
	// gain is parent_score minus the best children score, matching the
	// original's sign convention: a successful split is non-positive
	// here, positive only in the overflow case. Do not flip this sign.
	gain := parentScore - bestScore
	if math.IsNaN(gain) {
		gain = 0
	}
	best.Gain = gain
	return best
}
