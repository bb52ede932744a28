/*
Package tree grows a single-feature regression tree over a compacted
histogram using best-first expansion: at each step it splits the
most-improving leaf, guided by a priority queue, and allocates its two
children from an arena that grows and restarts the build whenever it
runs out of room. This replaces the node/NodeStore/
Tree trio of pbanos/botanic's multi-feature, dataset-querying tree
with a single-feature, histogram-driven grower: there is no
persistent, retrievable node store here, since an entire build's
nodes live and die within one Scratch.
*/
package tree

import (
	"fmt"

	"github.com/pbanos/ebmgrow/arena"
	"github.com/pbanos/ebmgrow/ebmerr"
	"github.com/pbanos/ebmgrow/histogram"
	"github.com/pbanos/ebmgrow/scratch"
	"github.com/pbanos/ebmgrow/split"
)

// errArenaExhausted is an internal sentinel: growAttempt returns it to
// tell Grow the arena needs to be grown and the build restarted, never
// escaping to a caller of Grow.
var errArenaExhausted = fmt.Errorf("arena exhausted")

// maxRegrowAttempts bounds the restart-on-exhaustion loop. Since Grow
// sizes the requested capacity to comfortably fit the whole build
// up-front on the first failure, more than a handful of restarts
// indicates runaway growth rather than ordinary geometric backoff.
const maxRegrowAttempts = 64

/*
Grow builds a tree over h's compacted bins using sc's arena and queue,
committing splits in best-first order until either maxSplits have
been committed or no leaf remains worth splitting. It assumes the
caller has already ruled out the degenerate no-split guard (h has at
least 2 bins, h.InstancesTotal >= minInstancesForSplit, maxSplits >
0); callers should handle that case themselves per spec without
calling Grow at all.

It returns the arena index of the root node (always 0), the number of
splits committed and the total gain accumulated, or a BuildError if
the arena cannot be grown enough to finish, or an internal exception
escapes the growth loop.
*/
func Grow(h *histogram.Histogram, numClasses, maxSplits, minInstancesForSplit int, sc scratch.Scratch) (rootIndex, splitsCommitted int, totalGain float64, err error) {
	needed := 2*maxSplits + 1
	for attempt := 0; attempt < maxRegrowAttempts; attempt++ {
		n, g, gerr := growAttempt(h, numClasses, maxSplits, minInstancesForSplit, sc)
		if gerr == nil {
			return 0, n, g, nil
		}
		if gerr != errArenaExhausted {
			return 0, 0, 0, gerr
		}
		if growErr := sc.Arena().Grow(needed); growErr != nil {
			return 0, 0, 0, fmt.Errorf("growing arena: %w", growErr)
		}
	}
	return 0, 0, 0, fmt.Errorf("%w: arena still exhausted after %d regrow attempts", ebmerr.ErrAllocationFailure, maxRegrowAttempts)
}

func growAttempt(h *histogram.Histogram, numClasses, maxSplits, minInstancesForSplit int, sc scratch.Scratch) (int, float64, error) {
	ar := sc.Arena()
	q := sc.Queue()
	ar.Reset()
	q.Reset()

	rootRange := split.Range{
		BinFirst:  0,
		BinLast:   h.NumBins() - 1,
		Instances: h.InstancesTotal,
		Agg:       h.AggTotal,
	}
	rootIdx, err := ar.AllocRoot()
	if err != nil {
		return 0, 0, errArenaExhausted
	}
	ar.At(rootIdx).Leaf = rootRange
	rootResult := split.Best(sc.LeftSums(numClasses), h, rootRange)

	left, right, err := ar.AllocPair()
	if err != nil {
		return 0, 0, errArenaExhausted
	}
	commit(ar, rootIdx, rootResult, left, right)
	splitsCommitted := 1
	totalGain := rootResult.Gain

	if maxSplits == 1 || h.NumBins() == 2 {
		return splitsCommitted, totalGain, nil
	}

	candidates := make(map[int]split.Result)
	evaluate := func(nodeIdx int, r split.Range) {
		if !r.Splittable(minInstancesForSplit) {
			return
		}
		res := split.Best(sc.LeftSums(numClasses), h, r)
		candidates[nodeIdx] = res
		q.Push(nodeIdx, res.Gain)
	}
	evaluate(left, rootResult.Left)
	evaluate(right, rootResult.Right)

	for splitsCommitted < maxSplits && q.Len() > 0 {
		nodeIdx := q.Pop()
		res, ok := candidates[nodeIdx]
		if !ok {
			return 0, 0, fmt.Errorf("%w: popped candidate %d with no recorded split result", ebmerr.ErrInternalException, nodeIdx)
		}
		delete(candidates, nodeIdx)
		childLeft, childRight, err := ar.AllocPair()
		if err != nil {
			return 0, 0, errArenaExhausted
		}
		commit(ar, nodeIdx, res, childLeft, childRight)
		splitsCommitted++
		totalGain += res.Gain
		evaluate(childLeft, res.Left)
		evaluate(childRight, res.Right)
	}
	return splitsCommitted, totalGain, nil
}

func commit(ar *arena.Arena, nodeIdx int, res split.Result, left, right int) {
	node := ar.At(nodeIdx)
	node.Split = true
	node.DivisionBin = res.DivisionBin
	node.Gain = res.Gain
	node.Left = left
	node.Right = right
	ar.At(left).Leaf = res.Left
	ar.At(right).Leaf = res.Right
}
