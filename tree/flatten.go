package tree

import (
	"github.com/pbanos/ebmgrow/arena"
	"github.com/pbanos/ebmgrow/histogram"
	"github.com/pbanos/ebmgrow/model"
	"github.com/pbanos/ebmgrow/stats"
)

/*
Flatten walks a grown tree in order (left subtree, this node, right
subtree), emitting the division bin indices of internal nodes and a
per-class value vector for every leaf, and writes both into delta.
Division indices are translated from compacted-bin positions back to
the caller's original bin numbering via h's side table before being
averaged into a midpoint, per spec's division-value contract.
numClasses is K: 1 selects the regression leaf-value rule, >=2 selects
the classification (Newton step) rule for every class.
*/
func Flatten(h *histogram.Histogram, ar *arena.Arena, rootIndex, numClasses int, delta model.Delta) error {
	var divisions []int
	var values []float64
	walk(h, ar, rootIndex, numClasses, &divisions, &values)

	if err := delta.SetNumDivisions(len(divisions)); err != nil {
		return err
	}
	copy(delta.DivisionPointer(), divisions)
	if err := delta.EnsureValueCapacity(len(values)); err != nil {
		return err
	}
	copy(delta.ValuePointer(), values)
	return nil
}

func walk(h *histogram.Histogram, ar *arena.Arena, idx, numClasses int, divisions *[]int, values *[]float64) {
	node := ar.At(idx)
	if !node.Split {
		for k := 0; k < numClasses; k++ {
			*values = append(*values, leafValue(node.Leaf.Agg[k], node.Leaf.Instances, numClasses))
		}
		return
	}
	walk(h, ar, node.Left, numClasses, divisions, values)
	originalFirst := h.OriginalBinID(node.DivisionBin)
	originalNext := h.OriginalBinID(node.DivisionBin + 1)
	*divisions = append(*divisions, (originalFirst+originalNext)/2)
	walk(h, ar, node.Right, numClasses, divisions, values)
}

func leafValue(agg histogram.ClassStats, instances, numClasses int) float64 {
	if numClasses == 1 {
		return stats.RegressionLeafValue(agg.SumResidual, float64(instances))
	}
	return stats.ClassificationLeafValue(agg.SumResidual, agg.SumDenominator)
}
