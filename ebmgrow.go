/*
Package ebmgrow grows single-feature regression trees in the style of
an Explainable Boosting Machine: given a pre-binned feature and a
sampled set of per-instance residuals (and, for classification,
denominators), it produces the small tree-derived increment
(divisions, values) the outer boosting loop adds into its running
additive model for that feature. This file holds the two entry points
a caller drives a build through, the way pbanos/botanic/botanic.go's
Seed/BranchOut/Work trio drives a (much larger) multi-feature
information-gain tree to completion; here there is no task queue or
worker pool to hand off to, since a single-feature build is fully
synchronous (see the scratch package's exclusive-ownership contract).
*/
package ebmgrow

import (
	"fmt"

	"github.com/pbanos/ebmgrow/feature"
	"github.com/pbanos/ebmgrow/histogram"
	"github.com/pbanos/ebmgrow/model"
	"github.com/pbanos/ebmgrow/sampledset"
	"github.com/pbanos/ebmgrow/scratch"
	"github.com/pbanos/ebmgrow/stats"
	"github.com/pbanos/ebmgrow/tree"
)

// TrainZeroDimensional handles the case where the outer boosting loop
// selected an empty feature set: a single bucket aggregates the
// entire sampled set and the model delta gets zero divisions and one
// leaf value per class. It uses no histogram, queue, or arena.
func TrainZeroDimensional(set sampledset.SampledSet, delta model.Delta, numClasses int) error {
	instances, err := set.Instances()
	if err != nil {
		return fmt.Errorf("training zero-dimensional model: reading instances: %w", err)
	}
	if err := sampledset.Validate(instances, numClasses); err != nil {
		return fmt.Errorf("training zero-dimensional model: %w", err)
	}
	agg := make([]histogram.ClassStats, numClasses)
	var count int
	for _, inst := range instances {
		count++
		for k, r := range inst.Residuals {
			agg[k].SumResidual += r
		}
		for k, d := range inst.Denominators {
			agg[k].SumDenominator += d
		}
	}
	if err := delta.SetNumDivisions(0); err != nil {
		return fmt.Errorf("training zero-dimensional model: %w", err)
	}
	if err := delta.EnsureValueCapacity(numClasses); err != nil {
		return fmt.Errorf("training zero-dimensional model: %w", err)
	}
	values := delta.ValuePointer()
	for k := 0; k < numClasses; k++ {
		values[k] = leafValue(agg[k], count, numClasses)
	}
	return nil
}

// TrainSingleDimensional grows a tree over one pre-binned feature and
// flattens it into delta, returning the total split gain committed.
//
// Precondition: feature.NumBins() >= 1. When the training set is too
// small (instances_total < minInstancesForSplit), the feature has
// only one bin, or maxSplits is 0, it emits the same degenerate
// single-leaf delta TrainZeroDimensional would, per spec's guard
// path, without touching sc's arena or queue.
func TrainSingleDimensional(sc scratch.Scratch, set sampledset.SampledSet, f *feature.Feature, maxSplits, minInstancesForSplit int, delta model.Delta, numClasses int) (totalGain float64, err error) {
	if f.NumBins() < 1 {
		return 0, fmt.Errorf("training single-dimensional model: feature %s has %d bins, need >= 1", f.Name(), f.NumBins())
	}
	instances, err := set.Instances()
	if err != nil {
		return 0, fmt.Errorf("training single-dimensional model: reading instances: %w", err)
	}
	if err := sampledset.Validate(instances, numClasses); err != nil {
		return 0, fmt.Errorf("training single-dimensional model: %w", err)
	}
	h, err := histogram.Build(sampledset.Slice(instances), f.NumBins(), numClasses)
	if err != nil {
		return 0, fmt.Errorf("training single-dimensional model: %w", err)
	}

	if h.InstancesTotal < minInstancesForSplit || h.NumBins() <= 1 || maxSplits == 0 {
		if err := delta.SetNumDivisions(0); err != nil {
			return 0, fmt.Errorf("training single-dimensional model: %w", err)
		}
		if err := delta.EnsureValueCapacity(numClasses); err != nil {
			return 0, fmt.Errorf("training single-dimensional model: %w", err)
		}
		values := delta.ValuePointer()
		for k := 0; k < numClasses; k++ {
			values[k] = leafValue(h.AggTotal[k], h.InstancesTotal, numClasses)
		}
		return 0, nil
	}

	rootIndex, _, totalGain, err := tree.Grow(h, numClasses, maxSplits, minInstancesForSplit, sc)
	if err != nil {
		return 0, fmt.Errorf("training single-dimensional model: %w", err)
	}
	if err := tree.Flatten(h, sc.Arena(), rootIndex, numClasses, delta); err != nil {
		return 0, fmt.Errorf("training single-dimensional model: %w", err)
	}
	return totalGain, nil
}

func leafValue(agg histogram.ClassStats, instances, numClasses int) float64 {
	if numClasses == 1 {
		return stats.RegressionLeafValue(agg.SumResidual, float64(instances))
	}
	return stats.ClassificationLeafValue(agg.SumResidual, agg.SumDenominator)
}
