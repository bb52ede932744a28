/*
Package histogram accumulates per-instance residuals (and, for
classification, denominators) from a sampledset.SampledSet into a
fixed-size array of per-bin buckets, then compacts away the bins that
received no instances so the tree grower only ever walks a dense,
contiguous run.
*/
package histogram

import (
	"fmt"

	"github.com/pbanos/ebmgrow/sampledset"
)

// ClassStats is the (sum_residual, sum_denominator) pair tracked for
// one class within one bucket.
type ClassStats struct {
	SumResidual    float64
	SumDenominator float64
}

/*
Bucket is the per-bin aggregate: an instance count and a per-class
statistics vector of length K. OriginalBin carries the bin index the
bucket was accumulated under before compaction, so that the flattener
can later translate a division back to the caller's own bin numbering.
*/
type Bucket struct {
	Count       int
	Stats       []ClassStats
	OriginalBin int
}

// Add folds one instance's per-class residuals (and, when non-nil,
// denominators) into the bucket.
func (b *Bucket) Add(residuals, denominators []float64) {
	b.Count++
	for k, r := range residuals {
		b.Stats[k].SumResidual += r
	}
	for k, d := range denominators {
		b.Stats[k].SumDenominator += d
	}
}

// Histogram is the compacted, dense run of non-empty buckets produced
// by Build, plus the totals accumulated across all of them.
type Histogram struct {
	Buckets        []Bucket
	InstancesTotal int
	AggTotal       []ClassStats
}

// Build accumulates every instance of set into numBins buckets indexed
// by Instance.Bin, then compacts out the empty ones. numClasses is K;
// every instance must carry exactly numClasses residuals (and either
// zero or numClasses denominators).
func Build(set sampledset.SampledSet, numBins, numClasses int) (*Histogram, error) {
	if numBins < 1 {
		return nil, fmt.Errorf("building histogram: numBins must be >= 1, got %d", numBins)
	}
	instances, err := set.Instances()
	if err != nil {
		return nil, fmt.Errorf("building histogram: reading instances: %w", err)
	}
	raw := make([]Bucket, numBins)
	for i := range raw {
		raw[i] = Bucket{Stats: make([]ClassStats, numClasses), OriginalBin: i}
	}
	for i, inst := range instances {
		if inst.Bin < 0 || inst.Bin >= numBins {
			return nil, fmt.Errorf("building histogram: instance %d: bin %d out of range [0,%d)", i, inst.Bin, numBins)
		}
		if len(inst.Residuals) != numClasses {
			return nil, fmt.Errorf("building histogram: instance %d: expected %d residuals, got %d", i, numClasses, len(inst.Residuals))
		}
		raw[inst.Bin].Add(inst.Residuals, inst.Denominators)
	}
	h := &Histogram{AggTotal: make([]ClassStats, numClasses)}
	for _, bucket := range raw {
		if bucket.Count == 0 {
			continue
		}
		h.Buckets = append(h.Buckets, bucket)
		h.InstancesTotal += bucket.Count
		for k, s := range bucket.Stats {
			h.AggTotal[k].SumResidual += s.SumResidual
			h.AggTotal[k].SumDenominator += s.SumDenominator
		}
	}
	return h, nil
}

// NumBins returns the number of non-empty, compacted buckets.
func (h *Histogram) NumBins() int {
	return len(h.Buckets)
}

// OriginalBinID returns the original (pre-compaction) bin ID of the
// compacted bucket at the given index.
func (h *Histogram) OriginalBinID(compactedIndex int) int {
	return h.Buckets[compactedIndex].OriginalBin
}
