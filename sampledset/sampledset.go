/*
Package sampledset provides the SampledSet collaborator the tree
grower reads its training data from: an ordered, one-pass sequence of
per-instance (bin, residuals[K][, denominators[K]]) rows produced
upstream by sampling and residual computation, both out of scope for
this module.
*/
package sampledset

import "fmt"

// Instance is a single training row: the bin its feature value was
// discretized into, and its per-class residuals (gradient of the loss
// against the current prediction) and, for classification, its
// per-class denominators (Newton curvature weights). Both slices have
// length K. For regression (K == 1), Denominators is ignored and may
// be nil.
type Instance struct {
	Bin          int
	Residuals    []float64
	Denominators []float64
}

/*
SampledSet is an iterable producer of Instance values. Implementations
need support only a single linear pass per call to Instances: the
tree grower never rewinds a SampledSet.
*/
type SampledSet interface {
	// Instances returns the instances of the set in an undefined but
	// stable order, or an error if they cannot be produced.
	Instances() ([]Instance, error)
}

// Slice is a SampledSet backed by an in-memory slice, the reference
// implementation used by this module's own tests and by small
// in-process callers.
type Slice []Instance

// Instances returns the underlying slice.
func (s Slice) Instances() ([]Instance, error) {
	return []Instance(s), nil
}

// Validate returns an error if any instance has a negative bin index,
// a Residuals/Denominators length mismatch against numClasses (when
// Denominators is present), or a negative denominator, any of which
// would violate the invariants the histogram accumulator assumes.
// numClasses is K; pass the same K used to build the Feature's
// histogram.
func Validate(instances []Instance, numClasses int) error {
	for i, inst := range instances {
		if inst.Bin < 0 {
			return fmt.Errorf("instance %d: negative bin index %d", i, inst.Bin)
		}
		if len(inst.Residuals) != numClasses {
			return fmt.Errorf("instance %d: expected %d residuals, got %d", i, numClasses, len(inst.Residuals))
		}
		if inst.Denominators == nil {
			continue
		}
		if len(inst.Denominators) != numClasses {
			return fmt.Errorf("instance %d: expected %d denominators, got %d", i, numClasses, len(inst.Denominators))
		}
		for k, d := range inst.Denominators {
			if d < 0 {
				return fmt.Errorf("instance %d: negative denominator %f for class %d", i, d, k)
			}
		}
	}
	return nil
}
