package ebmgrow

import "github.com/pbanos/ebmgrow/ebmerr"

// BuildError represents a fatal error encountered while growing a
// single tree. All BuildErrors are fatal for the tree being built but
// leave the Scratch handed to the entry points reusable for the next
// one, mirroring the string-based custom error type
// pbanos/botanic/tree.PredictionError uses for its own fixed set of
// sentinel failure conditions. It is defined in ebmerr and aliased
// here so both the tree package and callers of this package's entry
// points can refer to the same type without an import cycle.
type BuildError = ebmerr.BuildError

// ErrCapacityOverflow is returned when the node capacity requested for
// the arena is too large. The histogram's size (bucket count times
// num_bins) is not checked for overflow.
const ErrCapacityOverflow = ebmerr.ErrCapacityOverflow

// ErrAllocationFailure is returned when the node arena cannot be grown
// to the size a build requires. The histogram buffer and the model
// delta's storage are allocated without returning this error.
const ErrAllocationFailure = ebmerr.ErrAllocationFailure

// ErrInternalException is returned when the priority-queue-driven
// growth loop reaches a state its invariants rule out. It signals a
// programming error in the grower, not bad input.
const ErrInternalException = ebmerr.ErrInternalException
