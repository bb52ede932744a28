/*
Package ebmerr defines the fatal tree-build error kinds shared by the
arena, tree and root ebmgrow packages. It exists as its own leaf
package (rather than living on the root ebmgrow package, where it
would naturally read) purely to avoid an import cycle: the tree
package constructs these errors and the root package re-exports them
for callers, and Go does not allow tree to import back into its own
importer.
*/
package ebmerr

// BuildError represents a fatal error encountered while growing a
// single tree. All BuildErrors are fatal for the tree being built but
// leave the Scratch handed to Grow safely reusable for the next one,
// mirroring the string-based custom error type
// pbanos/botanic/tree.PredictionError uses for its own fixed set of
// sentinel failure conditions.
type BuildError string

// ErrCapacityOverflow is returned when the node capacity requested for
// the arena is too large. The histogram's size (bucket count times
// num_bins) is not checked for overflow.
const ErrCapacityOverflow = BuildError("capacity overflow computing tree build size")

// ErrAllocationFailure is returned when the node arena cannot be grown
// to the size a build requires. The histogram buffer and the model
// delta's storage are allocated without returning this error.
const ErrAllocationFailure = BuildError("allocation failure growing tree build scratch")

// ErrInternalException is returned when the priority-queue-driven
// growth loop reaches a state its invariants rule out (for instance,
// popping a candidate whose precomputed split result has gone
// missing). It signals a programming error in the grower, not bad
// input.
const ErrInternalException = BuildError("internal exception in tree growth driver")

func (e BuildError) Error() string {
	return string(e)
}
