/*
Package arena provides the node storage the tree grower allocates
from: a typed, growable vector of Node records addressed by index
rather than by pointer. Growing the arena discards every node already
allocated, so a build that runs out of room restarts from scratch with
the larger capacity. This replaces the
raw-memory, pointer-chasing node arena of the source implementation
with the index-based scheme spec.md §9 calls for: children are
referenced by arena index, and nodes are always allocated in
contiguous left/right pairs.
*/
package arena

import (
	"fmt"
	"math"

	"github.com/pbanos/ebmgrow/ebmerr"
	"github.com/pbanos/ebmgrow/split"
)

// NoChild is the sentinel child index a leaf node (one that has not
// been split) carries in place of a real arena index.
const NoChild = -1

/*
Node holds exactly one of a pending LeafRange (Split == false) or a
committed SplitResult (Split == true) at any time, tagging which with
the Split field instead of a raw byte-union discriminant.
*/
type Node struct {
	Split bool
	Leaf  split.Range
	// DivisionBin, Gain and Left/Right are only meaningful when Split
	// is true. Left and Right are arena indices of the contiguous
	// child pair; NoChild never appears here once Split is true.
	DivisionBin int
	Gain        float64
	Left        int
	Right       int
}

/*
Arena is the reusable node store for one tree build. It grows
geometrically (doubling, with a floor) rather than one node at a time,
matching the "retry with a bigger tree node children array" strategy
of the source, but expressed as a simple capacity check the caller
uses to decide whether a restart is needed instead of a goto.
*/
type Arena struct {
	nodes []Node
}

// New returns an empty Arena with room for at least minCapacity
// nodes.
func New(minCapacity int) *Arena {
	if minCapacity < 1 {
		minCapacity = 1
	}
	return &Arena{nodes: make([]Node, 0, minCapacity)}
}

// Reset clears the arena for reuse by a new tree build without
// releasing its backing array, so a warm arena from a previous build
// can be handed straight to the next one.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:0]
}

// Len returns the number of nodes currently allocated.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Cap returns the arena's current node capacity.
func (a *Arena) Cap() int {
	return cap(a.nodes)
}

// Fits reports whether n more nodes can be allocated without
// exceeding the arena's current capacity.
func (a *Arena) Fits(n int) bool {
	return len(a.nodes)+n <= cap(a.nodes)
}

// Grow doubles the arena's capacity (or grows to at least minCapacity,
// whichever is larger) and resets it, ready for a restarted build. The
// caller is responsible for restarting tree growth from scratch: every
// index handed out by the previous capacity is invalid after Grow.
func (a *Arena) Grow(minCapacity int) error {
	if minCapacity > math.MaxInt32 {
		return fmt.Errorf("%w: requested arena capacity %d", ebmerr.ErrCapacityOverflow, minCapacity)
	}
	newCap := cap(a.nodes) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}
	if newCap <= cap(a.nodes) {
		return fmt.Errorf("%w: new capacity %d does not exceed current capacity %d", ebmerr.ErrAllocationFailure, newCap, cap(a.nodes))
	}
	a.nodes = make([]Node, 0, newCap)
	return nil
}

// AllocPair allocates two contiguous nodes (a left/right child pair)
// and returns their indices. It returns an error if the arena lacks
// capacity for them; the caller should Grow and restart rather than
// treat this as a partial allocation.
func (a *Arena) AllocPair() (left, right int, err error) {
	if !a.Fits(2) {
		return 0, 0, fmt.Errorf("allocating node pair: arena exhausted at capacity %d", cap(a.nodes))
	}
	left = len(a.nodes)
	right = left + 1
	a.nodes = append(a.nodes, Node{Left: NoChild, Right: NoChild}, Node{Left: NoChild, Right: NoChild})
	return left, right, nil
}

// AllocRoot allocates the single root node slot (index 0). It assumes
// the arena is freshly Reset.
func (a *Arena) AllocRoot() (int, error) {
	if !a.Fits(1) {
		return 0, fmt.Errorf("allocating root node: arena exhausted at capacity %d", cap(a.nodes))
	}
	a.nodes = append(a.nodes, Node{Left: NoChild, Right: NoChild})
	return 0, nil
}

// At returns a pointer to the node at the given arena index.
func (a *Arena) At(i int) *Node {
	return &a.nodes[i]
}
