/*
Package scratch defines the Scratch collaborator a tree build borrows
exclusively for its duration: the node arena, the candidate priority
queue, and reusable per-class sum buffers, all grown on demand and
cleared rather than freed between builds. This mirrors the
interface-plus-in-memory-implementation split of
pbanos/botanic/tree.NodeStore, but without that type's locking: §5 of
this module's design gives a Scratch to exactly one build at a time,
so there is no concurrent access to guard against within a build, only
independent Scratch values per parallel worker.
*/
package scratch

import (
	"github.com/pbanos/ebmgrow/arena"
	"github.com/pbanos/ebmgrow/histogram"
	"github.com/pbanos/ebmgrow/pqueue"
)

/*
Scratch exposes the mutable containers one tree build consumes: a node
Arena sized to the build's needs, a candidate Queue ordering leaves by
gain, and a LeftSums buffer of at least numClasses entries the leaf-
split evaluator reuses across candidate cut positions instead of
allocating fresh per-cut-position slices.

Reset clears every container for a fresh build without releasing their
backing storage.
*/
type Scratch interface {
	Arena() *arena.Arena
	Queue() *pqueue.Queue
	LeftSums(numClasses int) []histogram.ClassStats
	Reset()
}

type memoryScratch struct {
	arena    *arena.Arena
	queue    *pqueue.Queue
	leftSums []histogram.ClassStats
}

// New returns a Scratch with an arena pre-sized to minArenaCapacity
// nodes. Pass a small constant (e.g. 3, for a root and its first
// child pair) when the eventual tree size is unknown; the arena grows
// itself as needed.
func New(minArenaCapacity int) Scratch {
	return &memoryScratch{
		arena: arena.New(minArenaCapacity),
		queue: pqueue.New(),
	}
}

func (s *memoryScratch) Arena() *arena.Arena {
	return s.arena
}

func (s *memoryScratch) Queue() *pqueue.Queue {
	return s.queue
}

func (s *memoryScratch) LeftSums(numClasses int) []histogram.ClassStats {
	if cap(s.leftSums) < numClasses {
		s.leftSums = make([]histogram.ClassStats, numClasses)
	}
	s.leftSums = s.leftSums[:numClasses]
	for i := range s.leftSums {
		s.leftSums[i] = histogram.ClassStats{}
	}
	return s.leftSums
}

func (s *memoryScratch) Reset() {
	s.arena.Reset()
	s.queue.Reset()
}
