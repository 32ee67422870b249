package frontier

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsearch/problem"
)

// TieBreak selects how entries with equal priority are ordered.
type TieBreak int

const (
	// LowerCostFirst pops the cheaper path first on equal priority.
	LowerCostFirst TieBreak = iota

	// HigherCostFirst pops the more expensive (usually deeper) path first.
	HigherCostFirst
)

// String returns the configuration name of the tie-break.
func (t TieBreak) String() string {
	switch t {
	case LowerCostFirst:
		return "lower_cost_first"
	case HigherCostFirst:
		return "higher_cost_first"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps a configuration name to a TieBreak. The empty string
// selects LowerCostFirst.
func ParseTieBreak(name string) (TieBreak, error) {
	switch name {
	case "", "lower_cost_first":
		return LowerCostFirst, nil
	case "higher_cost_first":
		return HigherCostFirst, nil
	default:
		return LowerCostFirst, fmt.Errorf("frontier: unknown tie-break %q", name)
	}
}

// Entry is one queued partial path.
type Entry[S comparable] struct {
	Priority float64
	Path     *problem.Path[S]
	seq      uint64
}

// Cost returns the accumulated cost of the entry's path.
func (e Entry[S]) Cost() float64 { return e.Path.Cost() }

// Seq returns the insertion sequence number.
func (e Entry[S]) Seq() uint64 { return e.seq }

// Queue is a min-priority queue of entries. Not safe for concurrent use;
// every search call owns its own queue.
type Queue[S comparable] struct {
	h    entryHeap[S]
	next uint64
}

// New returns an empty queue using the given tie-break.
func New[S comparable](tie TieBreak) *Queue[S] {
	return &Queue[S]{h: entryHeap[S]{tie: tie}}
}

// Push inserts path with the given priority.
func (q *Queue[S]) Push(priority float64, path *problem.Path[S]) {
	q.next++
	heap.Push(&q.h, Entry[S]{Priority: priority, Path: path, seq: q.next})
}

// Pop removes and returns the best entry. ok is false on an empty queue.
func (q *Queue[S]) Pop() (Entry[S], bool) {
	if q.h.Len() == 0 {
		return Entry[S]{}, false
	}

	return heap.Pop(&q.h).(Entry[S]), true
}

// Peek returns the best entry without removing it.
func (q *Queue[S]) Peek() (Entry[S], bool) {
	if q.h.Len() == 0 {
		return Entry[S]{}, false
	}

	return q.h.items[0], true
}

// Len returns the number of queued entries.
func (q *Queue[S]) Len() int { return q.h.Len() }

// Truncate keeps only the k best entries. k ≤ 0 empties the queue.
func (q *Queue[S]) Truncate(k int) {
	if k <= 0 {
		q.h.items = q.h.items[:0]
		return
	}
	if k >= q.h.Len() {
		return
	}
	sort.Sort(&q.h)
	// a sorted slice already satisfies the heap invariant
	q.h.items = q.h.items[:k]
}

// Drain removes every entry and returns them best first.
func (q *Queue[S]) Drain() []Entry[S] {
	sort.Sort(&q.h)
	out := q.h.items
	q.h.items = nil

	return out
}

// Reset empties the queue and restarts the insertion sequence.
func (q *Queue[S]) Reset() {
	q.h.items = nil
	q.next = 0
}

// entryHeap implements heap.Interface and sort.Interface over entries.
type entryHeap[S comparable] struct {
	items []Entry[S]
	tie   TieBreak
}

func (h *entryHeap[S]) Len() int { return len(h.items) }

func (h *entryHeap[S]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if ca, cb := a.Cost(), b.Cost(); ca != cb {
		if h.tie == HigherCostFirst {
			return ca > cb
		}
		return ca < cb
	}

	return a.seq < b.seq
}

func (h *entryHeap[S]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap[S]) Push(x interface{}) { h.items = append(h.items, x.(Entry[S])) }

func (h *entryHeap[S]) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]

	return it
}
