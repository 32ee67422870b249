package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
)

// Dijkstra computes shortest distances from the source state (Options.Source)
// to all other states of g.
//
// Returns:
//
//   - dist: map from state ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v, prev[v] == "".
//   - err:  error if inputs or options are invalid.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//
// core.Graph rejects negative costs on insertion, so no pre-scan is needed.
//
// Complexity:
//
//   - Time:  O((S + E) log S)
//   - Space: O(S + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate Source, graph and Source membership
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasState(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Prepare runner state
	n := g.StateCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Initialize and run main loop
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the state sequence source → target from a predecessor map
// returned with WithReturnPath.
// Returns ErrNoPath if target was never reached.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	path := []string{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil, fmt.Errorf("%w: %q→%q", ErrNoPath, source, target)
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ShortestPath returns the cheapest cost and state sequence from source to
// target. Returns ErrNoPath if target is unreachable.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (float64, []string, error) {
	dist, prev, err := Dijkstra(g, append(opts, Source(source), WithReturnPath())...)
	if err != nil {
		return 0, nil, err
	}
	d, ok := dist[target]
	if !ok || math.IsInf(d, 1) {
		return 0, nil, fmt.Errorf("%w: %q→%q", ErrNoPath, source, target)
	}
	path, err := PathTo(prev, source, target)
	if err != nil {
		return 0, nil, err
	}

	return d, path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (Source, thresholds, etc.).
	dist    map[string]float64 // Maps state ID → current best distance from Source.
	prev    map[string]string  // Maps state ID → predecessor on the shortest path.
	visited map[string]bool    // Tracks if a state's distance is finalized.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist=+Inf for every state and pushes Source=0 into the heap.
func (r *runner) init() {
	for _, v := range r.g.States() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinished state and relaxes its
// outgoing edges. It stops when the heap is empty or the closest distance
// exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax pushes every strictly improved neighbour of u.
// Edges with cost ≥ InfEdgeThreshold are walls.
func (r *runner) relax(u string) {
	for _, e := range r.g.Successors(u) {
		if e.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + e.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		// "<" rather than "≤" avoids pushing duplicates on equal distances.
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem represents a state and its current distance from the source.
type nodeItem struct {
	id   string  // state ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
