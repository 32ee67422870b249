package gridgraph

import (
	"container/list"
)

// WallsToBreak finds a route from cell from to cell to that crosses the
// fewest walls, the number of walls a robot would have to break to get
// through. Entering an open cell costs 0 and entering a wall costs 1.
// Returns the route as cell IDs (both ends included) and the wall count.
//
// Behavior:
//  1. Resolve both IDs (ErrUnknownCell).
//  2. 0–1 BFS from from: cost-0 moves go to the front of the deque, cost-1
//     moves to the back.
//  3. Stop when to is popped; reconstruct via predecessors.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (gg *GridGraph) WallsToBreak(from, to string) (route []string, walls int, err error) {
	fr, fc, err := gg.Cell(from)
	if err != nil {
		return nil, 0, err
	}
	tr, tc, err := gg.Cell(to)
	if err != nil {
		return nil, 0, err
	}

	n := gg.Rows * gg.Cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := gg.index(fr, fc), gg.index(tr, tc)
	dist[src] = gg.wallCost(fr, fc)
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		ur, uc := gg.Coordinate(u)
		for _, m := range gg.moves {
			vr, vc := ur+m.dr, uc+m.dc
			if !gg.InBounds(vr, vc) {
				continue
			}
			v := gg.index(vr, vc)
			step := gg.wallCost(vr, vc)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if dist[dst] == inf {
		return nil, 0, ErrNoPath
	}
	for at := dst; at >= 0; at = prev[at] {
		r, c := gg.Coordinate(at)
		route = append([]string{gg.ID(r, c)}, route...)
	}

	return route, dist[dst], nil
}

func (gg *GridGraph) wallCost(r, c int) int {
	if gg.Open(r, c) {
		return 0
	}

	return 1
}
