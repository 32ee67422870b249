package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrTooManyCells for
// LetterIDs on more than 26 cells.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if opts.IDs == LetterIDs && rows*cols > 26 {
		return nil, fmt.Errorf("%w: %d×%d", ErrTooManyCells, rows, cols)
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = append([]int(nil), values[r]...)
	}
	mv := moves4
	if opts.Conn == Conn8 {
		mv = moves8
	}

	return &GridGraph{Rows: rows, Cols: cols, Values: cells, opts: opts, moves: mv}, nil
}

// RobotWorld returns the open 3×3 world with cells A..I:
//
//	A B C
//	D E F
//	G H I
func RobotWorld() *GridGraph {
	opts := DefaultGridOptions()
	opts.IDs = LetterIDs
	gg, _ := NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, opts)

	return gg
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(r, c int) bool {
	return r >= 0 && r < gg.Rows && c >= 0 && c < gg.Cols
}

// Open reports whether (r,c) is inside the grid and not a wall.
func (gg *GridGraph) Open(r, c int) bool {
	return gg.InBounds(r, c) && gg.Values[r][c] >= gg.opts.OpenThreshold
}

// ID returns the name of cell (r,c) under the configured scheme.
func (gg *GridGraph) ID(r, c int) string {
	if gg.opts.IDs == LetterIDs {
		return string(rune('A' + gg.index(r, c)))
	}

	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Cell resolves an ID back to its coordinates.
func (gg *GridGraph) Cell(id string) (r, c int, err error) {
	if gg.opts.IDs == LetterIDs {
		if len(id) != 1 || id[0] < 'A' || int(id[0]-'A') >= gg.Rows*gg.Cols {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnknownCell, id)
		}
		r, c = gg.Coordinate(int(id[0] - 'A'))
		return r, c, nil
	}
	rs, cs, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownCell, id)
	}
	var errR, errC error
	r, errR = strconv.Atoi(rs)
	c, errC = strconv.Atoi(cs)
	if errR != nil || errC != nil || !gg.InBounds(r, c) {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownCell, id)
	}

	return r, c, nil
}

// ToCoreGraph converts the open cells into a directed *core.Graph. Every
// open cell is a state with metadata {row, col, value}; every move between
// open neighbours is an edge labelled with its direction ("up", "down",
// "left", "right", and the diagonals under Conn8). Edges leave each cell
// in that direction order.
// Complexity: O(R×C×d) time and memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph()
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			if !gg.Open(r, c) {
				continue
			}
			id := gg.ID(r, c)
			_ = g.AddState(id)
			_ = g.SetMetadata(id, "row", r)
			_ = g.SetMetadata(id, "col", c)
			_ = g.SetMetadata(id, "value", gg.Values[r][c])
		}
	}
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			if !gg.Open(r, c) {
				continue
			}
			for _, m := range gg.moves {
				nr, nc := r+m.dr, c+m.dc
				if !gg.Open(nr, nc) {
					continue
				}
				_, _ = g.AddEdge(gg.ID(r, c), gg.ID(nr, nc), gg.stepCost(nr, nc), core.WithAction(m.action))
			}
		}
	}

	return g
}

// Heuristic returns an admissible distance estimate to goal: Manhattan
// under Conn4, Chebyshev under Conn8, scaled by the cheapest move when the
// grid is weighted.
func (gg *GridGraph) Heuristic(goal string) (heuristic.Func[string], error) {
	gr, gc, err := gg.Cell(goal)
	if err != nil {
		return nil, err
	}
	coords := make(map[string]heuristic.Point, gg.Rows*gg.Cols)
	minStep := 0.0
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			coords[gg.ID(r, c)] = heuristic.Point{Row: r, Col: c}
			if gg.Open(r, c) && (minStep == 0 || gg.stepCost(r, c) < minStep) {
				minStep = gg.stepCost(r, c)
			}
		}
	}
	target := heuristic.Point{Row: gr, Col: gc}
	h := heuristic.Manhattan(coords, target)
	if gg.opts.Conn == Conn8 {
		h = heuristic.Chebyshev(coords, target)
	}
	if gg.opts.Weighted && minStep != 1 {
		h = heuristic.Scale(h, minStep)
	}

	return h, nil
}

// stepCost is the cost of entering (r,c).
func (gg *GridGraph) stepCost(r, c int) float64 {
	if gg.opts.Weighted {
		return float64(gg.Values[r][c])
	}

	return 1
}

// index maps (r,c) to a row‑major index: r*Cols + c.
// Complexity: O(1).
func (gg *GridGraph) index(r, c int) int {
	return r*gg.Cols + c
}

// Coordinate converts a row‑major index back to (r,c).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (r, c int) {
	return idx / gg.Cols, idx % gg.Cols
}
