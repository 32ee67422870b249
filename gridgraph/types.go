// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvsearch.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrTooManyCells indicates LetterIDs on a grid with more than 26 cells.
	ErrTooManyCells = errors.New("gridgraph: letter IDs need at most 26 cells")
	// ErrUnknownCell indicates an ID that names no cell of the grid.
	ErrUnknownCell = errors.New("gridgraph: unknown cell")
	// ErrWall indicates a wall cell where an open cell is required.
	ErrWall = errors.New("gridgraph: cell is a wall")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal moves.
	Conn8
)

// IDScheme selects how cells are named in the converted graph.
type IDScheme int

const (
	// CoordIDs names cells "r,c".
	CoordIDs IDScheme = iota
	// LetterIDs names cells A, B, C… in row-major order (≤ 26 cells).
	LetterIDs
)

// GridOptions contains tunable parameters for grid worlds.
type GridOptions struct {
	// OpenThreshold is the minimum cell value of an open cell; lower values
	// are walls.
	OpenThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// IDs selects the cell naming scheme.
	IDs IDScheme
	// Weighted makes a move cost the value of the cell entered; otherwise
	// every move costs 1.
	Weighted bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// OpenThreshold=1 (0 is a wall), Conn4, CoordIDs, unit move costs.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn4,
		IDs:           CoordIDs,
	}
}

// move is a neighbor offset and the action that takes it.
type move struct {
	dr, dc int
	action string
}

var (
	moves4 = []move{{-1, 0, "up"}, {1, 0, "down"}, {0, -1, "left"}, {0, 1, "right"}}
	moves8 = append(append([]move(nil), moves4...),
		move{-1, -1, "up-left"}, move{-1, 1, "up-right"}, move{1, -1, "down-left"}, move{1, 1, "down-right"})
)

// GridGraph treats a 2D integer grid as a world of open cells and walls.
// It is immutable once built. Values[r][c] holds the original input value.
type GridGraph struct {
	Rows, Cols int
	Values     [][]int
	opts       GridOptions
	moves      []move
}
