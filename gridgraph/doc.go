// Package gridgraph treats a 2D grid of cells as a world for search,
// enabling conversion to a core.Graph, region analysis, and wall-breaking
// routes.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells with value below
//     OpenThreshold are walls.
//   - ToCoreGraph yields a directed graph whose edges are labelled moves
//     ("up", "down", "left", "right", diagonals under Conn8), ready for
//     problem.FromGraph and search.Search.
//   - Heuristic(goal) gives the admissible Manhattan (Conn4) or Chebyshev
//     (Conn8) estimate for the same IDs.
//   - Regions and Connected tell whether a goal is reachable at all.
//   - WallsToBreak finds the route crossing the fewest walls (0-1 BFS).
//   - RobotWorld is the open 3×3 world with cells A..I.
//
// Complexity:
//
//   - ToCoreGraph:   O(R×C×d), Memory: O(R×C×d)    (d = 4 or 8).
//   - Regions:       O(R×C×d), Memory: O(R×C).
//   - WallsToBreak:  O(R×C×d), Memory: O(R×C).
//
// Options:
//
//   - GridOptions.OpenThreshold: minimum value of an open cell.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.IDs: CoordIDs ("r,c") or LetterIDs ("A".."Z").
//   - GridOptions.Weighted: moves cost the value of the cell entered.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrTooManyCells: LetterIDs on more than 26 cells.
//   - ErrUnknownCell: an ID names no cell.
//   - ErrWall: a wall where an open cell is required.
//   - ErrNoPath: no route exists between two cells.
package gridgraph
