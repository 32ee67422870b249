// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - State IDs are "r,c" (row-major), independent of cfg.idFn.
//   - 4-neighbourhood. For every cell the right edge is emitted before the
//     down edge, labelled "right" and "down" with reverse labels "left" and
//     "up". Directed graphs get the mirrored edges explicitly.
//
// Complexity: O(R*C) states + O(R*C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
	gridIDFmt   = "%d,%d"
)

// GridID returns the state ID of cell (r, c) as produced by Grid.
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddState(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddState(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		step := func(u, v, action, reverse string) error {
			w := cfg.cost()
			if _, err := g.AddEdge(u, v, w, core.WithAction(action), core.WithReverseAction(reverse)); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w: %w", methodGrid, u, v, w, ErrConstructFailed, err)
			}
			if g.Undirected() {
				return nil
			}
			w = cfg.cost()
			if _, err := g.AddEdge(v, u, w, core.WithAction(reverse)); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w: %w", methodGrid, v, u, w, ErrConstructFailed, err)
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := step(u, GridID(r, c+1), "right", "left"); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := step(u, GridID(r+1, c), "down", "up"); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
