// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - States via cfg.idFn in ascending index order (0..n-1).
//   - Edges i→i+1 for i=0..n-2; directed graphs get no back edges.
//
// Complexity: O(n) states + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		ids, err := addStates(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, methodPath, ids[i], ids[i+1], false); err != nil {
				return err
			}
		}

		return nil
	}
}
