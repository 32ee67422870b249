// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i→(i+1)%n in ascending i, closing n-1→0 last.
//   - Directed graphs get a single orientation, which makes every state
//     reachable from every other one.
//
// Complexity: O(n) states + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		ids, err := addStates(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, cfg, methodCycle, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}
