// SPDX-License-Identifier: MIT
// Package: evencycle/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). C1 is a loop, C2 a doubled edge; both
//     need the matching core mode flag.
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/evencycle/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 1
)

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n, methodCycle); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}

// addVertices inserts cfg.idFn(0..n-1) so isolated vertices survive.
func addVertices(g *core.Graph, cfg builderConfig, n int, method string) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
