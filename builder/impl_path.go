// SPDX-License-Identifier: MIT
// Package: evencycle/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); P1 is a single vertex.
//   • Emits edges i -> i+1 for i=0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/evencycle/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the path P_n on n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n, methodPath); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
