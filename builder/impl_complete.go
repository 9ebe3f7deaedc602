// SPDX-License-Identifier: MIT
// Package: evencycle/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, once in lexicographic order.
//
// Complexity: O(n²) time, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/evencycle/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n, methodComplete); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodComplete, u, v, err)
				}
			}
		}

		return nil
	}
}
