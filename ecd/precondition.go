// SPDX-License-Identifier: MIT

package ecd

import (
	"fmt"

	"github.com/katalvlaran/evencycle/core"
)

// CheckPreconditions returns nil when g passes the necessary conditions for
// an ECD: no loop, every degree even, an even number of edges. The error
// wraps ErrLoop, ErrOddDegree or ErrOddEdgeCount.
func CheckPreconditions(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			return fmt.Errorf("edge %s at %s: %w", e.ID, e.From, ErrLoop)
		}
	}
	degrees := g.Degrees()
	for _, v := range g.Vertices() {
		if degrees[v]%2 != 0 {
			return fmt.Errorf("vertex %s has degree %d: %w", v, degrees[v], ErrOddDegree)
		}
	}
	if m := g.EdgeCount(); m%2 != 0 {
		return fmt.Errorf("%d edges: %w", m, ErrOddEdgeCount)
	}

	return nil
}

// LowerBound returns the number of classes every ECD of g needs: each class
// covers at most two edges at a vertex.
func LowerBound(g *core.Graph) int {
	return (g.MaxDegree() + 1) / 2
}
