// SPDX-License-Identifier: MIT

package ecd

import (
	"context"
	"fmt"

	"github.com/katalvlaran/evencycle/bfs"
	"github.com/katalvlaran/evencycle/core"
	"github.com/katalvlaran/evencycle/isomorphism"
)

// IsValidDecomposition reports whether subgraphs form an ECD of g.
func IsValidDecomposition(g *core.Graph, subgraphs []*core.Graph) bool {
	return Validate(g, subgraphs) == nil
}

// Validate is ValidateContext without cancellation.
func Validate(g *core.Graph, subgraphs []*core.Graph) error {
	return ValidateContext(context.Background(), g, subgraphs)
}

// ValidateContext checks, stopping at the first failure, that:
//
//  1. every subgraph is 2-regular (ErrNotRegular);
//  2. every component of every subgraph has even order (ErrOddComponent);
//  3. no edge ID occurs twice (ErrEdgeReused) and the union of the
//     subgraphs is isomorphic to g without its isolated vertices
//     (ErrNotIsomorphic).
//
// The component walk of every subgraph observes ctx.
func ValidateContext(ctx context.Context, g *core.Graph, subgraphs []*core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	for i, sub := range subgraphs {
		if sub == nil || sub.VertexCount() == 0 || sub.MinDegree() != 2 || sub.MaxDegree() != 2 {
			return fmt.Errorf("subgraph %d: %w", i, ErrNotRegular)
		}
		comps, err := bfs.Components(sub, bfs.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("subgraph %d: %w", i, err)
		}
		for _, comp := range comps {
			if len(comp)%2 != 0 {
				return fmt.Errorf("subgraph %d: component of order %d: %w", i, len(comp), ErrOddComponent)
			}
		}
	}

	union := core.NewMultigraph()
	for i, sub := range subgraphs {
		for _, e := range sub.Edges() {
			if err := union.AddEdgeWithID(e.ID, e.From, e.To); err != nil {
				return fmt.Errorf("subgraph %d edge %s: %w", i, e.ID, ErrEdgeReused)
			}
		}
	}
	if !isomorphism.AreIsomorphic(withoutIsolated(g), union) {
		return ErrNotIsomorphic
	}

	return nil
}

func withoutIsolated(g *core.Graph) *core.Graph {
	out := g.Clone()
	for v, d := range g.Degrees() {
		if d == 0 {
			_ = out.RemoveVertex(v)
		}
	}

	return out
}
