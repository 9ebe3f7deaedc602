// SPDX-License-Identifier: MIT

package linegraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evencycle/core"
)

// ErrGraphNil is returned for a nil input graph.
var ErrGraphNil = errors.New("linegraph: graph is nil")

// Mapping maps an edge ID of G to the vertex ID of L(G) representing it.
type Mapping map[string]string

// LineGraph returns L(G) and the edge→vertex mapping. The vertex of L(G)
// for edge e has ID e.ID; isolated vertices of G leave no trace.
//
// Complexity: O(Σ deg(v)²).
func LineGraph(g *core.Graph) (*core.Graph, Mapping, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	lg := core.NewGraph(core.WithMultiEdges())
	mapping := make(Mapping, g.EdgeCount())
	for _, e := range g.Edges() {
		if err := lg.AddVertex(e.ID); err != nil {
			return nil, nil, fmt.Errorf("linegraph: AddVertex(%s): %w", e.ID, err)
		}
		mapping[e.ID] = e.ID
	}
	for _, v := range g.Vertices() {
		inc, err := g.Neighbors(v)
		if err != nil {
			return nil, nil, fmt.Errorf("linegraph: Neighbors(%s): %w", v, err)
		}
		for i := 0; i < len(inc); i++ {
			for j := i + 1; j < len(inc); j++ {
				if _, err := lg.AddEdge(mapping[inc[i].ID], mapping[inc[j].ID]); err != nil {
					return nil, nil, fmt.Errorf("linegraph: AddEdge(%s-%s): %w", inc[i].ID, inc[j].ID, err)
				}
			}
		}
	}

	return lg, mapping, nil
}
