// SPDX-License-Identifier: MIT

package ecd

import (
	"fmt"

	"github.com/katalvlaran/evencycle/core"
)

// Materialize splits g into one subgraph per color class of coloring. Edges
// keep their IDs; endpoints are added as edges arrive, so a vertex appears
// in every class that touches it.
//
// Errors: ErrGraphNil, ErrIncompleteColoring, ErrUnknownEdge,
// ErrColorOutOfRange, ErrEmptyClass.
func Materialize(g *core.Graph, coloring map[string]int) ([]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	edges := g.Edges()
	if len(coloring) > len(edges) {
		for id := range coloring {
			if _, err := g.GetEdge(id); err != nil {
				return nil, fmt.Errorf("edge %s: %w", id, ErrUnknownEdge)
			}
		}
	}
	var classes []*core.Graph
	for _, e := range edges {
		col, ok := coloring[e.ID]
		if !ok {
			return nil, fmt.Errorf("edge %s: %w", e.ID, ErrIncompleteColoring)
		}
		if col < 0 {
			return nil, fmt.Errorf("edge %s color %d: %w", e.ID, col, ErrColorOutOfRange)
		}
		class := col / 2
		for len(classes) <= class {
			classes = append(classes, nil)
		}
		if classes[class] == nil {
			classes[class] = core.NewMultigraph()
		}
		if err := classes[class].AddEdgeWithID(e.ID, e.From, e.To); err != nil {
			return nil, fmt.Errorf("ecd: class %d: %w", class, err)
		}
	}
	for i, sub := range classes {
		if sub == nil {
			return nil, fmt.Errorf("class %d: %w", i, ErrEmptyClass)
		}
	}

	return classes, nil
}
