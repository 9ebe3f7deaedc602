// SPDX-License-Identifier: MIT

package linegraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/evencycle/core"
)

// Index is a dense view of G and L(G). Edge i of G is Edges[i]; Adj[i]
// lists the indices adjacent to i in L(G), once per L-edge, ascending.
type Index struct {
	Edges    []*core.Edge
	Pos      map[string]int
	Adj      [][]int
	Incident map[string][]int
}

// NewIndex builds the Index of g through LineGraph.
func NewIndex(g *core.Graph) (*Index, error) {
	lg, mapping, err := LineGraph(g)
	if err != nil {
		return nil, err
	}
	edges := g.Edges()
	ix := &Index{
		Edges:    edges,
		Pos:      make(map[string]int, len(edges)),
		Adj:      make([][]int, len(edges)),
		Incident: make(map[string][]int, g.VertexCount()),
	}
	for i, e := range edges {
		ix.Pos[e.ID] = i
	}
	for _, v := range g.Vertices() {
		ix.Incident[v] = nil
	}
	for i, e := range edges {
		ix.Incident[e.From] = append(ix.Incident[e.From], i)
		if !e.IsLoop() {
			ix.Incident[e.To] = append(ix.Incident[e.To], i)
		}
		lv := mapping[e.ID]
		lnbrs, err := lg.Neighbors(lv)
		if err != nil {
			return nil, fmt.Errorf("linegraph: Neighbors(%s): %w", lv, err)
		}
		adj := make([]int, 0, len(lnbrs))
		for _, le := range lnbrs {
			adj = append(adj, ix.Pos[le.Other(lv)])
		}
		sort.Ints(adj)
		ix.Adj[i] = adj
	}

	return ix, nil
}

// Len returns the number of edges of G.
func (ix *Index) Len() int { return len(ix.Edges) }

// Distinct returns Adj[i] without repetitions.
func (ix *Index) Distinct(i int) []int {
	out := make([]int, 0, len(ix.Adj[i]))
	for k, j := range ix.Adj[i] {
		if k > 0 && ix.Adj[i][k-1] == j {
			continue
		}
		out = append(out, j)
	}

	return out
}
