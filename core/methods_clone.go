// SPDX-License-Identifier: MIT

package core

// CloneEmpty returns a new Graph with the same flags and vertices but no
// edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge),
		incidence:  make(map[string]map[string]*Edge, len(g.vertices)),
	}
	for id := range g.vertices {
		out.addVertexLocked(id)
	}

	return out
}

// Clone returns a deep copy: same flags, vertices, edge IDs and edge order.
// Edges added to the clone continue the original ID sequence.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	out := g.CloneEmpty()
	g.mu.RLock()
	defer g.mu.RUnlock()
	for id, e := range g.edges {
		cp := &Edge{ID: id, From: e.From, To: e.To, seq: e.seq}
		out.edges[id] = cp
		out.incidence[cp.From][id] = cp
		out.incidence[cp.To][id] = cp
	}
	out.nextSeq = g.nextSeq

	return out
}
