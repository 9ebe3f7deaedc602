// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, vertex queries and degree statistics.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Mutations hold g.mu for writing, queries for reading.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id and its incidence bucket. Caller holds g.mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.incidence[id] = make(map[string]*Edge)
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex together with every incident edge.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for _, e := range g.incidence[id] {
		g.removeEdgeLocked(e)
	}
	delete(g.incidence, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge ends at id; a loop contributes 2.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(v)).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.incidence[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return bucketDegree(bucket), nil
}

// Degrees returns the degree of every vertex, loops counted twice.
// Isolated vertices map to 0.
// Complexity: O(V+E).
func (g *Graph) Degrees() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]int, len(g.vertices))
	for id, bucket := range g.incidence {
		out[id] = bucketDegree(bucket)
	}

	return out
}

// MaxDegree returns the largest vertex degree, or 0 for an empty graph.
// Complexity: O(V+E).
func (g *Graph) MaxDegree() int {
	best := 0
	for _, d := range g.Degrees() {
		if d > best {
			best = d
		}
	}

	return best
}

// MinDegree returns the smallest vertex degree, or 0 for an empty graph.
// Complexity: O(V+E).
func (g *Graph) MinDegree() int {
	degrees := g.Degrees()
	if len(degrees) == 0 {
		return 0
	}
	first := true
	best := 0
	for _, d := range degrees {
		if first || d < best {
			best, first = d, false
		}
	}

	return best
}

func bucketDegree(bucket map[string]*Edge) int {
	d := 0
	for _, e := range bucket {
		if e.IsLoop() {
			d += 2
		} else {
			d++
		}
	}

	return d
}
