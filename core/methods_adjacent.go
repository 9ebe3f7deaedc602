// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() returns edges in insertion order.
//   - NeighborIDs() returns unique IDs sorted lexicographically.

package core

import "sort"

// Neighbors returns every edge incident to id. A loop appears once, parallel
// edges appear once each.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d) where d = number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.incidence[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, e)
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique vertices adjacent to id, sorted ascending.
// A vertex with a loop lists itself.
//
// Errors:
//   - Propagates Neighbors errors.
//
// Complexity: O(d + k log k).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nb := e.Other(id)
		if _, dup := seen[nb]; dup {
			continue
		}
		seen[nb] = struct{}{}
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}
