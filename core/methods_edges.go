// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeWithID/RemoveEdge/HasEdge/
//       GetEdge/Edges/EdgeCount plus structural probes (loops, parallel edges).
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Generated IDs are "e" + decimal insertion rank.
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

import (
	"sort"
	"strconv"
	"strings"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = "e"

// AddEdge creates a new undirected edge between from and to, adding missing
// endpoints. It returns the generated edge ID.
//
// Errors:
//   - ErrEmptyVertexID: an endpoint is "".
//   - ErrLoopNotAllowed: from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed: a from–to edge exists without WithMultiEdges.
//
// Complexity: O(1) amortized, O(deg(from)) without WithMultiEdges.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if err := g.checkEndpoints(from, to); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkParallelLocked(from, to); err != nil {
		return "", err
	}
	id := g.freeIDLocked()
	g.insertLocked(id, from, to)

	return id, nil
}

// AddEdgeWithID creates an edge under a caller-chosen ID. Subgraphs built
// from a parent graph use it to keep edge identity.
//
// Errors:
//   - ErrEmptyEdgeID, ErrEdgeExists, plus every AddEdge error.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeWithID(id, from, to string) error {
	if id == "" {
		return ErrEmptyEdgeID
	}
	if err := g.checkEndpoints(from, to); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.edges[id]; ok {
		return ErrEdgeExists
	}
	if err := g.checkParallelLocked(from, to); err != nil {
		return err
	}
	g.insertLocked(id, from, to)

	return nil
}

func (g *Graph) checkEndpoints(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return ErrLoopNotAllowed
	}

	return nil
}

func (g *Graph) checkParallelLocked(from, to string) error {
	if g.allowMulti {
		return nil
	}
	for _, e := range g.incidence[from] {
		if e.Other(from) == to {
			return ErrMultiEdgeNotAllowed
		}
	}

	return nil
}

// freeIDLocked returns the next generated ID not already taken by a
// caller-chosen one.
func (g *Graph) freeIDLocked() string {
	for n := g.nextSeq + 1; ; n++ {
		id := edgeIDPrefix + strconv.FormatUint(n, 10)
		if _, taken := g.edges[id]; !taken {
			return id
		}
	}
}

func (g *Graph) insertLocked(id, from, to string) {
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.nextSeq++
	e := &Edge{ID: id, From: from, To: to, seq: g.nextSeq}
	g.edges[id] = e
	g.incidence[from][id] = e
	g.incidence[to][id] = e
}

// RemoveEdge deletes one edge.
//
// Errors:
//   - ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(e)

	return nil
}

func (g *Graph) removeEdgeLocked(e *Edge) {
	delete(g.edges, e.ID)
	delete(g.incidence[e.From], e.ID)
	delete(g.incidence[e.To], e.ID)
}

// HasEdge reports whether at least one edge joins from and to.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	return g.Multiplicity(from, to) > 0
}

// Multiplicity returns the number of parallel edges joining from and to.
// For from == to it counts loops.
// Complexity: O(deg(from)).
func (g *Graph) Multiplicity(from, to string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, e := range g.incidence[from] {
		if e.Other(from) == to {
			n++
		}
	}

	return n
}

// GetEdge returns the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) GetEdge(id string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order, so that the position of an
// edge in the result is a stable dense index.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasLoops reports whether any edge is a self-loop.
// Complexity: O(E).
func (g *Graph) HasLoops() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		if e.IsLoop() {
			return true
		}
	}

	return false
}

// HasParallelEdges reports whether two distinct edges share both endpoints.
// Complexity: O(E).
func (g *Graph) HasParallelEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	seen := make(map[[2]string]struct{}, len(g.edges))
	for _, e := range g.edges {
		key := [2]string{e.From, e.To}
		if key[1] < key[0] {
			key[0], key[1] = key[1], key[0]
		}
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
	}

	return false
}

// String renders the graph as a compact edge list, e.g. "{0-1 1-2 2-0}".
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.From)
		sb.WriteByte('-')
		sb.WriteString(e.To)
	}
	sb.WriteByte('}')

	return sb.String()
}

func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
