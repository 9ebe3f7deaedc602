// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyEdgeID indicates that the provided edge ID is empty.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates AddEdgeWithID was given an ID already present.
	ErrEdgeExists = errors.New("core: edge ID already in use")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents an undirected connection between two vertices.
//
// From and To are stored in the order they were given; for a loop they are
// equal. Edges are read-only once they are in a Graph.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint.
	From string

	// To is the second endpoint.
	To string

	// seq is the insertion rank that orders Edges().
	seq uint64
}

// IsLoop reports whether both endpoints of e coincide.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint of e opposite to v. For a loop it returns v.
// The result is undefined when v is not an endpoint of e.
func (e *Edge) Other(v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected multigraph.
//
// mu guards every field below it. nextSeq numbers edges in insertion order
// and doubles as the source of generated "e<n>" IDs.
type Graph struct {
	mu sync.RWMutex

	allowMulti bool
	allowLoops bool

	nextSeq  uint64
	vertices map[string]*Vertex
	edges    map[string]*Edge

	// incidence[v][edgeID] holds every edge touching v; a loop is stored once.
	incidence map[string]map[string]*Edge
}

// NewGraph creates an empty Graph. By default it rejects loops and
// parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		incidence: make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMultigraph is NewGraph with both parallel edges and loops enabled,
// the mode every decomposition algorithm expects.
func NewMultigraph() *Graph {
	return NewGraph(WithMultiEdges(), WithLoops())
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
