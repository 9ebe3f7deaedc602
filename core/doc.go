// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory undirected multigraph
// every other evencycle package works on.
//
// The Graph G = (V,E) supports:
//
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops).
//   - Stable textual edge IDs ("e1", "e2", …) that also define the
//     canonical edge order: Edges() enumerates in insertion order.
//   - Caller-chosen edge IDs through AddEdgeWithID, so derived subgraphs
//     (color classes of a decomposition) keep the identity of the edges
//     they were cut from.
//   - A single sync.RWMutex guarding vertices, edges and incidence.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                        // O(1)
//	HasVertex(id string) bool                         // O(1)
//	RemoveVertex(id string) error                     // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error)  // O(1)
//	AddEdgeWithID(id, from, to string) error             // O(1)
//	RemoveEdge(edgeID string) error                      // O(1)
//	HasEdge(from, to string) bool                        // O(deg(from))
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // incident edges, loops once
//	NeighborIDs(id string) ([]string, error) // unique, sorted
//	Vertices() []string                      // sorted
//	Edges() []*Edge                          // insertion order
//
//	// Degrees
//	Degree(id string) (int, error)   // a loop counts twice
//	Degrees() map[string]int         // O(V+E)
//	MaxDegree() int
//	HasLoops() bool
//	HasParallelEdges() bool
//
//	// Cloning
//	CloneEmpty() *Graph  // vertices and flags
//	Clone() *Graph       // vertices, edges and ID sequence
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrEmptyEdgeID         – zero-length edge ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrEdgeExists          – AddEdgeWithID with an ID already in use
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
