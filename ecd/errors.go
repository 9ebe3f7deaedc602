// SPDX-License-Identifier: MIT

package ecd

import "errors"

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("ecd: graph is nil")

	// ErrLoop reports a self-loop; loops never lie on an even cycle.
	ErrLoop = errors.New("ecd: graph has a loop")

	// ErrOddDegree reports a vertex of odd degree.
	ErrOddDegree = errors.New("ecd: vertex of odd degree")

	// ErrOddEdgeCount reports an odd number of edges.
	ErrOddEdgeCount = errors.New("ecd: odd number of edges")

	// ErrUnknownSelector is returned by ParseSelector for unknown names.
	ErrUnknownSelector = errors.New("ecd: unknown selector")

	// ErrIncompleteColoring reports an edge of G without a color.
	ErrIncompleteColoring = errors.New("ecd: edge without color")

	// ErrUnknownEdge reports a colored edge that G does not have.
	ErrUnknownEdge = errors.New("ecd: coloring names an unknown edge")

	// ErrColorOutOfRange reports a negative color.
	ErrColorOutOfRange = errors.New("ecd: color out of range")

	// ErrEmptyClass reports a color class with no edges.
	ErrEmptyClass = errors.New("ecd: empty color class")

	// ErrNotRegular reports a subgraph that is not 2-regular.
	ErrNotRegular = errors.New("ecd: subgraph is not 2-regular")

	// ErrOddComponent reports a subgraph component of odd order.
	ErrOddComponent = errors.New("ecd: subgraph has an odd cycle")

	// ErrEdgeReused reports an edge present in two subgraphs.
	ErrEdgeReused = errors.New("ecd: edge used by two subgraphs")

	// ErrNotIsomorphic reports a union of subgraphs that is not G.
	ErrNotIsomorphic = errors.New("ecd: union of subgraphs is not isomorphic to the graph")
)
