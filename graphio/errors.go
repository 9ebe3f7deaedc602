// SPDX-License-Identifier: MIT

package graphio

import "github.com/pkg/errors"

var (
	// ErrUnknownFormat is returned for a format name ReadFile does not know.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrBadGraph6 is returned for a malformed graph6 line.
	ErrBadGraph6 = errors.New("graphio: malformed graph6")

	// ErrUnsupported is returned for sparse6 and digraph6 input.
	ErrUnsupported = errors.New("graphio: unsupported nauty format")

	// ErrNotSimple is returned when encoding a multigraph or a graph with
	// loops as graph6.
	ErrNotSimple = errors.New("graphio: graph6 needs a simple graph")

	// ErrBadEdgeList is returned for an edge list that does not parse.
	ErrBadEdgeList = errors.New("graphio: malformed edge list")

	// ErrVertexRange is returned for a vertex outside the declared order.
	ErrVertexRange = errors.New("graphio: vertex outside declared order")
)
