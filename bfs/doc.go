// SPDX-License-Identifier: MIT

// Package bfs splits a core.Graph into connected components by
// breadth-first traversal.
//
// Components lists each component in BFS order from its smallest vertex ID;
// components are ordered by that smallest ID. Parallel edges and loops are
// harmless: neighbors are deduplicated by core.NeighborIDs. Decomposition
// validation uses it to check that every cycle of a color class has even
// length.
//
// Options:
//
//	WithContext(ctx)       – cancellation, checked once per dequeued vertex
//
// Complexity: O(V + E) time, O(V) space.
package bfs
