// SPDX-License-Identifier: MIT

// Package ecd computes minimum even cycle decompositions (ECD) of
// undirected multigraphs by exhaustive search, turns colorings into
// explicit subgraphs and validates decompositions.
//
// An ECD of size m partitions the edges of G into even cycles and colors
// the cycles with m classes so that cycles of one class never share a
// vertex. Edges are colored with integers in [0, 2m): color c belongs to
// class c/2, and the parity c&1 alternates along each cycle.
//
// The search keeps its decisions on an explicit stack of frames instead of
// the call stack:
//
//   - An open frame starts a new cycle at a pending edge picked by the
//     Selector, trying every class in use and then one new class.
//   - A walk frame has just colored an edge. It inspects the edge's
//     line-graph neighbors: a neighbor with the same color kills the
//     branch, exactly two neighbors of the opposite parity close the cycle
//     (an open frame is pushed for the next one), and otherwise each
//     uncolored neighbor is tried as the next edge of the cycle with the
//     opposite parity.
//
// Popping a walk frame uncolors its edge and returns it to the pending set.
// Branches needing as many classes as the best decomposition found are cut,
// and the search stops once it meets the max-degree/2 lower bound.
//
// Graphs with a loop, an odd-degree vertex or an odd number of edges have
// no ECD; Result.Size is then NoDecomposition and Result.Reason says why.
// An edgeless graph has an ECD of size 0.
package ecd
