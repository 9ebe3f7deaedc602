// SPDX-License-Identifier: MIT

// Package linegraph builds the line graph L(G) of a multigraph and a dense
// integer view of it.
//
// Every edge of G becomes a vertex of L(G) carrying the edge's ID. Two
// vertices of L(G) are joined by one edge per endpoint their G-edges share,
// so two parallel edges of G are joined by two parallel edges in L(G).
// Counting shared endpoints with multiplicity is what lets a 2-cycle close:
// each of its edges meets the other once at every endpoint.
//
// Index is the view the decomposition algorithms work on: G's edges in
// canonical order, their position, the multiset adjacency of L(G) and the
// per-vertex incidence lists of G.
package linegraph
