// SPDX-License-Identifier: MIT

// Package isomorphism decides whether two undirected multigraphs are
// isomorphic, honoring edge multiplicities and loops.
//
// The test runs in three stages:
//
//  1. Cheap invariants: vertex count, edge count, degree sequence.
//  2. Joint color refinement (1-dimensional Weisfeiler–Leman) over both
//     graphs at once, so that class histograms are comparable.
//  3. Backtracking over color-preserving vertex maps, checking edge
//     multiplicity against every vertex already mapped.
//
// Worst case is exponential; the graphs produced by decomposition
// validation are small and refinement usually leaves singleton classes.
package isomorphism
