// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options constructors
// for the multigraph fixtures used throughout evencycle: cycles of any
// length (including the loop C1 and the doubled edge C2), paths, complete
// graphs, dipoles, edge-multiplied graphs and disjoint unions.
//
// Every topology is a Constructor closure applied by BuildGraph:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithMultiEdges(), core.WithLoops()},
//		nil,
//		builder.Repeat(2, builder.Cycle(3)), // doubled triangle
//	)
//
// Constructors validate their parameters and return sentinel errors wrapped
// with the method name ("Cycle: n=0 < min=1: builder: parameter too small").
// Option constructors panic on programmer errors such as a nil ID scheme.
// Core mode flags are honored, never silently degraded: Cycle(2) on a
// graph without WithMultiEdges fails with core.ErrMultiEdgeNotAllowed.
package builder
