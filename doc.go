// SPDX-License-Identifier: MIT

// Package evencycle decides the even cycle decomposition size of
// undirected multigraphs.
//
// An even cycle decomposition (ECD) of G partitions its edges into
// classes, each class a disjoint union of even cycles. The ECD size is
// the minimum number of classes, or -1 when no decomposition exists.
//
// The module is organized as:
//
//	core/        thread-safe multigraph with stable edge IDs
//	builder/     cycles, dipoles, complete graphs and named fixtures
//	bfs/         breadth-first traversal and connected components
//	linegraph/   line graph transform with an edge index
//	isomorphism/ isomorphism of disjoint unions of cycles
//	ecd/         backtracking engine, validator and preconditions
//	cnf/         CNF formulas, DIMACS codec and simplification
//	satsolver/   gini, gophersat and external DIMACS solvers
//	ecdsat/      ECD to CNF encoding and minimum size search
//	graphio/     graph6 and edge list input
//	cache/       badger-backed result cache
//	cmd/ecd      command line front end
//
// Quick start:
//
//	g, _ := builder.BuildMultigraph(nil, builder.Cycle(4))
//	res, _ := ecd.New().Solve(context.Background(), g)
//	fmt.Println(res.Size) // 1
//
// Install the CLI:
//
//	go install github.com/katalvlaran/evencycle/cmd/ecd@latest
package evencycle
