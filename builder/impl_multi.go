// SPDX-License-Identifier: MIT
// Package: evencycle/builder
//
// impl_multi.go: multigraph constructors: Dipole, Loop, Edges, Repeat, Copies.
//
// Contract:
//   • Dipole(n): vertices 0,1 joined by n ≥ 1 parallel edges.
//   • Loop(i): one loop at vertex i.
//   • Edges(pairs): explicit edges between vertex indices, in order.
//   • Repeat(times, c): every edge c would emit is emitted times ≥ 1 times,
//     copies of one edge consecutive.
//   • Copies(k, c): k ≥ 1 vertex-disjoint runs of c; run r prefixes every
//     vertex ID with "<r>.".

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/evencycle/core"
)

const (
	methodDipole = "Dipole"
	methodLoop   = "Loop"
	methodEdges  = "Edges"
	methodRepeat = "Repeat"
	methodCopies = "Copies"
	copySep      = "."
)

// Dipole returns a Constructor for two vertices joined by n parallel edges.
func Dipole(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodDipole, n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, 2, methodDipole); err != nil {
			return err
		}
		u, v := cfg.idFn(0), cfg.idFn(1)
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodDipole, u, v, err)
			}
		}

		return nil
	}
}

// Loop returns a Constructor adding a self-loop at vertex index i.
func Loop(i int) Constructor {
	return Edges([2]int{i, i})
}

// Edges returns a Constructor adding one edge per index pair.
func Edges(pairs ...[2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, p := range pairs {
			if p[0] < 0 || p[1] < 0 {
				return fmt.Errorf("%s: pair %v: %w", methodEdges, p, ErrBadVertexIndex)
			}
			u, v := cfg.idFn(p[0]), cfg.idFn(p[1])
			if _, err := g.AddEdge(u, v); err != nil {
				method := methodEdges
				if u == v {
					method = methodLoop
				}
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
			}
		}

		return nil
	}
}

// Repeat returns a Constructor that multiplies every edge of c.
func Repeat(times int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if times < 1 {
			return fmt.Errorf("%s: times=%d < min=1: %w", methodRepeat, times, ErrTooFewVertices)
		}
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodRepeat, ErrConstructFailed)
		}
		scratch := core.NewMultigraph()
		if err := c(scratch, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodRepeat, err)
		}
		for _, v := range scratch.Vertices() {
			if err := g.AddVertex(v); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRepeat, v, err)
			}
		}
		for _, e := range scratch.Edges() {
			for k := 0; k < times; k++ {
				if _, err := g.AddEdge(e.From, e.To); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRepeat, e.From, e.To, err)
				}
			}
		}

		return nil
	}
}

// Copies returns a Constructor for the disjoint union of k copies of c.
func Copies(k int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 1 {
			return fmt.Errorf("%s: k=%d < min=1: %w", methodCopies, k, ErrTooFewVertices)
		}
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodCopies, ErrConstructFailed)
		}
		for r := 0; r < k; r++ {
			if err := c(g, cfg.shifted(strconv.Itoa(r)+copySep)); err != nil {
				return fmt.Errorf("%s: copy %d: %w", methodCopies, r, err)
			}
		}

		return nil
	}
}
