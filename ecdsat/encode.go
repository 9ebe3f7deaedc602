// SPDX-License-Identifier: MIT

package ecdsat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/evencycle/cnf"
	"github.com/katalvlaran/evencycle/core"
	"github.com/katalvlaran/evencycle/ecd"
	"github.com/katalvlaran/evencycle/linegraph"
)

var (
	// ErrNegativeSize is returned for k < 0.
	ErrNegativeSize = errors.New("ecdsat: negative decomposition size")

	// ErrModelIncomplete is returned when a model leaves an edge without a
	// slot.
	ErrModelIncomplete = errors.New("ecdsat: model assigns no slot to an edge")
)

// EncodeOption tunes the clause set.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	symmetry   bool
	exactMatch bool
}

// WithoutSymmetryBreaking drops the class-ordering clauses.
func WithoutSymmetryBreaking() EncodeOption {
	return func(c *encodeConfig) { c.symmetry = false }
}

// WithoutExactDegree drops the ternary at-most-one-partner clauses. They
// are implied by the adjacency clauses and only help propagation.
func WithoutExactDegree() EncodeOption {
	return func(c *encodeConfig) { c.exactMatch = false }
}

// VarMap translates between edges and slot variables of one encoding.
type VarMap struct {
	k     int
	edges []*core.Edge
}

// K returns the class bound of the encoding.
func (m *VarMap) K() int { return m.k }

// Var returns the variable of edge index e in slot c.
func (m *VarMap) Var(e, c int) cnf.Var {
	return cnf.Var(e*2*m.k + c + 1)
}

// Decode reads a coloring from model. Class numbers are compacted so that
// the classes in use are 0..n-1 in their original order.
func (m *VarMap) Decode(model []bool) (map[string]int, error) {
	slots := make([]int, len(m.edges))
	used := map[int]bool{}
	for e, edge := range m.edges {
		slots[e] = -1
		for c := 0; c < 2*m.k; c++ {
			if cnf.Pos(m.Var(e, c)).Eval(model) {
				slots[e] = c
				break
			}
		}
		if slots[e] < 0 {
			return nil, fmt.Errorf("edge %s: %w", edge.ID, ErrModelIncomplete)
		}
		used[slots[e]/2] = true
	}
	classes := make([]int, 0, len(used))
	for c := range used {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	rank := make(map[int]int, len(classes))
	for i, c := range classes {
		rank[c] = i
	}
	coloring := make(map[string]int, len(m.edges))
	for e, edge := range m.edges {
		coloring[edge.ID] = 2*rank[slots[e]/2] + slots[e]&1
	}

	return coloring, nil
}

// Encode builds the CNF stating that g has an ECD with at most k classes.
// Edges are numbered in g's edge order. No cycle of a decomposition can
// use a loop, so a graph with one encodes to a single empty clause.
func Encode(g *core.Graph, k int, opts ...EncodeOption) (*cnf.Formula, *VarMap, error) {
	if g == nil {
		return nil, nil, ecd.ErrGraphNil
	}
	if k < 0 {
		return nil, nil, fmt.Errorf("k=%d: %w", k, ErrNegativeSize)
	}
	if g.HasLoops() {
		f := cnf.New(g.EdgeCount() * 2 * k)
		f.Add()

		return f, &VarMap{k: k, edges: g.Edges()}, nil
	}
	cfg := encodeConfig{symmetry: true, exactMatch: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	ix, err := linegraph.NewIndex(g)
	if err != nil {
		return nil, nil, fmt.Errorf("ecdsat: %w", err)
	}

	vm := &VarMap{k: k, edges: ix.Edges}
	slots := 2 * k
	f := cnf.New(ix.Len() * slots)
	x := func(e, c int) cnf.Var { return vm.Var(e, c) }

	for i, edge := range ix.Edges {
		// Coverage. The first edge is pinned to slot 0.
		switch {
		case i == 0 && cfg.symmetry && k > 0:
			f.Add(cnf.Pos(x(0, 0)))
		case i == 0 && cfg.symmetry:
			f.Add()
		default:
			lits := make([]cnf.Lit, 0, slots)
			for c := 0; c < slots; c++ {
				lits = append(lits, cnf.Pos(x(i, c)))
			}
			f.Add(lits...)
		}

		// At most one slot per edge.
		for c1 := 0; c1 < slots; c1++ {
			for c2 := c1 + 1; c2 < slots; c2++ {
				f.Add(cnf.Neg(x(i, c1)), cnf.Neg(x(i, c2)))
			}
		}

		// Edges sharing a vertex never share a slot.
		for _, j := range ix.Distinct(i) {
			if j <= i {
				continue
			}
			for c := 0; c < slots; c++ {
				f.Add(cnf.Neg(x(i, c)), cnf.Neg(x(j, c)))
			}
		}

		for _, v := range []string{edge.From, edge.To} {
			others := without(ix.Incident[v], i)

			// Some edge at v takes the partner slot.
			for c := 0; c < slots; c++ {
				lits := make([]cnf.Lit, 0, len(others)+1)
				lits = append(lits, cnf.Neg(x(i, c)))
				for _, j := range others {
					lits = append(lits, cnf.Pos(x(j, c^1)))
				}
				f.Add(lits...)
			}

			// No two edges at v take the partner slot.
			if cfg.exactMatch {
				for a := 0; a < len(others); a++ {
					for b := a + 1; b < len(others); b++ {
						for c := 0; c < slots; c++ {
							f.Add(cnf.Neg(x(i, c)), cnf.Neg(x(others[a], c^1)), cnf.Neg(x(others[b], c^1)))
						}
					}
				}
			}
		}

		if !cfg.symmetry {
			continue
		}
		// Class c/2 > 0 needs an earlier edge at the even slot of the
		// previous class.
		for c := 2; c < slots; c++ {
			lits := make([]cnf.Lit, 0, i+1)
			lits = append(lits, cnf.Neg(x(i, c)))
			for j := 0; j < i; j++ {
				lits = append(lits, cnf.Pos(x(j, (c/2-1)*2)))
			}
			f.Add(lits...)
		}
		// An odd slot needs an earlier edge at the even slot of its class.
		for c := 1; c < slots; c += 2 {
			lits := make([]cnf.Lit, 0, i+1)
			lits = append(lits, cnf.Neg(x(i, c)))
			for j := 0; j < i; j++ {
				lits = append(lits, cnf.Pos(x(j, c-1)))
			}
			f.Add(lits...)
		}
	}

	return f, vm, nil
}

func without(list []int, skip int) []int {
	out := make([]int, 0, len(list))
	for _, v := range list {
		if v != skip {
			out = append(out, v)
		}
	}

	return out
}
