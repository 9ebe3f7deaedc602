// SPDX-License-Identifier: MIT

package satsolver

import (
	"context"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/evencycle/cnf"
)

// Gini solves formulas with a fresh gini instance per call.
type Gini struct{}

// NewGini returns the gini adapter.
func NewGini() *Gini { return &Gini{} }

// Name implements Solver.
func (*Gini) Name() string { return NameGini }

// Solve implements Solver.
func (*Gini) Solve(ctx context.Context, f *cnf.Formula) (Outcome, error) {
	if out, ok, err := trivial(ctx, f); ok {
		return out, err
	}
	g := gini.NewVc(f.NumVars, len(f.Clauses))
	for _, c := range f.Clauses {
		for _, l := range c {
			g.Add(giniLit(l))
		}
		g.Add(z.LitNull)
	}

	switch g.Solve() {
	case 1:
	case -1:
		return Outcome{}, ctx.Err()
	default:
		return Outcome{}, ErrIndeterminate
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	// Variables that occur in no clause stay false.
	model := make([]bool, f.NumVars)
	top := int(g.MaxVar())
	for v := 1; v <= f.NumVars && v <= top; v++ {
		model[v-1] = g.Value(z.Var(v).Pos())
	}

	return Outcome{Satisfiable: true, Model: model}, nil
}

func giniLit(l cnf.Lit) z.Lit {
	if l.IsNeg() {
		return z.Var(l.Var()).Neg()
	}

	return z.Var(l.Var()).Pos()
}
