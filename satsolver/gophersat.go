// SPDX-License-Identifier: MIT

package satsolver

import (
	"context"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/evencycle/cnf"
)

// Gophersat solves formulas with the gophersat CDCL solver.
type Gophersat struct{}

// NewGophersat returns the gophersat adapter.
func NewGophersat() *Gophersat { return &Gophersat{} }

// Name implements Solver.
func (*Gophersat) Name() string { return NameGophersat }

// Solve implements Solver.
func (*Gophersat) Solve(ctx context.Context, f *cnf.Formula) (Outcome, error) {
	if out, ok, err := trivial(ctx, f); ok {
		return out, err
	}
	pb := solver.ParseSlice(f.Ints())
	s := solver.New(pb)

	switch s.Solve() {
	case solver.Sat:
	case solver.Unsat:
		return Outcome{}, ctx.Err()
	default:
		return Outcome{}, ErrIndeterminate
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	// The model only covers variables that occur in a clause.
	model := make([]bool, f.NumVars)
	copy(model, s.Model())

	return Outcome{Satisfiable: true, Model: model}, nil
}
