// SPDX-License-Identifier: MIT

package satsolver

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/evencycle/cnf"
)

// Solver names accepted by New.
const (
	NameGini      = "gini"
	NameGophersat = "gophersat"
	NameExternal  = "external"
)

var (
	// ErrUnknownSolver is returned by New for an unsupported name.
	ErrUnknownSolver = errors.New("satsolver: unknown solver")

	// ErrNoPath is returned by New when the external solver has no binary.
	ErrNoPath = errors.New("satsolver: external solver needs a path")

	// ErrIndeterminate is returned when a solver gives up without an answer.
	ErrIndeterminate = errors.New("satsolver: solver returned no answer")

	// ErrBadOutput is returned when an external solver prints an
	// unreadable result.
	ErrBadOutput = errors.New("satsolver: malformed solver output")

	// ErrFormulaNil is returned for a nil formula.
	ErrFormulaNil = errors.New("satsolver: formula is nil")
)

// Outcome is the answer of one Solve call. Model is set only when
// Satisfiable is true and has one entry per variable of the formula.
type Outcome struct {
	Satisfiable bool
	Model       []bool
}

// Solver decides satisfiability of CNF formulas. Implementations must not
// modify the formula.
type Solver interface {
	Name() string
	Solve(ctx context.Context, f *cnf.Formula) (Outcome, error)
}

// Satisfiable is a shorthand that discards the model.
func Satisfiable(ctx context.Context, s Solver, f *cnf.Formula) (bool, error) {
	out, err := s.Solve(ctx, f)
	if err != nil {
		return false, err
	}

	return out.Satisfiable, nil
}

// New returns the solver registered under name. path is the binary for
// NameExternal and ignored otherwise.
func New(name, path string, args ...string) (Solver, error) {
	switch name {
	case NameGini, "":
		return NewGini(), nil
	case NameGophersat:
		return NewGophersat(), nil
	case NameExternal:
		if path == "" {
			return nil, ErrNoPath
		}
		return NewExternal(path, args...), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSolver)
	}
}

// trivial answers formulas that need no solver: nil, empty and those with
// an empty clause. ok is false when the formula must go to a solver.
func trivial(ctx context.Context, f *cnf.Formula) (out Outcome, ok bool, err error) {
	if f == nil {
		return Outcome{}, true, ErrFormulaNil
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, true, err
	}
	if f.HasEmptyClause() {
		return Outcome{}, true, nil
	}
	if len(f.Clauses) == 0 {
		return Outcome{Satisfiable: true, Model: make([]bool, f.NumVars)}, true, nil
	}

	return Outcome{}, false, nil
}
