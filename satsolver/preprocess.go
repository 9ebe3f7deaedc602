// SPDX-License-Identifier: MIT

package satsolver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/evencycle/cnf"
)

// Preprocessor rewrites a formula before solving. Implementations keep
// variable numbering and must not modify their input.
type Preprocessor interface {
	Preprocess(f *cnf.Formula) (*cnf.Formula, error)
}

// PreprocessorFunc adapts a function to Preprocessor.
type PreprocessorFunc func(f *cnf.Formula) (*cnf.Formula, error)

// Preprocess implements Preprocessor.
func (fn PreprocessorFunc) Preprocess(f *cnf.Formula) (*cnf.Formula, error) { return fn(f) }

type chain []Preprocessor

// Chain runs preprocessors in order. Nil entries are skipped.
func Chain(pre ...Preprocessor) Preprocessor {
	out := make(chain, 0, len(pre))
	for _, p := range pre {
		if p != nil {
			out = append(out, p)
		}
	}

	return out
}

func (c chain) Preprocess(f *cnf.Formula) (*cnf.Formula, error) {
	cur := f
	for i, p := range c {
		next, err := p.Preprocess(cur)
		if err != nil {
			return nil, fmt.Errorf("satsolver: preprocessor %d: %w", i, err)
		}
		cur = next
	}

	return cur, nil
}

type preprocessed struct {
	Solver
	pre Preprocessor
}

// WithPreprocessor returns a Solver that rewrites every formula with pre
// before handing it to s. The model is widened back to the input's
// variable count.
func WithPreprocessor(s Solver, pre Preprocessor) Solver {
	if pre == nil {
		return s
	}

	return &preprocessed{Solver: s, pre: pre}
}

func (p *preprocessed) Solve(ctx context.Context, f *cnf.Formula) (Outcome, error) {
	if f == nil {
		return Outcome{}, ErrFormulaNil
	}
	g, err := p.pre.Preprocess(f)
	if err != nil {
		return Outcome{}, err
	}
	out, err := p.Solver.Solve(ctx, g)
	if err != nil || !out.Satisfiable {
		return out, err
	}
	if len(out.Model) < f.NumVars {
		model := make([]bool, f.NumVars)
		copy(model, out.Model)
		out.Model = model
	}

	return out, nil
}
