// SPDX-License-Identifier: MIT

package ecdsat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/evencycle/core"
	"github.com/katalvlaran/evencycle/ecd"
	"github.com/katalvlaran/evencycle/satsolver"
)

// Option configures a Searcher.
type Option func(*Searcher)

// WithPreprocessor runs p on every formula before it reaches the solver.
func WithPreprocessor(p satsolver.Preprocessor) Option {
	return func(s *Searcher) { s.pre = p }
}

// WithLogger sets the logger for solver queries. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEncodeOptions passes options to every Encode call.
func WithEncodeOptions(opts ...EncodeOption) Option {
	return func(s *Searcher) { s.encode = append(s.encode, opts...) }
}

// Searcher finds minimum ECDs with a SAT solver. It is safe for concurrent
// use when its solver is.
type Searcher struct {
	solver satsolver.Solver
	pre    satsolver.Preprocessor
	encode []EncodeOption
	logger *slog.Logger
}

// NewSearcher returns a Searcher over solver.
func NewSearcher(solver satsolver.Solver, opts ...Option) *Searcher {
	s := &Searcher{
		solver: solver,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.solver = satsolver.WithPreprocessor(s.solver, s.pre)

	return s
}

// Bounds returns low and high with: no ECD of g has at most low classes,
// and if g has an ECD, it has one with at most high classes. Every class
// holds a cycle of length at least 2, or 4 when g has no parallel edges.
// An edgeless g yields (-1, 0).
func Bounds(g *core.Graph) (low, high int) {
	m := g.EdgeCount()
	if m == 0 {
		return -1, 0
	}
	shortest := 4
	if g.HasParallelEdges() {
		shortest = 2
	}

	return ecd.LowerBound(g) - 1, m / shortest
}

// HasSize reports whether g has an ECD with at most k classes.
func (s *Searcher) HasSize(ctx context.Context, g *core.Graph, k int) (bool, error) {
	_, ok, err := s.query(ctx, g, k)

	return ok, err
}

// MinimumSize returns the minimum ECD size of g, or ecd.NoDecomposition.
func (s *Searcher) MinimumSize(ctx context.Context, g *core.Graph) (int, error) {
	res, err := s.Solve(ctx, g)
	if err != nil {
		return 0, err
	}

	return res.Size, nil
}

// Solve returns a minimum ECD of g and its coloring. The precondition
// check of package ecd runs first, so both algorithms agree on the
// graphs they rule out and on the reason.
func (s *Searcher) Solve(ctx context.Context, g *core.Graph) (*ecd.Result, error) {
	if g == nil {
		return nil, ecd.ErrGraphNil
	}
	if err := ecd.CheckPreconditions(g); err != nil {
		return &ecd.Result{Size: ecd.NoDecomposition, Reason: err}, nil
	}
	if g.EdgeCount() == 0 {
		return &ecd.Result{Size: 0, Coloring: map[string]int{}}, nil
	}

	low, high := Bounds(g)
	if high <= low {
		return &ecd.Result{Size: ecd.NoDecomposition}, nil
	}
	var best map[string]int
	for high-low > 1 {
		mid := low + (high-low)/2
		coloring, ok, err := s.query(ctx, g, mid)
		if err != nil {
			return nil, err
		}
		if ok {
			high, best = mid, coloring
		} else {
			low = mid
		}
	}
	if best == nil {
		coloring, ok, err := s.query(ctx, g, high)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &ecd.Result{Size: ecd.NoDecomposition}, nil
		}
		best = coloring
	}

	return &ecd.Result{Size: high, Coloring: best}, nil
}

func (s *Searcher) query(ctx context.Context, g *core.Graph, k int) (map[string]int, bool, error) {
	f, vm, err := Encode(g, k, s.encode...)
	if err != nil {
		return nil, false, err
	}
	start := time.Now()
	out, err := s.solver.Solve(ctx, f)
	if err != nil {
		return nil, false, fmt.Errorf("ecdsat: k=%d: %w", k, err)
	}
	s.logger.Debug("ecdsat: query",
		slog.Int("k", k),
		slog.Int("vars", f.NumVars),
		slog.Int("clauses", f.Len()),
		slog.Bool("sat", out.Satisfiable),
		slog.String("solver", s.solver.Name()),
		slog.Duration("elapsed", time.Since(start)))
	if !out.Satisfiable {
		return nil, false, nil
	}
	coloring, err := vm.Decode(out.Model)
	if err != nil {
		return nil, false, err
	}

	return coloring, true, nil
}
