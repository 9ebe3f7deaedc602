// SPDX-License-Identifier: MIT

package ecd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/evencycle/core"
	"github.com/katalvlaran/evencycle/linegraph"
)

// Option configures a Decomposer.
type Option func(*Decomposer)

// WithSelector sets the cycle-start strategy. A nil selector is ignored.
func WithSelector(s Selector) Option {
	return func(d *Decomposer) {
		if s != nil {
			d.selector = s
		}
	}
}

// WithLogger sets the logger for search progress. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decomposer) {
		if l != nil {
			d.logger = l
		}
	}
}

// Decomposer finds minimum ECDs by backtracking. It holds configuration
// only; concurrent Solve calls are safe.
type Decomposer struct {
	selector Selector
	logger   *slog.Logger
}

// New returns a Decomposer using MostConstrained and a discarding logger.
func New(opts ...Option) *Decomposer {
	d := &Decomposer{
		selector: MostConstrained{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Selector returns the configured strategy.
func (d *Decomposer) Selector() Selector { return d.selector }

// Solve computes a minimum ECD of g. The graph is not modified.
//
// Infeasible graphs yield a Result with Size NoDecomposition and a nil
// error. Errors: ErrGraphNil, and ctx.Err() when the search is cancelled.
func (d *Decomposer) Solve(ctx context.Context, g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := CheckPreconditions(g); err != nil {
		d.logger.Debug("ecd: precondition failed", slog.String("reason", err.Error()))
		return infeasible(err), nil
	}
	if g.EdgeCount() == 0 {
		return &Result{Size: 0, Coloring: map[string]int{}}, nil
	}
	ix, err := linegraph.NewIndex(g)
	if err != nil {
		return nil, fmt.Errorf("ecd: %w", err)
	}

	start := time.Now()
	eng := newEngine(ctx, ix, d.selector, LowerBound(g), d.logger)
	if err := eng.run(); err != nil {
		return nil, fmt.Errorf("ecd: search interrupted after %d steps: %w", eng.steps, err)
	}
	d.logger.Debug("ecd: search finished",
		slog.Int("edges", ix.Len()),
		slog.String("selector", d.selector.Name()),
		slog.Uint64("steps", eng.steps),
		slog.Duration("elapsed", time.Since(start)))
	if eng.bestColor == nil {
		return infeasible(nil), nil
	}
	coloring := make(map[string]int, ix.Len())
	for i, e := range ix.Edges {
		coloring[e.ID] = eng.bestColor[i]
	}

	return &Result{Size: eng.best, Coloring: coloring}, nil
}

// Size is a convenience wrapper returning only the minimum size.
func Size(ctx context.Context, g *core.Graph) (int, error) {
	res, err := New().Solve(ctx, g)
	if err != nil {
		return 0, err
	}

	return res.Size, nil
}

// IsPreconditionFailure reports whether err comes from CheckPreconditions.
func IsPreconditionFailure(err error) bool {
	return errors.Is(err, ErrLoop) || errors.Is(err, ErrOddDegree) || errors.Is(err, ErrOddEdgeCount)
}
