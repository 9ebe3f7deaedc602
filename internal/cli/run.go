// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/evencycle/cache"
	"github.com/katalvlaran/evencycle/cnf"
	"github.com/katalvlaran/evencycle/core"
	"github.com/katalvlaran/evencycle/ecd"
	"github.com/katalvlaran/evencycle/ecdsat"
	"github.com/katalvlaran/evencycle/graphio"
	"github.com/katalvlaran/evencycle/internal/config"
	"github.com/katalvlaran/evencycle/linegraph"
	"github.com/katalvlaran/evencycle/satsolver"
)

// ErrNoInput is returned when neither --input nor a file argument is given.
var ErrNoInput = errors.New("no input: pass a file or --input")

type solveFunc func(ctx context.Context, g *core.Graph) (*ecd.Result, error)

// loadGraphs reads the input and applies --linegraph.
func (a *app) loadGraphs(args []string) ([]*core.Graph, error) {
	path := a.input
	if len(args) > 0 {
		path = args[0]
	}
	var (
		graphs []*core.Graph
		err    error
	)
	switch path {
	case "":
		return nil, ErrNoInput
	case "-":
		graphs, err = graphio.Read(bufio.NewReader(os.Stdin), a.cfg.Input.Format)
	default:
		graphs, err = graphio.ReadFile(path, a.cfg.Input.Format)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Info("graphs loaded", slog.Int("count", len(graphs)), slog.String("input", path))
	if !a.cfg.Input.LineGraph {
		return graphs, nil
	}
	for i, g := range graphs {
		lg, _, err := linegraph.LineGraph(g)
		if err != nil {
			return nil, fmt.Errorf("graph %d: %w", i+1, err)
		}
		graphs[i] = lg
	}

	return graphs, nil
}

// encodeOptions translates the SAT clause switches.
func encodeOptions(c config.SATConfig) []ecdsat.EncodeOption {
	var opts []ecdsat.EncodeOption
	if !c.SymmetryBreaking {
		opts = append(opts, ecdsat.WithoutSymmetryBreaking())
	}
	if !c.ExactDegree {
		opts = append(opts, ecdsat.WithoutExactDegree())
	}

	return opts
}

// newSolveFunc returns the configured minimum-ECD algorithm.
func (a *app) newSolveFunc() (solveFunc, error) {
	switch a.cfg.Algorithm {
	case config.AlgorithmBacktracking:
		sel, err := ecd.ParseSelector(a.cfg.Backtracking.Selector)
		if err != nil {
			return nil, err
		}
		d := ecd.New(ecd.WithSelector(sel), ecd.WithLogger(a.logger))
		a.logger.Debug("algorithm ready",
			slog.String("algorithm", config.AlgorithmBacktracking),
			slog.String("selector", d.Selector().Name()))
		return d.Solve, nil
	default:
		s, err := satsolver.New(a.cfg.SAT.Solver, a.cfg.SAT.SolverPath, a.cfg.SAT.SolverArgs...)
		if err != nil {
			return nil, err
		}
		opts := []ecdsat.Option{
			ecdsat.WithLogger(a.logger),
			ecdsat.WithEncodeOptions(encodeOptions(a.cfg.SAT)...),
		}
		if a.cfg.SAT.Simplify {
			opts = append(opts, ecdsat.WithPreprocessor(cnf.Simplifier{}))
		}
		a.logger.Debug("algorithm ready",
			slog.String("algorithm", config.AlgorithmSAT),
			slog.String("solver", s.Name()))
		return ecdsat.NewSearcher(s, opts...).Solve, nil
	}
}

// openCache returns nil when caching is disabled.
func (a *app) openCache() (*cache.Store, error) {
	if a.cfg.Cache.Dir == "" {
		return nil, nil
	}
	cfg := cache.DefaultConfig(a.cfg.Cache.Dir)
	cfg.Logger = a.logger

	return cache.Open(cfg)
}

// runSizes prints the minimum ECD size of every input graph in order.
func (a *app) runSizes(ctx context.Context, out io.Writer, args []string) error {
	graphs, err := a.loadGraphs(args)
	if err != nil {
		return err
	}
	if _, err := a.newSolveFunc(); err != nil {
		return err
	}
	store, err := a.openCache()
	if err != nil {
		return err
	}
	if store != nil {
		defer func() {
			if err := store.CollectGarbage(); err != nil {
				a.logger.Warn("cache gc failed", slog.Any("err", err))
			}
			_ = store.Close()
		}()
	}

	sizes := make([]int, len(graphs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.cfg.Jobs)
	for i, g := range graphs {
		i, g := i, g
		eg.Go(func() error {
			solve, err := a.newSolveFunc()
			if err != nil {
				return err
			}
			n, err := a.size(ctx, store, solve, g)
			if err != nil {
				return fmt.Errorf("graph %d: %w", i+1, err)
			}
			sizes[i] = n
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, n := range sizes {
		fmt.Fprintln(w, n)
	}

	return w.Flush()
}

func (a *app) size(ctx context.Context, store *cache.Store, solve solveFunc, g *core.Graph) (int, error) {
	var key []byte
	if store != nil {
		key = cache.Key(a.cfg.Algorithm, g)
		n, ok, err := store.Get(key)
		if err != nil {
			return 0, err
		}
		if ok {
			a.logger.Debug("cache hit", slog.Int("size", n))
			return n, nil
		}
	}
	res, err := solve(ctx, g)
	if err != nil {
		return 0, err
	}
	if res.Reason != nil {
		a.logger.Debug("no decomposition", slog.String("reason", res.Reason.Error()))
	}
	if store != nil {
		if err := store.Put(key, res.Size); err != nil {
			return 0, err
		}
	}

	return res.Size, nil
}
