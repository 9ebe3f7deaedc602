// SPDX-License-Identifier: MIT

// Package cli implements the ecd command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/evencycle/internal/config"
)

// app is the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	input   string
	cfg     *config.Config
	logger  *slog.Logger
	stderr  io.Writer
}

// flagBindings maps configuration keys to persistent flag names.
var flagBindings = map[string]string{
	"input.format":          "format",
	"input.linegraph":       "linegraph",
	"algorithm":             "algorithm",
	"backtracking.selector": "selector",
	"sat.solver":            "solver",
	"sat.solver_path":       "solver-path",
	"sat.simplify":          "simplify",
	"jobs":                  "jobs",
	"cache.dir":             "cache-dir",
	"logging.level":         "log-level",
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stderr: stderr}

	root := &cobra.Command{
		Use:   "ecd [flags] [file]",
		Short: "Minimum even cycle decompositions of graphs",
		Long: `ecd computes, for every graph in a graph6 or edge-list file, the minimum
number of classes in a decomposition of its edges into even cycles where
cycles of one class are vertex-disjoint. It prints one size per graph in
input order, or -1 when the graph has no such decomposition.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSizes(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	d := config.Default()
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/ecd/config.yaml)")
	pf.StringVarP(&a.input, "input", "i", "", "input file, - for stdin (alternative to the positional argument)")
	pf.String("format", d.Input.Format, "input format: auto, graph6 or edges")
	pf.BoolP("linegraph", "l", d.Input.LineGraph, "decompose the line graph of every input graph")
	pf.StringP("algorithm", "a", d.Algorithm, "algorithm: backtracking or sat")
	pf.String("selector", d.Backtracking.Selector, "backtracking cycle start: first or most-constrained")
	pf.String("solver", d.SAT.Solver, "SAT solver: gini, gophersat or external")
	pf.String("solver-path", d.SAT.SolverPath, "binary of the external SAT solver")
	pf.Bool("simplify", d.SAT.Simplify, "simplify formulas before solving")
	pf.IntP("jobs", "j", d.Jobs, "graphs processed in parallel")
	pf.String("cache-dir", d.Cache.Dir, "directory of the persistent result cache (disabled when empty)")
	pf.String("log-level", d.Logging.Level, "log level: debug, info, warn or error")
	for key, name := range flagBindings {
		_ = a.v.BindPFlag(key, pf.Lookup(name))
	}

	root.AddCommand(a.decomposeCommand(), a.encodeCommand())

	return root
}

// setup resolves and validates the configuration. Errors here are usage
// errors; once it succeeds, failures no longer print usage.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(a.stderr, cfg.Logging.Level)
	cmd.SilenceUsage = true

	return nil
}

// Execute runs the command line and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
