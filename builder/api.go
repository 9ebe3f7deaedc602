// SPDX-License-Identifier: MIT
// Package: evencycle/builder
//
// api.go: BuildGraph orchestrator and the Constructor contract.
// Topology factories live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/evencycle/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (loops/multigraph).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Constructor errors are wrapped with "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// BuildMultigraph is BuildGraph on a graph with parallel edges and loops
// enabled.
func BuildMultigraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return BuildGraph([]core.GraphOption{core.WithMultiEdges(), core.WithLoops()}, bopts, cons...)
}

// Apply runs constructors against an existing graph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}
