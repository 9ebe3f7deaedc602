// SPDX-License-Identifier: MIT
// Package: evencycle/builder
//
// config.go: internal configuration and deterministic defaults.

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// shifted returns a copy of cfg whose IDs are prefixed, so a constructor can
// be replayed without touching vertices of an earlier run.
func (c builderConfig) shifted(prefix string) builderConfig {
	inner := c.idFn
	c.idFn = func(i int) string { return prefix + inner(i) }

	return c
}
