// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when the graph is nil.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures a traversal.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx cancels the walk.
	Ctx context.Context
}

// DefaultOptions returns a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
