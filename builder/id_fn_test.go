// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/evencycle/builder"
)

// TestIDFns verifies each IDFn on valid inputs and its panic on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},
		{"SymbolNumber_v7", builder.SymbolNumberIDFn("v"), 7, "v7", false},
		{"SymbolNumber_neg", builder.SymbolNumberIDFn("v"), -1, "", true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestWithIDScheme_NilPanics checks option validation.
func TestWithIDScheme_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}
