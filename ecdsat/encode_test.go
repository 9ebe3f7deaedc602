// SPDX-License-Identifier: MIT

package ecdsat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evencycle/builder"
	"github.com/katalvlaran/evencycle/cnf"
	"github.com/katalvlaran/evencycle/core"
	"github.com/katalvlaran/evencycle/ecd"
	"github.com/katalvlaran/evencycle/ecdsat"
	"github.com/katalvlaran/evencycle/satsolver"
)

func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildMultigraph(nil, cons...)
	require.NoError(t, err)

	return g
}

func TestEncode_ClauseCounts(t *testing.T) {
	g := mustBuild(t, builder.Cycle(4))

	f, vm, err := ecdsat.Encode(g, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, f.NumVars)
	// coverage 4, one slot 4, adjacency 8, partner 16, ordering 4
	assert.Equal(t, 36, f.Len())
	assert.Equal(t, 1, vm.K())
	assert.Equal(t, cnf.Var(1), vm.Var(0, 0))
	assert.Equal(t, cnf.Var(4), vm.Var(1, 1))
	assert.Equal(t, []int{1}, f.Ints()[0])

	f, _, err = ecdsat.Encode(g, 1, ecdsat.WithoutSymmetryBreaking())
	require.NoError(t, err)
	assert.Equal(t, 32, f.Len())
	assert.Equal(t, []int{1, 2}, f.Ints()[0])
}

func TestEncode_ExactDegreeClauses(t *testing.T) {
	// Every endpoint of a 4-dipole edge sees three other edges.
	g := mustBuild(t, builder.Dipole(4))
	full, _, err := ecdsat.Encode(g, 2)
	require.NoError(t, err)
	loose, _, err := ecdsat.Encode(g, 2, ecdsat.WithoutExactDegree())
	require.NoError(t, err)
	// 4 edges, 2 endpoints, 3 pairs, 4 slots
	assert.Equal(t, 4*2*3*4, full.Len()-loose.Len())
}

func TestEncode_Errors(t *testing.T) {
	_, _, err := ecdsat.Encode(nil, 1)
	assert.ErrorIs(t, err, ecd.ErrGraphNil)

	_, _, err = ecdsat.Encode(mustBuild(t, builder.Cycle(4)), -1)
	assert.ErrorIs(t, err, ecdsat.ErrNegativeSize)
}

func TestEncode_LoopIsUnsatisfiable(t *testing.T) {
	g := mustBuild(t, builder.Cycle(4), builder.Loop(0))

	f, vm, err := ecdsat.Encode(g, 2)
	require.NoError(t, err)
	assert.True(t, f.HasEmptyClause())
	assert.Equal(t, 2, vm.K())
	assert.Equal(t, g.EdgeCount()*4, f.NumVars)

	for _, s := range []satsolver.Solver{satsolver.NewGini(), satsolver.NewGophersat()} {
		for k := 0; k <= 3; k++ {
			ok, err := ecdsat.NewSearcher(s).HasSize(context.Background(), g, k)
			require.NoError(t, err, "%s k=%d", s.Name(), k)
			assert.False(t, ok, "%s k=%d", s.Name(), k)
		}
	}
}

func TestEncode_ZeroClasses(t *testing.T) {
	f, _, err := ecdsat.Encode(mustBuild(t, builder.Cycle(4)), 0)
	require.NoError(t, err)
	assert.True(t, f.HasEmptyClause())

	f, _, err = ecdsat.Encode(core.NewGraph(), 0)
	require.NoError(t, err)
	assert.Zero(t, f.Len())
}

// TestEncode_Monotone checks that raising k never loses satisfiability.
func TestEncode_Monotone(t *testing.T) {
	s := ecdsat.NewSearcher(satsolver.NewGini())
	g := mustBuild(t, builder.Repeat(2, builder.Cycle(3)))
	want := []bool{false, false, false, true, true, true}
	for k, exp := range want {
		ok, err := s.HasSize(context.Background(), g, k)
		require.NoError(t, err)
		assert.Equal(t, exp, ok, "k=%d", k)
	}
}

func TestVarMap_Decode(t *testing.T) {
	g := mustBuild(t, builder.Dipole(2))
	_, vm, err := ecdsat.Encode(g, 3, ecdsat.WithoutSymmetryBreaking())
	require.NoError(t, err)

	// Both edges in class 2; decoding renumbers it to class 0.
	model := make([]bool, 12)
	model[vm.Var(0, 5)-1] = true
	model[vm.Var(1, 4)-1] = true
	coloring, err := vm.Decode(model)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"e1": 1, "e2": 0}, coloring)

	_, err = vm.Decode(make([]bool, 12))
	assert.ErrorIs(t, err, ecdsat.ErrModelIncomplete)
}
