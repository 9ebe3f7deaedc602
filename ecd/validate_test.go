// SPDX-License-Identifier: MIT

package ecd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evencycle/builder"
	"github.com/katalvlaran/evencycle/core"
	"github.com/katalvlaran/evencycle/ecd"
)

func addEdges(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddEdgeWithID(id, "1", "2"))
	}
}

// TestValidate_Sequence grows a dipole and its candidate decomposition step
// by step, checking the verdict after each change.
func TestValidate_Sequence(t *testing.T) {
	g := core.NewMultigraph()
	addEdges(t, g, "e1", "a")
	s0 := core.NewMultigraph()
	addEdges(t, s0, "e1", "b")
	subs := []*core.Graph{s0}
	assert.NoError(t, ecd.Validate(g, subs))

	addEdges(t, g, "c", "d")
	s1 := core.NewMultigraph()
	addEdges(t, s1, "e1", "f")
	subs = append(subs, s1)
	assert.ErrorIs(t, ecd.Validate(g, subs), ecd.ErrEdgeReused)

	require.NoError(t, s1.RemoveEdge("e1"))
	addEdges(t, s1, "h")
	assert.True(t, ecd.IsValidDecomposition(g, subs))

	addEdges(t, g, "e2", "e3")
	assert.ErrorIs(t, ecd.Validate(g, subs), ecd.ErrNotIsomorphic)

	addEdges(t, s1, "e2", "e3")
	assert.ErrorIs(t, ecd.Validate(g, subs), ecd.ErrNotRegular)

	require.NoError(t, s1.RemoveEdge("e2"))
	require.NoError(t, s1.RemoveEdge("e3"))
	s2 := core.NewMultigraph()
	addEdges(t, s2, "e2", "e3")
	subs = append(subs, s2)
	assert.NoError(t, ecd.Validate(g, subs))

	require.NoError(t, g.RemoveEdge("e2"))
	require.NoError(t, g.RemoveEdge("e3"))
	assert.ErrorIs(t, ecd.Validate(g, subs), ecd.ErrNotIsomorphic)
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		g    builder.Constructor
		sub  builder.Constructor
		want error
	}{
		{"C2 vs C4", builder.Cycle(2), builder.Cycle(4), ecd.ErrNotIsomorphic},
		{"C3", builder.Cycle(3), builder.Cycle(3), ecd.ErrOddComponent},
		{"C1", builder.Cycle(1), builder.Cycle(1), ecd.ErrOddComponent},
		{"P3", builder.Path(3), builder.Path(3), ecd.ErrNotRegular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustBuild(t, tc.g)
			sub := mustBuild(t, tc.sub)
			err := ecd.Validate(g, []*core.Graph{sub})
			assert.ErrorIs(t, err, tc.want)
			assert.False(t, ecd.IsValidDecomposition(g, []*core.Graph{sub}))
		})
	}

	g := mustBuild(t, builder.Cycle(4))
	assert.ErrorIs(t, ecd.Validate(g, []*core.Graph{core.NewMultigraph()}), ecd.ErrNotRegular)
	assert.ErrorIs(t, ecd.Validate(g, []*core.Graph{nil}), ecd.ErrNotRegular)
	assert.ErrorIs(t, ecd.Validate(nil, nil), ecd.ErrGraphNil)
}

func TestValidate_IgnoresIsolatedVertices(t *testing.T) {
	g := mustBuild(t, builder.Cycle(4))
	require.NoError(t, g.AddVertex("lonely"))
	assert.NoError(t, ecd.Validate(g, []*core.Graph{mustBuild(t, builder.Cycle(4))}))

	assert.NoError(t, ecd.Validate(core.NewGraph(), nil))
}

func TestValidateContext(t *testing.T) {
	g := mustBuild(t, builder.Dipole(4))
	subs, err := ecd.Materialize(g, map[string]int{"e1": 0, "e2": 1, "e3": 2, "e4": 3})
	require.NoError(t, err)
	assert.NoError(t, ecd.ValidateContext(context.Background(), g, subs))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, ecd.ValidateContext(ctx, g, subs), context.Canceled)
}

func TestMaterialize(t *testing.T) {
	g := mustBuild(t, builder.Dipole(4))
	coloring := map[string]int{"e1": 0, "e2": 1, "e3": 2, "e4": 3}
	subs, err := ecd.Materialize(g, coloring)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, 2, subs[0].EdgeCount())
	assert.True(t, subs[1].HasEdge("0", "1"))
	_, err = subs[1].GetEdge("e4")
	assert.NoError(t, err)
	assert.NoError(t, ecd.Validate(g, subs))
}

func TestMaterialize_Errors(t *testing.T) {
	g := mustBuild(t, builder.Dipole(2))

	_, err := ecd.Materialize(nil, nil)
	assert.ErrorIs(t, err, ecd.ErrGraphNil)

	_, err = ecd.Materialize(g, map[string]int{"e1": 0})
	assert.ErrorIs(t, err, ecd.ErrIncompleteColoring)

	_, err = ecd.Materialize(g, map[string]int{"e1": 0, "e2": 1, "zz": 0})
	assert.ErrorIs(t, err, ecd.ErrUnknownEdge)

	_, err = ecd.Materialize(g, map[string]int{"e1": -1, "e2": 1})
	assert.ErrorIs(t, err, ecd.ErrColorOutOfRange)

	_, err = ecd.Materialize(g, map[string]int{"e1": 2, "e2": 3})
	assert.ErrorIs(t, err, ecd.ErrEmptyClass)
}
