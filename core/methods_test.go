// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evencycle/core"
)

// TestAddEdge_DefaultsRejectLoopsAndParallel checks the simple-graph defaults.
func TestAddEdge_DefaultsRejectLoopsAndParallel(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("", "B")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestAddEdge_IDsFollowInsertionOrder checks that Edges() is ordered by
// insertion even past nine edges, where lexical order would differ.
func TestAddEdge_IDsFollowInsertionOrder(t *testing.T) {
	g := core.NewMultigraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B")
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e12", edges[11].ID)
}

// TestAddEdgeWithID covers caller-chosen identifiers.
func TestAddEdgeWithID(t *testing.T) {
	g := core.NewMultigraph()
	require.NoError(t, g.AddEdgeWithID("e2", "A", "B"))
	assert.ErrorIs(t, g.AddEdgeWithID("e2", "B", "C"), core.ErrEdgeExists)
	assert.ErrorIs(t, g.AddEdgeWithID("", "B", "C"), core.ErrEmptyEdgeID)

	// Generated IDs skip the taken "e2".
	id1, err := g.AddEdge("B", "C")
	require.NoError(t, err)
	id2, err := g.AddEdge("C", "A")
	require.NoError(t, err)
	assert.NotEqual(t, "e2", id1)
	assert.NotEqual(t, "e2", id2)
	assert.NotEqual(t, id1, id2)

	ids := []string{}
	for _, e := range g.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e2", id1, id2}, ids)
}

// TestDegree_LoopCountsTwice checks degree bookkeeping with loops and parallels.
func TestDegree_LoopCountsTwice(t *testing.T) {
	g := core.NewMultigraph()
	_, _ = g.AddEdge("A", "A")
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "B")
	require.NoError(t, g.AddVertex("C"))

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, d)
	assert.Equal(t, map[string]int{"A": 4, "B": 2, "C": 0}, g.Degrees())
	assert.Equal(t, 4, g.MaxDegree())
	assert.Equal(t, 0, g.MinDegree())
	assert.True(t, g.HasLoops())
	assert.True(t, g.HasParallelEdges())
	assert.Equal(t, 2, g.Multiplicity("B", "A"))
	assert.Equal(t, 1, g.Multiplicity("A", "A"))

	_, err = g.Degree("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestNeighbors lists incident edges once each.
func TestNeighbors(t *testing.T) {
	g := core.NewMultigraph()
	l, _ := g.AddEdge("A", "A")
	p1, _ := g.AddEdge("A", "B")
	p2, _ := g.AddEdge("B", "A")
	c, _ := g.AddEdge("C", "A")

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	ids := make([]string, 0, len(nbs))
	for _, e := range nbs {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{l, p1, p2, c}, ids)

	nids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, nids)
}

// TestRemove covers edge and vertex removal.
func TestRemove(t *testing.T) {
	g := core.NewMultigraph()
	e1, _ := g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	require.NoError(t, g.RemoveEdge(e1))
	assert.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("A", "B"))
	assert.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.RemoveVertex("C"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.ErrorIs(t, g.RemoveVertex("C"), core.ErrVertexNotFound)
}

// TestClone checks independence and ID continuity.
func TestClone(t *testing.T) {
	g := core.NewMultigraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "B")

	cp := g.Clone()
	assert.Equal(t, g.String(), cp.String())
	id, err := cp.AddEdge("B", "C")
	require.NoError(t, err)
	assert.Equal(t, "e3", id)
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, cp.Multigraph())
	assert.True(t, cp.Looped())

	empty := g.CloneEmpty()
	assert.Equal(t, 0, empty.EdgeCount())
	assert.Equal(t, []string{"A", "B"}, empty.Vertices())
}
