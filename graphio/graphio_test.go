// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evencycle/builder"
	"github.com/katalvlaran/evencycle/core"
	"github.com/katalvlaran/evencycle/graphio"
	"github.com/katalvlaran/evencycle/isomorphism"
)

func TestDecodeGraph6_Known(t *testing.T) {
	cases := []struct {
		line     string
		vertices int
		edges    string
	}{
		{"?", 0, "{}"},
		{"@", 1, "{}"},
		{"A_", 2, "{0-1}"},
		{"Bw", 3, "{0-1 0-2 1-2}"},
		{"Ch", 4, "{0-1 1-2 2-3}"},
		{"D~{", 5, "{0-1 0-2 1-2 0-3 1-3 2-3 0-4 1-4 2-4 3-4}"},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			g, err := graphio.DecodeGraph6(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.String())
		})
	}
}

func TestGraph6_RoundTrip(t *testing.T) {
	graphs := []*core.Graph{core.NewGraph()}
	for _, c := range []builder.Constructor{
		builder.Cycle(4), builder.Complete(5), builder.Cycle(70), builder.MacajovaMazak(2), builder.Markstrom(),
	} {
		g, err := builder.BuildGraph(nil, nil, c)
		require.NoError(t, err)
		graphs = append(graphs, g)
	}

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph6(&buf, graphs))
	assert.True(t, strings.HasPrefix(strings.Split(buf.String(), "\n")[3], "~"), "order above 62 uses the wide form")

	back, err := graphio.ReadGraph6(&buf)
	require.NoError(t, err)
	require.Len(t, back, len(graphs))
	for i := range graphs {
		assert.Equal(t, graphs[i].VertexCount(), back[i].VertexCount())
		assert.Equal(t, graphs[i].EdgeCount(), back[i].EdgeCount())
		assert.True(t, isomorphism.AreIsomorphic(graphs[i], back[i]), "graph %d", i)
	}
}

func TestGraph6_Errors(t *testing.T) {
	_, err := graphio.DecodeGraph6(":Fa@x^")
	assert.ErrorIs(t, err, graphio.ErrUnsupported)
	_, err = graphio.DecodeGraph6("&B?")
	assert.ErrorIs(t, err, graphio.ErrUnsupported)
	_, err = graphio.DecodeGraph6("Bw?")
	assert.ErrorIs(t, err, graphio.ErrBadGraph6)
	_, err = graphio.DecodeGraph6("B 1")
	assert.ErrorIs(t, err, graphio.ErrBadGraph6)
	_, err = graphio.DecodeGraph6("~?")
	assert.ErrorIs(t, err, graphio.ErrBadGraph6)
	_, err = graphio.DecodeGraph6("")
	assert.ErrorIs(t, err, graphio.ErrBadGraph6)

	g, err := builder.BuildMultigraph(nil, builder.Dipole(2))
	require.NoError(t, err)
	_, err = graphio.EncodeGraph6(g)
	assert.ErrorIs(t, err, graphio.ErrNotSimple)
}

func TestParseEdgeList(t *testing.T) {
	g, err := graphio.ParseEdgeList("4: 0-1-2-3-0")
	require.NoError(t, err)
	assert.Equal(t, "{0-1 1-2 2-3 3-0}", g.String())

	g, err = graphio.ParseEdgeList("0-1, 0-1")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Multiplicity("0", "1"))

	g, err = graphio.ParseEdgeList("6: 0-0")
	require.NoError(t, err)
	assert.True(t, g.HasLoops())
	assert.Equal(t, 6, g.VertexCount())

	g, err = graphio.ParseEdgeList("0:")
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())

	_, err = graphio.ParseEdgeList("3: 0-3")
	assert.ErrorIs(t, err, graphio.ErrVertexRange)
	_, err = graphio.ParseEdgeList("0-")
	assert.ErrorIs(t, err, graphio.ErrBadEdgeList)
	_, err = graphio.ParseEdgeList("0")
	assert.ErrorIs(t, err, graphio.ErrBadEdgeList)
}

func TestRead_Sniff(t *testing.T) {
	assert.Equal(t, graphio.FormatGraph6, graphio.Sniff([]byte("\n>>graph6<<Bw\n")))
	assert.Equal(t, graphio.FormatGraph6, graphio.Sniff([]byte("# comment\nBw\n")))
	assert.Equal(t, graphio.FormatGraph6, graphio.Sniff([]byte(":Fa@x^\n")))
	assert.Equal(t, graphio.FormatEdges, graphio.Sniff([]byte("0-1-0\n")))
	assert.Equal(t, graphio.FormatEdges, graphio.Sniff(nil))

	graphs, err := graphio.Read(strings.NewReader("# triangle twice\nBw\n\nBw\n"), graphio.FormatAuto)
	require.NoError(t, err)
	assert.Len(t, graphs, 2)

	graphs, err = graphio.Read(strings.NewReader("0-1-0\n4: 0-1-2-3-0\n"), "")
	require.NoError(t, err)
	require.Len(t, graphs, 2)
	assert.Equal(t, 2, graphs[0].EdgeCount())

	_, err = graphio.Read(strings.NewReader("Bw\n"), "sparse6")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	_, err = graphio.Read(strings.NewReader("Bw\n0-1\n"), graphio.FormatGraph6)
	assert.ErrorIs(t, err, graphio.ErrBadGraph6)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphs.txt")
	require.NoError(t, os.WriteFile(path, []byte("0-1-2-3-0\n0-1-0\n"), 0o644))

	graphs, err := graphio.ReadFile(path, graphio.FormatEdges)
	require.NoError(t, err)
	assert.Len(t, graphs, 2)

	_, err = graphio.ReadFile(filepath.Join(t.TempDir(), "missing"), graphio.FormatAuto)
	assert.Error(t, err)
}
