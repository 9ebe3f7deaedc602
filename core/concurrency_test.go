// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evencycle/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every edge receives a distinct ID.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewMultigraph()
	const num = 200
	ids := make([]string, num)
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			id, err := g.AddEdge("X", fmt.Sprintf("V%d", i%7))
			require.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, num)
	for _, id := range ids {
		require.False(t, seen[id], "duplicate edge ID %s", id)
		seen[id] = true
	}
	require.Equal(t, num, g.EdgeCount())
	require.True(t, g.HasParallelEdges())

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	d, err := g.Degree("X")
	require.NoError(t, err)
	require.Equal(t, num, d)
}
