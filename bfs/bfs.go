// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evencycle/core"
)

// ErrNeighbors wraps failures while listing neighbors.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// walker owns the state of traversals over one graph. visited survives
// across start vertices so every vertex is dequeued once.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []string
	visited map[string]bool
}

func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &walker{graph: g, opts: o, visited: make(map[string]bool, g.VertexCount())}, nil
}

// Components returns the vertex sets of the connected components of g.
//
// Errors: ErrGraphNil, the context error, ErrNeighbors.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	var out [][]string
	for _, v := range g.Vertices() {
		if w.visited[v] {
			continue
		}
		order, err := w.walk(v)
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}

	return out, nil
}

// walk returns the vertices reachable from start in BFS order.
func (w *walker) walk(start string) ([]string, error) {
	w.queue = append(w.queue[:0], start)
	w.visited[start] = true
	for head := 0; head < len(w.queue); head++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		id := w.queue[head]
		nbrs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range nbrs {
			if w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			w.queue = append(w.queue, nbr)
		}
	}

	return append([]string(nil), w.queue...), nil
}
