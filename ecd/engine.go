// SPDX-License-Identifier: MIT

package ecd

import (
	"context"
	"log/slog"
	"math"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/evencycle/linegraph"
)

const (
	uncolored = -1

	// checkMask spaces context checks: one every 4096 steps.
	checkMask = 1<<12 - 1
)

type frameKind uint8

const (
	frameOpen frameKind = iota // start a cycle at edge
	frameWalk                  // edge was just colored; extend or close
)

// frame is one decision on the search stack. cursor is -1 until the frame
// has been entered once; afterwards it indexes the next alternative.
type frame struct {
	kind   frameKind
	edge   int
	color  int
	size   int
	cursor int
}

type verdict uint8

const (
	verdictConflict verdict = iota
	verdictClosed
	verdictOpen
)

// engine is the state of one search. It is created per Solve call and
// fully unwound before it is discarded.
type engine struct {
	ctx      context.Context
	logger   *slog.Logger
	ix       *linegraph.Index
	distinct [][]int
	selector Selector

	color   []int
	pending *treeset.Set
	stack   []frame

	best      int
	bestColor []int
	floor     int
	steps     uint64
}

func newEngine(ctx context.Context, ix *linegraph.Index, sel Selector, floor int, logger *slog.Logger) *engine {
	n := ix.Len()
	e := &engine{
		ctx:      ctx,
		logger:   logger,
		ix:       ix,
		distinct: make([][]int, n),
		selector: sel,
		color:    make([]int, n),
		pending:  treeset.NewWithIntComparator(),
		stack:    make([]frame, 0, 2*n+1),
		best:     math.MaxInt,
		floor:    floor,
	}
	for i := 0; i < n; i++ {
		e.color[i] = uncolored
		e.distinct[i] = ix.Distinct(i)
		e.pending.Add(i)
	}

	return e
}

// Pending implements Candidates.
func (e *engine) Pending() []int {
	out := make([]int, 0, e.pending.Size())
	for _, v := range e.pending.Values() {
		out = append(out, v.(int))
	}

	return out
}

// First implements Candidates.
func (e *engine) First() int {
	it := e.pending.Iterator()
	it.First()

	return it.Value().(int)
}

// ColoredNeighbors implements Candidates.
func (e *engine) ColoredNeighbors(edge int) int {
	n := 0
	for _, nb := range e.ix.Adj[edge] {
		if e.color[nb] != uncolored {
			n++
		}
	}

	return n
}

// run drives the stack until it empties, the lower bound is met or the
// context ends. It returns the context error in the last case.
func (e *engine) run() error {
	if err := e.ctx.Err(); err != nil {
		return err
	}
	e.pushOpen(0)
	for len(e.stack) > 0 {
		e.steps++
		if e.steps&checkMask == 0 {
			if err := e.ctx.Err(); err != nil {
				e.unwind()
				return err
			}
		}
		top := &e.stack[len(e.stack)-1]
		if top.kind == frameOpen {
			e.stepOpen(top)
		} else {
			e.stepWalk(top)
		}
		if e.best <= e.floor {
			e.unwind()
			return nil
		}
	}

	return nil
}

// stepOpen advances an open frame. top must not be used after a push.
func (e *engine) stepOpen(top *frame) {
	if top.cursor < 0 {
		if e.pending.Empty() {
			e.record(top.size)
			e.pop()
			return
		}
		if top.size >= e.best {
			e.pop()
			return
		}
		top.edge = e.selector.Select(e)
		top.cursor = 0
		return
	}
	class := top.cursor
	top.cursor++
	switch {
	case class < top.size:
		e.pushWalk(top.edge, 2*class, top.size)
	case class == top.size && top.size+1 < e.best:
		e.pushWalk(top.edge, 2*class, top.size+1)
	default:
		e.pop()
	}
}

// stepWalk advances a walk frame. top must not be used after a push.
func (e *engine) stepWalk(top *frame) {
	nbrs := e.distinct[top.edge]
	if top.cursor < 0 {
		switch e.inspect(top.edge, top.color) {
		case verdictConflict:
			e.pop()
		case verdictClosed:
			top.cursor = len(nbrs)
			e.pushOpen(top.size)
		default:
			top.cursor = 0
		}
		return
	}
	for top.cursor < len(nbrs) {
		nb := nbrs[top.cursor]
		top.cursor++
		if e.color[nb] == uncolored {
			e.pushWalk(nb, top.color^1, top.size)
			return
		}
	}
	e.pop()
}

// inspect classifies the line-graph neighborhood of a freshly colored edge.
func (e *engine) inspect(edge, col int) verdict {
	opposite := col ^ 1
	closing := 0
	for _, nb := range e.ix.Adj[edge] {
		switch e.color[nb] {
		case uncolored:
		case col:
			return verdictConflict
		case opposite:
			closing++
			if closing > 2 {
				return verdictConflict
			}
		}
	}
	if closing == 2 {
		return verdictClosed
	}

	return verdictOpen
}

func (e *engine) pushOpen(size int) {
	e.stack = append(e.stack, frame{kind: frameOpen, size: size, cursor: -1})
}

func (e *engine) pushWalk(edge, col, size int) {
	e.color[edge] = col
	e.pending.Remove(edge)
	e.stack = append(e.stack, frame{kind: frameWalk, edge: edge, color: col, size: size, cursor: -1})
}

func (e *engine) pop() {
	f := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if f.kind == frameWalk {
		e.color[f.edge] = uncolored
		e.pending.Add(f.edge)
	}
}

func (e *engine) unwind() {
	for len(e.stack) > 0 {
		e.pop()
	}
}

func (e *engine) record(size int) {
	if size >= e.best {
		return
	}
	e.best = size
	e.bestColor = append(e.bestColor[:0], e.color...)
	e.logger.Debug("ecd: improved decomposition", slog.Int("size", size), slog.Uint64("steps", e.steps))
}
