// SPDX-License-Identifier: MIT

package graphio

import (
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/evencycle/core"
)

// EdgeListExpr is the parse tree of one edge-list line.
type EdgeListExpr struct {
	Order *int       `parser:"( @Int \":\" )?"`
	Runs  []*EdgeRun `parser:"( @@ ( \",\" @@ )* )?"`
}

// EdgeRun is a walk v0-v1-...-vk contributing k edges.
type EdgeRun struct {
	Start int   `parser:"@Int"`
	Next  []int `parser:"( \"-\" @Int )+"`
}

var parseEdgeList = participle.MustBuild[EdgeListExpr](participle.UseLookahead(2))

// ParseEdgeList parses one edge-list line into a multigraph that allows
// loops. Edges are added in reading order.
func ParseEdgeList(line string) (*core.Graph, error) {
	expr, err := parseEdgeList.ParseString("", line)
	if err != nil {
		return nil, errors.Wrapf(ErrBadEdgeList, "%q: %v", line, err)
	}

	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	order := -1
	if expr.Order != nil {
		order = *expr.Order
		for v := 0; v < order; v++ {
			if err := g.AddVertex(strconv.Itoa(v)); err != nil {
				return nil, err
			}
		}
	}
	vertex := func(v int) (string, error) {
		if v < 0 || order >= 0 && v >= order {
			return "", errors.Wrapf(ErrVertexRange, "vertex %d, order %d", v, order)
		}
		return strconv.Itoa(v), nil
	}
	for _, run := range expr.Runs {
		from, err := vertex(run.Start)
		if err != nil {
			return nil, err
		}
		for _, next := range run.Next {
			to, err := vertex(next)
			if err != nil {
				return nil, err
			}
			if _, err := g.AddEdge(from, to); err != nil {
				return nil, err
			}
			from = to
		}
	}

	return g, nil
}

// ReadEdgeLists reads one edge-list graph per line.
func ReadEdgeLists(r io.Reader) ([]*core.Graph, error) {
	var out []*core.Graph
	err := eachLine(r, func(lineNo int, line string) error {
		g, err := ParseEdgeList(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		out = append(out, g)
		return nil
	})

	return out, err
}
