// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/evencycle/core"
)

const (
	graph6Header = ">>graph6<<"
	g6Bias       = 63
	g6Wide       = 126
	g6MaxSmall   = 62
	g6MaxMedium  = 258047
)

// DecodeGraph6 parses one graph6 line.
func DecodeGraph6(line string) (*core.Graph, error) {
	line = strings.TrimPrefix(strings.TrimSpace(line), graph6Header)
	if line == "" {
		return nil, errors.Wrap(ErrBadGraph6, "empty line")
	}
	switch line[0] {
	case ':', ';':
		return nil, errors.Wrap(ErrUnsupported, "sparse6")
	case '&':
		return nil, errors.Wrap(ErrUnsupported, "digraph6")
	}
	data := []byte(line)
	for i, b := range data {
		if b < g6Bias || b > g6Wide {
			return nil, errors.Wrapf(ErrBadGraph6, "byte %d out of range", i)
		}
	}

	n, rest, err := decodeOrder(data)
	if err != nil {
		return nil, err
	}
	bits := n * (n - 1) / 2
	if need := (bits + 5) / 6; len(rest) != need {
		return nil, errors.Wrapf(ErrBadGraph6, "order %d needs %d data bytes, got %d", n, need, len(rest))
	}

	g := core.NewGraph()
	for v := 0; v < n; v++ {
		if err := g.AddVertex(strconv.Itoa(v)); err != nil {
			return nil, err
		}
	}
	k := 0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			b := rest[k/6] - g6Bias
			if b&(1<<(5-uint(k%6))) != 0 {
				if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)); err != nil {
					return nil, err
				}
			}
			k++
		}
	}

	return g, nil
}

func decodeOrder(data []byte) (int, []byte, error) {
	word := func(bs []byte) int {
		n := 0
		for _, b := range bs {
			n = n<<6 | int(b-g6Bias)
		}
		return n
	}
	switch {
	case data[0] != g6Wide:
		return int(data[0] - g6Bias), data[1:], nil
	case len(data) >= 4 && data[1] != g6Wide:
		return word(data[1:4]), data[4:], nil
	case len(data) >= 8 && data[1] == g6Wide:
		return word(data[2:8]), data[8:], nil
	default:
		return 0, nil, errors.Wrap(ErrBadGraph6, "truncated order")
	}
}

// EncodeGraph6 renders g as a graph6 line without newline. Vertices are
// numbered in numeric order when every ID is an integer, else lexically.
func EncodeGraph6(g *core.Graph) (string, error) {
	if g.HasLoops() || g.HasParallelEdges() {
		return "", ErrNotSimple
	}
	ids := orderedVertices(g)
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	n := len(ids)

	var out []byte
	switch {
	case n <= g6MaxSmall:
		out = append(out, byte(n+g6Bias))
	case n <= g6MaxMedium:
		out = append(out, g6Wide)
		out = appendWord(out, n, 3)
	default:
		out = append(out, g6Wide, g6Wide)
		out = appendWord(out, n, 6)
	}

	bits := make([]byte, (n*(n-1)/2+5)/6)
	for _, e := range g.Edges() {
		i, j := pos[e.From], pos[e.To]
		if i > j {
			i, j = j, i
		}
		k := j*(j-1)/2 + i
		bits[k/6] |= 1 << (5 - uint(k%6))
	}
	for _, b := range bits {
		out = append(out, b+g6Bias)
	}

	return string(out), nil
}

func appendWord(out []byte, n, width int) []byte {
	for s := width - 1; s >= 0; s-- {
		out = append(out, byte((n>>(6*uint(s)))&0x3f)+g6Bias)
	}

	return out
}

func orderedVertices(g *core.Graph) []string {
	ids := g.Vertices()
	nums := make(map[string]int, len(ids))
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			return ids
		}
		nums[id] = n
	}
	sort.Slice(ids, func(a, b int) bool { return nums[ids[a]] < nums[ids[b]] })

	return ids
}

// ReadGraph6 reads one graph per non-empty line.
func ReadGraph6(r io.Reader) ([]*core.Graph, error) {
	var out []*core.Graph
	err := eachLine(r, func(lineNo int, line string) error {
		g, err := DecodeGraph6(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		out = append(out, g)
		return nil
	})

	return out, err
}

// WriteGraph6 writes one graph6 line per graph.
func WriteGraph6(w io.Writer, graphs []*core.Graph) error {
	bw := bufio.NewWriter(w)
	for i, g := range graphs {
		line, err := EncodeGraph6(g)
		if err != nil {
			return errors.Wrapf(err, "graph %d", i)
		}
		bw.WriteString(line)
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "graphio: write graph6")
}

// eachLine calls fn for every line that is neither blank nor a '#'
// comment. Line numbers start at 1.
func eachLine(r io.Reader, fn func(lineNo int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}

	return errors.Wrap(sc.Err(), "graphio: read")
}
