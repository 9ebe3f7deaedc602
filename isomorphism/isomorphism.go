// SPDX-License-Identifier: MIT

package isomorphism

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/evencycle/core"
)

// dense is an indexed copy of a graph: mult[i][j] counts edges between
// vertex i and j, mult[i][i] counts loops at i.
type dense struct {
	ids  []string
	mult [][]int
	deg  []int
}

func newDense(g *core.Graph) *dense {
	ids := g.Vertices()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	d := &dense{ids: ids, mult: make([][]int, len(ids)), deg: make([]int, len(ids))}
	for i := range d.mult {
		d.mult[i] = make([]int, len(ids))
	}
	for _, e := range g.Edges() {
		u, v := pos[e.From], pos[e.To]
		if u == v {
			d.mult[u][u]++
			d.deg[u] += 2
			continue
		}
		d.mult[u][v]++
		d.mult[v][u]++
		d.deg[u]++
		d.deg[v]++
	}

	return d
}

// AreIsomorphic reports whether g1 and g2 are isomorphic as multigraphs.
// Two nil graphs are isomorphic; a nil and a non-nil graph are not.
func AreIsomorphic(g1, g2 *core.Graph) bool {
	if g1 == nil || g2 == nil {
		return g1 == g2
	}
	if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
		return false
	}
	a, b := newDense(g1), newDense(g2)
	if !sameDegrees(a.deg, b.deg) {
		return false
	}
	ca, cb, ok := refine(a, b)
	if !ok {
		return false
	}
	m := &matcher{a: a, b: b, ca: ca, cb: cb}

	return m.run()
}

func sameDegrees(x, y []int) bool {
	xs := append([]int(nil), x...)
	ys := append([]int(nil), y...)
	sort.Ints(xs)
	sort.Ints(ys)
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}

	return true
}

// refine colors the vertices of both graphs with one shared palette until
// the partition stops growing. It reports false once the color histograms
// of the two graphs differ.
func refine(a, b *dense) ([]int, []int, bool) {
	ca, cb := make([]int, len(a.ids)), make([]int, len(b.ids))
	palette := map[string]int{}
	paint := func(d *dense, dst []int, sig func(*dense, int) string) {
		for v := range d.ids {
			s := sig(d, v)
			c, ok := palette[s]
			if !ok {
				c = len(palette)
				palette[s] = c
			}
			dst[v] = c
		}
	}
	initial := func(d *dense, v int) string {
		return strconv.Itoa(d.deg[v]) + "/" + strconv.Itoa(d.mult[v][v])
	}
	paint(a, ca, initial)
	paint(b, cb, initial)
	classes := len(palette)
	for {
		if !sameHistogram(ca, cb) {
			return nil, nil, false
		}
		prevA, prevB := ca, cb
		step := func(cur []int) func(*dense, int) string {
			return func(d *dense, v int) string {
				parts := make([]string, 0, len(d.ids))
				for u := range d.ids {
					if u != v && d.mult[v][u] > 0 {
						parts = append(parts, strconv.Itoa(cur[u])+"x"+strconv.Itoa(d.mult[v][u]))
					}
				}
				sort.Strings(parts)
				return strconv.Itoa(cur[v]) + "|" + strings.Join(parts, ",")
			}
		}
		palette = map[string]int{}
		ca, cb = make([]int, len(a.ids)), make([]int, len(b.ids))
		paint(a, ca, step(prevA))
		paint(b, cb, step(prevB))
		if len(palette) == classes {
			return ca, cb, sameHistogram(ca, cb)
		}
		classes = len(palette)
	}
}

func sameHistogram(x, y []int) bool {
	h := map[int]int{}
	for _, c := range x {
		h[c]++
	}
	for _, c := range y {
		h[c]--
	}
	for _, n := range h {
		if n != 0 {
			return false
		}
	}

	return true
}

// matcher extends a partial color-preserving map f: a → b one vertex at
// a time in order.
type matcher struct {
	a, b   *dense
	ca, cb []int
	order  []int
	f      []int
	used   []bool
}

func (m *matcher) run() bool {
	n := len(m.a.ids)
	m.f = make([]int, n)
	m.used = make([]bool, n)
	for i := range m.f {
		m.f[i] = -1
	}
	m.order = m.searchOrder()

	return m.extend(0)
}

// searchOrder visits rare colors first, then stays adjacent to already
// ordered vertices so multiplicity checks prune early.
func (m *matcher) searchOrder() []int {
	n := len(m.a.ids)
	size := map[int]int{}
	for _, c := range m.ca {
		size[c]++
	}
	placed := make([]bool, n)
	order := make([]int, 0, n)
	for len(order) < n {
		best, bestKey := -1, [3]int{}
		for v := 0; v < n; v++ {
			if placed[v] {
				continue
			}
			links := 0
			for _, u := range order {
				if m.a.mult[v][u] > 0 {
					links++
				}
			}
			key := [3]int{-links, size[m.ca[v]], v}
			if best < 0 || lessKey(key, bestKey) {
				best, bestKey = v, key
			}
		}
		placed[best] = true
		order = append(order, best)
	}

	return order
}

func lessKey(x, y [3]int) bool {
	for i := range x {
		if x[i] != y[i] {
			return x[i] < y[i]
		}
	}

	return false
}

func (m *matcher) extend(k int) bool {
	if k == len(m.order) {
		return true
	}
	v := m.order[k]
	for w := range m.b.ids {
		if m.used[w] || m.cb[w] != m.ca[v] || !m.consistent(v, w, k) {
			continue
		}
		m.f[v], m.used[w] = w, true
		if m.extend(k + 1) {
			return true
		}
		m.f[v], m.used[w] = -1, false
	}

	return false
}

func (m *matcher) consistent(v, w, k int) bool {
	if m.a.mult[v][v] != m.b.mult[w][w] {
		return false
	}
	for _, u := range m.order[:k] {
		if m.a.mult[v][u] != m.b.mult[w][m.f[u]] {
			return false
		}
	}

	return true
}
