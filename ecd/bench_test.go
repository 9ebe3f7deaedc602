// SPDX-License-Identifier: MIT

// Benchmarks for the backtracking decomposer, one per selector, on graphs
// whose search is non-trivial: two 4-regular graphs without an ECD and the
// doubled K4. Graphs are built outside the timer. Besides time, each run
// reports the number of engine steps per solve, read from the
// "ecd: search finished" debug record.
package ecd_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/evencycle/builder"
	"github.com/katalvlaran/evencycle/core"
	"github.com/katalvlaran/evencycle/ecd"
)

// stepCounter is a slog.Handler that keeps the steps attribute of the last
// finished search.
type stepCounter struct {
	steps uint64
}

func (h *stepCounter) Enabled(context.Context, slog.Level) bool { return true }

func (h *stepCounter) Handle(_ context.Context, r slog.Record) error {
	if r.Message != "ecd: search finished" {
		return nil
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "steps" {
			h.steps = a.Value.Uint64()
			return false
		}
		return true
	})

	return nil
}

func (h *stepCounter) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *stepCounter) WithGroup(string) slog.Handler { return h }

type benchGraph struct {
	name  string
	cons  builder.Constructor
	heavy bool
}

var benchGraphs = []benchGraph{
	{"DoubledK4", builder.Repeat(2, builder.Complete(4)), false},
	{"MacajovaMazak2", builder.MacajovaMazak(2), true},
	{"Markstrom", builder.Markstrom(), true},
}

func benchmarkSolve(b *testing.B, sel ecd.Selector) {
	for _, bg := range benchGraphs {
		b.Run(bg.name, func(b *testing.B) {
			if bg.heavy && testing.Short() {
				b.Skip("exhaustive search")
			}
			g, err := builder.BuildMultigraph(nil, bg.cons)
			if err != nil {
				b.Fatal(err)
			}
			runSolve(b, g, sel)
		})
	}
}

func runSolve(b *testing.B, g *core.Graph, sel ecd.Selector) {
	counter := &stepCounter{}
	d := ecd.New(ecd.WithSelector(sel), ecd.WithLogger(slog.New(counter)))
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	var total uint64
	for i := 0; i < b.N; i++ {
		if _, err := d.Solve(ctx, g); err != nil {
			b.Fatal(err)
		}
		total += counter.steps
	}
	b.ReportMetric(float64(total)/float64(b.N), "steps/op")
}

// BenchmarkSolve_FirstPending starts every cycle at the lowest pending edge.
func BenchmarkSolve_FirstPending(b *testing.B) {
	benchmarkSolve(b, ecd.FirstPending{})
}

// BenchmarkSolve_MostConstrained starts every cycle at the pending edge with
// the most colored neighbors.
func BenchmarkSolve_MostConstrained(b *testing.B) {
	benchmarkSolve(b, ecd.MostConstrained{})
}
