// SPDX-License-Identifier: MIT
// Package: evencycle/builder
//
// impl_named.go: named 4-regular graphs without an even cycle
// decomposition.
//
// Contract:
//   • MacajovaMazak(n), n ≥ 1: vertex 0 plus a chain of n copies of K4 on
//     4i+1..4i+4, joined by edges (4i+1, 4i) and (4i+2, max(4i-1, 0)) and
//     closed with (0, 4n), (0, 4n-1). MacajovaMazak(1) is K5.
//   • Markstrom(): two K5 sharing vertex 4, with 4-2, 4-3, 4-5, 4-6
//     replaced by 2-5 and 3-6; 9 vertices, 18 edges.
//
// Complexity: O(n) for MacajovaMazak, O(1) for Markstrom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/evencycle/core"
)

const methodMacajovaMazak = "MacajovaMazak"

// MacajovaMazak returns a Constructor for the n-th Mačajová–Mazák graph.
func MacajovaMazak(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodMacajovaMazak, n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, 4*n+1, methodMacajovaMazak); err != nil {
			return err
		}
		var pairs [][2]int
		for i := 0; i < n; i++ {
			base := 4*i + 1
			for a := 0; a < 4; a++ {
				for b := a + 1; b < 4; b++ {
					pairs = append(pairs, [2]int{base + a, base + b})
				}
			}
			pairs = append(pairs, [2]int{4*i + 1, 4 * i}, [2]int{4*i + 2, max(4*i-1, 0)})
		}
		pairs = append(pairs, [2]int{0, 4 * n}, [2]int{0, 4*n - 1})

		return Edges(pairs...)(g, cfg)
	}
}

// Markstrom returns a Constructor for Markström's 4-regular graph on 9
// vertices.
func Markstrom() Constructor {
	return Edges(
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4},
		[2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}, [2]int{2, 3},
		[2]int{4, 7}, [2]int{4, 8}, [2]int{5, 6}, [2]int{5, 7},
		[2]int{5, 8}, [2]int{6, 7}, [2]int{6, 8}, [2]int{7, 8},
		[2]int{2, 5}, [2]int{3, 6},
	)
}
