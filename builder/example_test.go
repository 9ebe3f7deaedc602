// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/evencycle/builder"
)

// ExampleRepeat builds the doubled triangle.
func ExampleRepeat() {
	g, err := builder.BuildMultigraph(nil, builder.Repeat(2, builder.Cycle(3)))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount(), g.MaxDegree())
	// Output:
	// 3 6 4
}
