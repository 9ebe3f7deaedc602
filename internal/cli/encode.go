// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evencycle/ecdsat"
)

func (a *app) encodeCommand() *cobra.Command {
	var k, index int
	cmd := &cobra.Command{
		Use:   "encode -k K [file]",
		Short: "Write the DIMACS formula for \"at most K classes\"",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs, err := a.loadGraphs(args)
			if err != nil {
				return err
			}
			if index < 1 || index > len(graphs) {
				return fmt.Errorf("--graph %d: input has %d graphs", index, len(graphs))
			}
			g := graphs[index-1]
			f, _, err := ecdsat.Encode(g, k, encodeOptions(a.cfg.SAT)...)
			if err != nil {
				return err
			}
			comment := fmt.Sprintf("ecd k=%d vertices=%d edges=%d", k, g.VertexCount(), g.EdgeCount())

			return f.WriteDIMACS(cmd.OutOrStdout(), comment)
		},
	}
	cmd.Flags().IntVarP(&k, "classes", "k", 0, "class bound K")
	cmd.Flags().IntVar(&index, "graph", 1, "1-based position of the graph in the input")
	_ = cmd.MarkFlagRequired("classes")

	return cmd
}
