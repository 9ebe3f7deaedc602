// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evencycle/ecd"
)

func (a *app) decomposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose [file]",
		Short: "Print one minimum decomposition per graph and check it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs, err := a.loadGraphs(args)
			if err != nil {
				return err
			}
			solve, err := a.newSolveFunc()
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for i, g := range graphs {
				res, err := solve(cmd.Context(), g)
				if err != nil {
					return fmt.Errorf("graph %d: %w", i+1, err)
				}
				fmt.Fprintf(w, "graph %d: size %d\n", i+1, res.Size)
				if !res.Found() {
					if res.Reason != nil {
						fmt.Fprintf(w, "  reason: %v\n", res.Reason)
					}
					continue
				}
				subs, err := ecd.Materialize(g, res.Coloring)
				if err != nil {
					return fmt.Errorf("graph %d: %w", i+1, err)
				}
				for c, sub := range subs {
					fmt.Fprintf(w, "  class %d: %s\n", c, sub)
				}
				verr := ecd.ValidateContext(cmd.Context(), g, subs)
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				fmt.Fprintf(w, "  valid: %t\n", verr == nil)
				if verr != nil {
					fmt.Fprintf(w, "  invalid: %v\n", verr)
				}
			}

			return w.Flush()
		},
	}
}
