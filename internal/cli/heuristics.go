package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamwalk/solver"
)

func newHeuristicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heuristics",
		Short: "List registered heuristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range solver.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
