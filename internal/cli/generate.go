package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamwalk/builder"
	"github.com/katalvlaran/hamwalk/graphio"
	"github.com/katalvlaran/hamwalk/solver"
)

func newGenerateCmd() *cobra.Command {
	var (
		params builder.Params
		seed   int64
		name   string
		format string
	)

	cmd := &cobra.Command{
		Use:       "generate <family>",
		Short:     "Emit a fixture graph",
		Long:      "Generate writes a graph from one of the builder families: " + strings.Join(builder.Families(), ", ") + ".",
		Example:   "  hamwalk generate grid --rows 4 --cols 5\n  hamwalk generate random --n 50 --p 0.1 --seed 7 --format yaml",
		Args:      cobra.ExactArgs(1),
		ValidArgs: builder.Families(),
		RunE: func(cmd *cobra.Command, args []string) error {
			family := args[0]
			cons, err := builder.ByName(family, params)
			if err != nil {
				return err
			}
			top, err := builder.BuildTopology([]builder.BuilderOption{builder.WithSeed(seed)}, cons)
			if err != nil {
				return err
			}
			if name == "" {
				name = family
			}
			in := solver.Instance{Name: name, NumNodes: top.N, Edges: top.Edges}
			loggerFromContext(cmd.Context()).Debug("generated", "family", family, "nodes", in.NumNodes, "edges", len(in.Edges))

			switch format {
			case graphio.FormatHCP:
				return graphio.WriteHCP(cmd.OutOrStdout(), in)
			case graphio.FormatYAML:
				return graphio.WriteDocument(cmd.OutOrStdout(), []solver.Instance{in})
			default:
				return fmt.Errorf("generate: format %q: want hcp or yaml: %w", format, ErrInvalidConfig)
			}
		},
	}

	cmd.Flags().IntVarP(&params.N, "n", "n", 10, "vertex count")
	cmd.Flags().IntVar(&params.Rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&params.Cols, "cols", 3, "grid columns")
	cmd.Flags().IntVar(&params.A, "a", 3, "bipartite left side")
	cmd.Flags().IntVar(&params.B, "b", 3, "bipartite right side")
	cmd.Flags().Float64VarP(&params.P, "p", "p", 0.5, "edge probability (random)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&name, "name", "", "instance name (default: family)")
	cmd.Flags().StringVarP(&format, "format", "f", graphio.FormatHCP, "output format: hcp or yaml")

	return cmd
}
