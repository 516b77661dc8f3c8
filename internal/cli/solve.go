package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamwalk/graphio"
	"github.com/katalvlaran/hamwalk/solver"
)

func newSolveCmd() *cobra.Command {
	var (
		configPath string
		flags      = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "solve [files...]",
		Short: "Run heuristics over graph files and print a report",
		Long: `Solve reads every graph in the given .hcp, .yaml, .yml or .json files, runs the
selected heuristics on each, validates the returned paths and prints a report.`,
		Example: `  hamwalk solve alb1000.hcp
  hamwalk solve --heuristic posa,ant --workers 4 --format json batch.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			fs := cmd.Flags()
			if fs.Changed("heuristic") {
				cfg.Heuristics = flags.Heuristics
			}
			if fs.Changed("workers") {
				cfg.Workers = flags.Workers
			}
			if fs.Changed("format") {
				cfg.Format = flags.Format
			}
			if fs.Changed("validate") {
				cfg.Validate = flags.Validate
			}
			if err := cfg.check(); err != nil {
				return err
			}

			return runSolve(cmd, cfg, args)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (heuristics, workers, format, validate)")
	cmd.Flags().StringSliceVar(&flags.Heuristics, "heuristic", flags.Heuristics, "heuristics to run: ldf, posa, ant or all")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "graphs solved concurrently (0 = GOMAXPROCS)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "report format: yaml or json")
	cmd.Flags().BoolVar(&flags.Validate, "validate", flags.Validate, "validate every returned path")

	return cmd
}

func runSolve(cmd *cobra.Command, cfg Config, files []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	solvers, err := cfg.solvers()
	if err != nil {
		return err
	}

	var instances []solver.Instance
	for _, path := range files {
		ins, err := graphio.LoadFile(path)
		if err != nil {
			return err
		}
		logger.Debug("loaded graphs", "file", path, "count", len(ins))
		instances = append(instances, ins...)
	}

	graphs := make([]*solverGraph, len(instances))
	for i, in := range instances {
		g, err := in.Graph()
		if err != nil {
			return err
		}
		graphs[i] = &solverGraph{in: in, g: g}
	}

	var opts []solver.BatchOption
	if cfg.Workers > 0 {
		opts = append(opts, solver.WithWorkers(cfg.Workers))
	}

	report := graphio.Report{}
	for _, s := range solvers {
		report.Heuristics = append(report.Heuristics, s.Name())
		prog := newProgress(logger)
		name := s.Name()
		paths, err := solver.SolveGraphs(ctx, s, instances, append(opts,
			solver.WithOnSolved(func(i int, in solver.Instance, p []int) {
				logger.Debug("solved", "heuristic", name, "graph", in.Name, "length", len(p))
			}))...)
		if err != nil {
			return err
		}

		found := 0
		for i, p := range paths {
			res := graphs[i].result(name, p, cfg.Validate)
			if res.Summary.Hamiltonian {
				found++
			}
			if res.Invalid != "" {
				logger.Warn("invalid path", "heuristic", name, "graph", res.Graph, "err", res.Invalid)
			}
			report.Results = append(report.Results, res)
		}
		prog.done("heuristic finished", "heuristic", name, "graphs", len(paths), "hamiltonian", found)
	}

	if err := graphio.WriteReport(cmd.OutOrStdout(), cfg.Format, report); err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	return nil
}
