// Package cli implements the hamwalk command-line interface.
//
// # Commands
//
//   - solve: run one or more heuristics over HCP or YAML/JSON graph files and
//     print a YAML or JSON report
//   - generate: emit a fixture graph from the builder families
//   - heuristics: list the registered heuristic names
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels in the command context (withLogger / loggerFromContext) and writes
// to the command's error stream, keeping stdout for reports and graphs.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) { version = v }

// NewRootCommand builds the command tree. Reports and graphs go to the
// command's output stream, logs to its error stream.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "hamwalk",
		Short:        "hamwalk searches Hamiltonian paths and cycles heuristically",
		Long:         `hamwalk runs greedy, rotation-based and pheromone-walk heuristics for Hamiltonian paths and cycles over graphs stored as TSPLIB HCP or YAML/JSON documents.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newHeuristicsCmd())

	return root
}

// Execute runs the CLI with os.Args under ctx.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	return root.ExecuteContext(ctx)
}
