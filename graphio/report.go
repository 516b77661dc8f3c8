// File: report.go
// Role: Result report model and rendering.

package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamwalk/solver"
)

// Report is the outcome of solving a batch with one or more heuristics.
type Report struct {
	Heuristics []string `yaml:"heuristics" json:"heuristics"`
	Results    []Result `yaml:"results" json:"results"`
}

// Result is one heuristic's answer on one graph.
type Result struct {
	Graph     string         `yaml:"graph" json:"graph"`
	NumNodes  int            `yaml:"num_nodes" json:"num_nodes"`
	Heuristic string         `yaml:"heuristic" json:"heuristic"`
	Path      []int          `yaml:"path,flow" json:"path"`
	Summary   solver.Summary `yaml:"summary" json:"summary"`
	// Invalid carries the ValidatePath error, if validation ran and failed.
	Invalid string `yaml:"invalid,omitempty" json:"invalid,omitempty"`
}

// WriteReport renders r in the given format (FormatYAML or FormatJSON).
//
// Errors: ErrUnknownFormat, encoder and writer errors.
func WriteReport(w io.Writer, format string, r Report) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("WriteReport: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("WriteReport: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("WriteReport: %w", err)
		}
	default:
		return fmt.Errorf("WriteReport: %q: %w", format, ErrUnknownFormat)
	}

	return nil
}
