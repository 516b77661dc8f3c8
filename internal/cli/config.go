package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamwalk/graphio"
	"github.com/katalvlaran/hamwalk/solver"
)

// ErrInvalidConfig is returned for config files or flag values that cannot
// be used.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// heuristicAll selects every registered heuristic.
const heuristicAll = "all"

// Config holds the solve settings; a YAML file may provide them and
// explicitly set flags override it.
type Config struct {
	// Heuristics to run, or ["all"].
	Heuristics []string `yaml:"heuristics"`
	// Workers bounds concurrent graphs; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Format of the report: yaml or json.
	Format string `yaml:"format"`
	// Validate checks every path with solver.ValidatePath.
	Validate bool `yaml:"validate"`
}

// DefaultConfig runs every heuristic with GOMAXPROCS workers, YAML output
// and validation on.
func DefaultConfig() Config {
	return Config{
		Heuristics: []string{heuristicAll},
		Format:     graphio.FormatYAML,
		Validate:   true,
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig. Keys absent
// from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %v: %w", path, err, ErrInvalidConfig)
	}

	return cfg, cfg.check()
}

// check rejects unusable settings.
func (c Config) check() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidConfig)
	}
	if c.Format != graphio.FormatYAML && c.Format != graphio.FormatJSON {
		return fmt.Errorf("format %q: want yaml or json: %w", c.Format, ErrInvalidConfig)
	}
	if len(c.Heuristics) == 0 {
		return fmt.Errorf("no heuristics selected: %w", ErrInvalidConfig)
	}

	return nil
}

// solvers resolves the configured names, expanding "all", dropping
// duplicates and keeping first-seen order.
func (c Config) solvers() ([]solver.Solver, error) {
	var names []string
	for _, name := range c.Heuristics {
		if name == heuristicAll {
			names = append(names, solver.Names()...)
			continue
		}
		names = append(names, name)
	}

	var out []solver.Solver
	seen := make([]string, 0, len(names))
	for _, name := range names {
		if slices.Contains(seen, name) {
			continue
		}
		seen = append(seen, name)
		s, err := solver.New(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
