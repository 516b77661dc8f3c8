// File: document.go
// Role: YAML/JSON graph documents and file loading.

package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamwalk/solver"
)

// Document is the on-disk batch of graphs.
type Document struct {
	Graphs []solver.Instance `yaml:"graphs" json:"graphs"`
}

// ReadDocument decodes a {graphs: [...]} document. JSON input is accepted
// since it is valid YAML.
//
// Errors: ErrMalformedDocument for empty input, undecodable content or a
// negative num_nodes.
func ReadDocument(r io.Reader) ([]solver.Instance, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ReadDocument: empty input: %w", ErrMalformedDocument)
		}

		return nil, fmt.Errorf("ReadDocument: %v: %w", err, ErrMalformedDocument)
	}
	for i, in := range doc.Graphs {
		if in.NumNodes < 0 {
			return nil, fmt.Errorf("ReadDocument: graph %d: num_nodes=%d: %w", i, in.NumNodes, ErrMalformedDocument)
		}
	}

	return doc.Graphs, nil
}

// WriteDocument encodes instances as a YAML document.
func WriteDocument(w io.Writer, instances []solver.Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Graphs: instances}); err != nil {
		return fmt.Errorf("WriteDocument: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteDocument: %w", err)
	}

	return nil
}

// LoadFile reads the instances stored at path, choosing the parser by
// extension: .hcp for HCP, .yaml/.yml/.json for documents. Unnamed
// instances are named after the file (with a #index suffix for documents).
//
// Errors: ErrUnsupportedFile, os errors, and the parser errors above.
func LoadFile(path string) ([]solver.Instance, error) {
	ext := strings.ToLower(filepath.Ext(path))
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".hcp":
		in, err := ReadHCP(f)
		if err != nil {
			return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
		}
		if in.Name == "" {
			in.Name = base
		}

		return []solver.Instance{in}, nil
	case ".yaml", ".yml", ".json":
		ins, err := ReadDocument(f)
		if err != nil {
			return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
		}
		for i := range ins {
			if ins[i].Name == "" {
				ins[i].Name = fmt.Sprintf("%s#%d", base, i)
			}
		}

		return ins, nil
	default:
		return nil, fmt.Errorf("LoadFile(%s): %w", path, ErrUnsupportedFile)
	}
}
