// File: hcp.go
// Role: TSPLIB HCP reader and writer.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hamwalk/solver"
)

const (
	hcpKeyName      = "NAME"
	hcpKeyDimension = "DIMENSION"
	hcpEdgeSection  = "EDGE_DATA_SECTION"
	hcpTerminator   = "-1"
	hcpEOF          = "EOF"
)

// ReadHCP parses one HCP instance from r. Unknown header keys are ignored.
// Ids in the edge section must lie in [1, DIMENSION]; they are shifted to
// 0-indexed vertices.
//
// Errors: ErrMalformedHCP (missing or bad DIMENSION, missing edge section,
// bad pair, id out of range) and read errors from r.
func ReadHCP(r io.Reader) (solver.Instance, error) {
	var (
		in        solver.Instance
		haveDim   bool
		inSection bool
		lineNo    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if inSection {
			if line == hcpTerminator || line == hcpEOF {
				break
			}
			u, v, err := parsePair(line, in.NumNodes)
			if err != nil {
				return solver.Instance{}, fmt.Errorf("ReadHCP: line %d: %w", lineNo, err)
			}
			in.Edges = append(in.Edges, [2]int{u, v})
			continue
		}

		if strings.HasPrefix(line, hcpEdgeSection) {
			if !haveDim {
				return solver.Instance{}, fmt.Errorf("ReadHCP: line %d: %s before %s: %w",
					lineNo, hcpEdgeSection, hcpKeyDimension, ErrMalformedHCP)
			}
			inSection = true
			continue
		}
		if line == hcpEOF {
			break
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case hcpKeyName:
			in.Name = value
		case hcpKeyDimension:
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return solver.Instance{}, fmt.Errorf("ReadHCP: line %d: DIMENSION %q: %w", lineNo, value, ErrMalformedHCP)
			}
			in.NumNodes, haveDim = n, true
		}
	}
	if err := sc.Err(); err != nil {
		return solver.Instance{}, fmt.Errorf("ReadHCP: %w", err)
	}
	if !inSection {
		return solver.Instance{}, fmt.Errorf("ReadHCP: no %s: %w", hcpEdgeSection, ErrMalformedHCP)
	}

	return in, nil
}

// parsePair reads a 1-indexed "u v" line and returns 0-indexed vertices.
func parsePair(line string, n int) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 ids, got %q: %w", line, ErrMalformedHCP)
	}
	var ids [2]int
	for i, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, fmt.Errorf("id %q: %w", f, ErrMalformedHCP)
		}
		if id < 1 || id > n {
			return 0, 0, fmt.Errorf("id %d outside [1,%d]: %w", id, n, ErrMalformedHCP)
		}
		ids[i] = id - 1
	}

	return ids[0], ids[1], nil
}

// WriteHCP renders in as HCP text with 1-indexed ids, terminated by -1 and
// EOF. The NAME line is omitted for an unnamed instance.
func WriteHCP(w io.Writer, in solver.Instance) error {
	bw := bufio.NewWriter(w)
	if in.Name != "" {
		fmt.Fprintf(bw, "%s : %s\n", hcpKeyName, in.Name)
	}
	fmt.Fprintf(bw, "TYPE : HCP\n%s : %d\nEDGE_DATA_FORMAT : EDGE_LIST\n%s\n",
		hcpKeyDimension, in.NumNodes, hcpEdgeSection)
	for _, e := range in.Edges {
		fmt.Fprintf(bw, "%d %d\n", e[0]+1, e[1]+1)
	}
	fmt.Fprintf(bw, "%s\n%s\n", hcpTerminator, hcpEOF)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteHCP: %w", err)
	}

	return nil
}
