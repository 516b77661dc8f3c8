package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamwalk/graphio"
	"github.com/katalvlaran/hamwalk/solver"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

const squareHCP = "NAME : square\nDIMENSION : 4\nEDGE_DATA_SECTION\n1 2\n2 3\n3 4\n4 1\n-1\n"

func TestHeuristicsCmd(t *testing.T) {
	out, _, err := run(t, "heuristics")
	require.NoError(t, err)
	assert.Equal(t, "ant\nldf\nposa\n", out)
}

func TestSolveCmd_AllHeuristicsYAML(t *testing.T) {
	dir := t.TempDir()
	hcp := writeFile(t, dir, "square.hcp", squareHCP)

	out, _, err := run(t, "solve", hcp)
	require.NoError(t, err)

	var rep graphio.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []string{"ant", "ldf", "posa"}, rep.Heuristics)
	require.Len(t, rep.Results, 3)
	for _, res := range rep.Results {
		assert.Equal(t, "square", res.Graph)
		assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Path, res.Heuristic)
		assert.True(t, res.Summary.Hamiltonian)
		assert.Empty(t, res.Invalid)
	}
}

func TestSolveCmd_FlagsAndValidation(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "batch.yaml", `graphs:
  - name: star
    num_nodes: 4
    edges: [[0, 1], [0, 2], [0, 3]]
`)

	out, errOut, err := run(t, "solve", "-v", "--heuristic", "ant", "--workers", "1", "--format", "json", doc)
	require.NoError(t, err)
	assert.Contains(t, out, `"heuristic": "ant"`)
	assert.Contains(t, out, `"invalid": "`)
	assert.Contains(t, errOut, "solved")
}

func TestSolveCmd_Config(t *testing.T) {
	dir := t.TempDir()
	hcp := writeFile(t, dir, "square.hcp", squareHCP)
	cfg := writeFile(t, dir, "hamwalk.yaml", "heuristics: [posa]\nformat: json\n")

	out, _, err := run(t, "solve", "--config", cfg, hcp)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"heuristic": "posa"`)
	assert.NotContains(t, out, `"heuristic": "ldf"`)

	out, _, err = run(t, "solve", "--config", cfg, "--format", "yaml", hcp)
	require.NoError(t, err)
	assert.Contains(t, out, "heuristic: posa")
}

func TestSolveCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	hcp := writeFile(t, dir, "square.hcp", squareHCP)

	_, _, err := run(t, "solve", "--heuristic", "genetic", hcp)
	assert.ErrorIs(t, err, solver.ErrUnknownHeuristic)

	_, _, err = run(t, "solve", "--format", "toml", hcp)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = run(t, "solve", filepath.Join(dir, "missing.hcp"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "solve", writeFile(t, dir, "bad.hcp", "DIMENSION : 2\n"))
	assert.ErrorIs(t, err, graphio.ErrMalformedHCP)

	_, _, err = run(t, "solve")
	assert.Error(t, err)
}

func TestGenerateCmd(t *testing.T) {
	out, _, err := run(t, "generate", "cycle", "--n", "5")
	require.NoError(t, err)
	in, err := graphio.ReadHCP(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "cycle", in.Name)
	assert.Equal(t, 5, in.NumNodes)
	assert.Len(t, in.Edges, 5)

	out, _, err = run(t, "generate", "grid", "--rows", "2", "--cols", "3", "--format", "yaml", "--name", "g23")
	require.NoError(t, err)
	ins, err := graphio.ReadDocument(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, ins, 1)
	assert.Equal(t, "g23", ins[0].Name)
	assert.Equal(t, 6, ins[0].NumNodes)
	assert.Len(t, ins[0].Edges, 7)

	_, _, err = run(t, "generate", "hypercube")
	assert.Error(t, err)

	_, _, err = run(t, "generate", "cycle", "--format", "dot")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerateThenSolve(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "generate", "random", "--n", "30", "--p", "0.3", "--seed", "9")
	require.NoError(t, err)
	hcp := writeFile(t, dir, "random.hcp", out)

	out, _, err = run(t, "solve", "--heuristic", "ldf,posa", hcp)
	require.NoError(t, err)

	var rep graphio.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Results, 2)
	for _, res := range rep.Results {
		assert.Empty(t, res.Invalid, res.Heuristic)
	}
}
