// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/internal/cli"
	"github.com/katalvlaran/lvtopo/internal/config"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func file(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvtopo version "+cli.Version+"\n", out)
}

func TestAlpha_Grid(t *testing.T) {
	out, _, err := run(t, "alpha", "--grid", "1x1")
	require.NoError(t, err)
	assert.Contains(t, out, "complex: alpha\n")
	assert.Contains(t, out, "simplices: 11\n")
	assert.Contains(t, out, "dimension 2: 2\n")
	assert.Contains(t, out, "filtration: [0, 0.5]\n")
}

func TestAlpha_OFFWithDumpAndLimit(t *testing.T) {
	off := file(t, "tri.off", "nOFF 2\n3 1 0\n0 0\n2 0\n0 2\n3 0 1 2\n")
	out, _, err := run(t, "alpha", "--off", off, "--dump", "--max-alpha2", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "simplices: 5\n")
	assert.Contains(t, out, "[0 1] 1\n")
	assert.NotContains(t, out, "[1 2]")
}

func TestAlpha_Metrics(t *testing.T) {
	out, _, err := run(t, "alpha", "--grid", "2x2", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "# metrics\n")
	assert.Contains(t, out, `lvtopo_simplices{builder="alpha",dimension="1"} 16`)
	assert.Contains(t, out, `lvtopo_builds_total{builder="alpha",status="ok"} 1`)
}

func TestAlpha_MetricsText(t *testing.T) {
	out, _, err := run(t, "alpha", "--grid", "2x2", "--metrics", "--metrics-format", "text")
	require.NoError(t, err)
	assert.NotContains(t, out, "# metrics\n")
	assert.Contains(t, out, "# TYPE lvtopo_builds_total counter\n")
	assert.Contains(t, out, `lvtopo_simplices{builder="alpha",dimension="1"} 16`)

	_, _, err = run(t, "alpha", "--grid", "2x2", "--metrics-format", "yaml")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestAlpha_UsageErrors(t *testing.T) {
	_, _, err := run(t, "alpha")
	assert.ErrorIs(t, err, cli.ErrUsage)
	_, _, err = run(t, "alpha", "--grid", "2x2", "--off", "x.off")
	assert.ErrorIs(t, err, cli.ErrUsage)
	_, _, err = run(t, "alpha", "--grid", "2xq")
	assert.ErrorIs(t, err, cli.ErrUsage)
	_, _, err = run(t, "alpha", "--grid", "2", "--max-alpha2=-1")
	assert.ErrorContains(t, err, "alpha.max_alpha_square")
}

func TestWitness_Sample(t *testing.T) {
	out, _, err := run(t, "witness", "--sample", "circle:60", "--landmarks", "8", "--max-dim", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "complex: witness\n")
	assert.Contains(t, out, "dimension 0: 8\n")
	assert.Contains(t, out, "dimension 1: ")
	assert.NotContains(t, out, "dimension 2:")
}

func TestWitness_BadSample(t *testing.T) {
	_, _, err := run(t, "witness", "--sample", "torus:10")
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestCollapse_EdgeList(t *testing.T) {
	edges := file(t, "g.txt", "0 1\n1 2\n2 0\n2 3\n")
	out, _, err := run(t, "collapse", "--edges", edges, "--dump", "--expand", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "vertices: 4 -> 1\n")
	assert.Contains(t, out, "edges: 4 -> 0\n")
	assert.Contains(t, out, "3 -> ")
	assert.Contains(t, out, "complex: flag\n")
	assert.Contains(t, out, "simplices: 1\n")
}

func TestCollapse_OFFSquareKeepsHole(t *testing.T) {
	off := file(t, "sq.off", "nOFF 2\n4 0 0\n0 0\n1 0\n1 1\n0 1\n")
	out, _, err := run(t, "collapse", "--off", off, "--threshold", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "vertices: 4 -> 4\n")
	assert.Contains(t, out, "edges: 4 -> 4\n")
}

func TestSimplify_Edges(t *testing.T) {
	edges := file(t, "sq.txt", "0 1 1\n1 2 1\n2 3 1\n3 0 1\n")
	out, _, err := run(t, "simplify", "--edges", edges)
	require.NoError(t, err)
	assert.Contains(t, out, "contractions: 1\n")
	assert.Contains(t, out, "simplices: 6\n")
}

func TestConfigFileAndJSONLogs(t *testing.T) {
	cfg := file(t, "lvtopo.yaml", "log:\n  level: debug\n  format: json\ndump: true\n")
	out, errOut, err := run(t, "--config", cfg, "alpha", "--grid", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "[0] 0\n", "dump enabled by config")

	lines := strings.Split(strings.TrimSpace(errOut), "\n")
	require.NotEmpty(t, lines)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.NotEmpty(t, rec["run_id"])
	assert.Equal(t, "alpha", rec["command"])
}

func TestConfigErrors(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "version")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, _, err = run(t, "--log-level", "loud", "version")
	assert.ErrorContains(t, err, "log.level")
}
