// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kmapper/nerve"
)

const triangleDoc = `
a: [1, 2, 3]
b: [1, 2]
c: [1, 2, 3]
lonely: [9]
`

// run executes the CLI with stdin and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// TestNerveCmd_YAML prints the simplex list read from stdin.
func TestNerveCmd_YAML(t *testing.T) {
	out, _, err := run(t, triangleDoc, "nerve")
	require.NoError(t, err)

	var doc struct {
		Nodes     map[string][]int `yaml:"nodes"`
		Simplices [][][]string     `yaml:"simplices"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{9}, doc.Nodes["lonely"])
	require.Len(t, doc.Simplices, 3)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, doc.Simplices[2])
}

// TestNerveCmd_FlagsAndFile reads a file, caps the dimension and emits JSON.
func TestNerveCmd_FlagsAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusters.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": [1, 2, 3], "b": [1, 2], "c": [1, 2, 3]}`), 0o600))

	out, stderr, err := run(t, "", "nerve", "-i", path, "--max-dim", "1", "--min-intersection", "3", "-o", "json", "-v")
	require.NoError(t, err)

	var doc struct {
		Simplices [][][]string `json:"simplices"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, [][][]string{{{"a"}, {"b"}, {"c"}}, {{"a", "c"}}}, doc.Simplices)
	assert.Contains(t, stderr, "nerve computed")
}

// TestGraphCmd_Report prints nodes, weighted edges and components.
func TestGraphCmd_Report(t *testing.T) {
	out, _, err := run(t, triangleDoc, "graph", "--weighted", "-o", "json")
	require.NoError(t, err)

	var report graphReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "GraphNerve(min_intersection=1)", report.Engine)
	assert.Len(t, report.Nodes, 4)
	assert.Equal(t, []graphEdge{
		{From: "a", To: "b", Weight: 2},
		{From: "a", To: "c", Weight: 3},
		{From: "b", To: "c", Weight: 2},
	}, report.Edges)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"lonely"}}, report.Components)
}

// TestHypergraphCmd_Reduces prints the maximal simplices only.
func TestHypergraphCmd_Reduces(t *testing.T) {
	out, _, err := run(t, triangleDoc, "hypergraph")
	require.NoError(t, err)

	var report hypergraphReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "SimplicialNerve(min_intersection=1, dim=None)", report.Engine)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"lonely"}}, report.Hyperedges)
}

// TestCLI_Errors covers bad configuration, output format and input.
func TestCLI_Errors(t *testing.T) {
	_, _, err := run(t, triangleDoc, "nerve", "--min-intersection", "0")
	assert.ErrorIs(t, err, nerve.ErrOptionViolation)

	_, _, err = run(t, triangleDoc, "hypergraph", "--max-dim", "-4")
	assert.ErrorIs(t, err, nerve.ErrOptionViolation)

	_, _, err = run(t, triangleDoc, "graph", "-o", "xml")
	assert.Error(t, err)

	_, _, err = run(t, "- 1\n- 2\n", "graph")
	assert.Error(t, err)

	_, _, err = run(t, "", "nerve", "-i", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
