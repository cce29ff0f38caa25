// SPDX-License-Identifier: MIT

package mapper_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmapper/cluster"
	"github.com/katalvlaran/kmapper/mapper"
	"github.com/katalvlaran/kmapper/nerve"
	"github.com/katalvlaran/kmapper/simplex"
)

// failingEngine always reports errBoom.
type failingEngine struct{}

var errBoom = errors.New("boom")

func (failingEngine) Compute(*cluster.Map) (simplex.List, error) { return nil, errBoom }

func triangleClusters(t *testing.T) *cluster.Map {
	t.Helper()
	c := cluster.New()
	require.NoError(t, c.Add("a", 1, 2, 3))
	require.NoError(t, c.Add("b", 1, 2))
	require.NoError(t, c.Add("c", 1, 2, 3))
	require.NoError(t, c.Add("d", 3, 4))

	return c
}

// TestBuild_Record packages nodes and simplices.
func TestBuild_Record(t *testing.T) {
	engine, err := nerve.NewSimplicial()
	require.NoError(t, err)

	g, err := mapper.Build(triangleClusters(t), engine)
	require.NoError(t, err)

	assert.Equal(t, map[string][]int{
		"a": {1, 2, 3}, "b": {1, 2}, "c": {1, 2, 3}, "d": {3, 4},
	}, g.Nodes)
	require.Len(t, g.Simplices, 3)
	assert.Equal(t, []simplex.Simplex{{"a", "b"}, {"a", "c"}, {"a", "d"}, {"b", "c"}, {"c", "d"}}, g.Simplices.At(1))
	assert.Equal(t, map[string][]string{"a": {"b", "c", "d"}, "b": {"c"}, "c": {"d"}}, g.Links())
}

// TestBuild_Errors covers nil arguments and engine failures.
func TestBuild_Errors(t *testing.T) {
	engine, err := nerve.NewGraph()
	require.NoError(t, err)

	_, err = mapper.Build(triangleClusters(t), nil)
	assert.ErrorIs(t, err, mapper.ErrNilEngine)

	_, err = mapper.Build(nil, engine)
	assert.ErrorIs(t, err, mapper.ErrNilClusters)

	_, err = mapper.Build(triangleClusters(t), failingEngine{})
	assert.ErrorIs(t, err, errBoom)
}

// TestGraph_Hypergraph reduces the record.
func TestGraph_Hypergraph(t *testing.T) {
	engine, err := nerve.NewSimplicial()
	require.NoError(t, err)
	g, err := mapper.Build(triangleClusters(t), engine)
	require.NoError(t, err)

	h := g.Hypergraph()
	var got []string
	for _, e := range h.Edges() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"{a,b,c}", "{a,c,d}"}, got)
}

// TestGraph_EncodeDecode round-trips the record through YAML.
func TestGraph_EncodeDecode(t *testing.T) {
	engine, err := nerve.NewGraph()
	require.NoError(t, err)
	g, err := mapper.Build(triangleClusters(t), engine)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))
	assert.Contains(t, buf.String(), "simplices:")

	back, err := mapper.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes, back.Nodes)
	assert.Equal(t, g.Simplices, back.Simplices)

	back, err = mapper.Decode(strings.NewReader(`{"nodes": {"a": [1]}, "simplices": [[["a"]]]}`))
	require.NoError(t, err)
	assert.Equal(t, simplex.List{{{"a"}}}, back.Simplices)

	back, err = mapper.Decode(strings.NewReader(`nodes: {}`))
	require.NoError(t, err)
	assert.NotNil(t, back.Simplices)

	_, err = mapper.Decode(strings.NewReader(`nodes: [1, 2`))
	assert.Error(t, err)
}

// TestDecode_EmptyDocument mirrors cluster.Decode: no input is an empty graph.
func TestDecode_EmptyDocument(t *testing.T) {
	for _, in := range []string{"", "\n", "# nothing here\n"} {
		g, err := mapper.Decode(strings.NewReader(in))
		require.NoError(t, err, "input %q", in)
		assert.Empty(t, g.Nodes)
		assert.NotNil(t, g.Nodes)
		assert.Equal(t, simplex.List{}, g.Simplices)
	}

	c, err := cluster.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}
