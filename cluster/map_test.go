// SPDX-License-Identifier: MIT

package cluster_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kmapper/cluster"
)

// TestMap_AddAndQuery covers ordering, merging and member deduplication.
func TestMap_AddAndQuery(t *testing.T) {
	m := cluster.New()
	require.NoError(t, m.Add("b", 1, 2, 2, 3))
	require.NoError(t, m.Add("a"))
	require.NoError(t, m.Add("b", 3, 4))

	assert.Equal(t, []string{"b", "a"}, m.IDs())
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("z"))

	members, ok := m.Members("b")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, members)

	members, ok = m.Members("a")
	require.True(t, ok)
	assert.Empty(t, members)

	_, ok = m.Members("z")
	assert.False(t, ok)

	assert.Len(t, m.MemberSet("b"), 4)
	assert.Nil(t, m.MemberSet("z"))
}

// TestMap_EmptyID rejects the empty cluster ID.
func TestMap_EmptyID(t *testing.T) {
	m := cluster.New()
	assert.ErrorIs(t, m.Add("", 1), cluster.ErrEmptyID)

	_, err := cluster.FromMap(map[string][]int{"": {1}})
	assert.ErrorIs(t, err, cluster.ErrEmptyID)
}

// TestMap_CopiesAreIndependent ensures accessors do not leak internals.
func TestMap_CopiesAreIndependent(t *testing.T) {
	m := cluster.New()
	require.NoError(t, m.Add("a", 1, 2))

	ids := m.IDs()
	ids[0] = "mutated"
	members, _ := m.Members("a")
	members[0] = 99
	plain := m.ToMap()
	plain["a"][1] = 42

	assert.Equal(t, []string{"a"}, m.IDs())
	got, _ := m.Members("a")
	assert.Equal(t, []int{1, 2}, got)
}

// TestFromMap_SortsIDs makes Go map input deterministic.
func TestFromMap_SortsIDs(t *testing.T) {
	m, err := cluster.FromMap(map[string][]int{
		"c": {5, 6, 7},
		"a": {1, 2, 3, 4},
		"b": {1, 2, 5},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, m.IDs())
	assert.Equal(t, map[string][]int{
		"a": {1, 2, 3, 4},
		"b": {1, 2, 5},
		"c": {5, 6, 7},
	}, m.ToMap())
}

// TestDecode_PreservesDocumentOrder reads YAML and JSON in key order.
func TestDecode_PreservesDocumentOrder(t *testing.T) {
	doc := `
zeta: [1, 2]
alpha: [2, 3]
mid: []
nothing:
`
	m, err := cluster.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid", "nothing"}, m.IDs())
	members, _ := m.Members("alpha")
	assert.Equal(t, []int{2, 3}, members)
	members, _ = m.Members("nothing")
	assert.Empty(t, members)

	m, err = cluster.Decode(strings.NewReader(`{"c": [5, 6], "a": [1]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, m.IDs())
}

// TestDecode_Errors covers empty and malformed documents.
func TestDecode_Errors(t *testing.T) {
	m, err := cluster.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	_, err = cluster.Decode(strings.NewReader("- 1\n- 2\n"))
	assert.ErrorIs(t, err, cluster.ErrBadDocument)

	_, err = cluster.Decode(strings.NewReader("a: [x, y]\n"))
	assert.ErrorIs(t, err, cluster.ErrBadDocument)

	_, err = cluster.Decode(strings.NewReader(`"": [1]`))
	assert.ErrorIs(t, err, cluster.ErrEmptyID)
}

// TestMarshalYAML_RoundTrip keeps order through encode and decode.
func TestMarshalYAML_RoundTrip(t *testing.T) {
	m := cluster.New()
	require.NoError(t, m.Add("second", 3, 4))
	require.NoError(t, m.Add("first", 1))
	require.NoError(t, m.Add("empty"))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	require.NoError(t, enc.Encode(m))
	require.NoError(t, enc.Close())
	assert.Equal(t, "second: [3, 4]\nfirst: [1]\nempty: []\n", buf.String())

	back, err := cluster.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.IDs(), back.IDs())
	assert.Equal(t, m.ToMap(), back.ToMap())
}
