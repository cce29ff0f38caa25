// SPDX-License-Identifier: MIT

package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmapper/simplex"
)

func sampleList() simplex.List {
	return simplex.List{
		{{"a"}, {"b"}, {"c"}, {"d"}},
		{{"a", "b"}, {"a", "c"}, {"b", "c"}},
		{{"a", "b", "c"}},
	}
}

// TestList_Accessors covers Dim, At, Count and Total.
func TestList_Accessors(t *testing.T) {
	l := sampleList()

	assert.Equal(t, 2, l.Dim())
	assert.Len(t, l.At(1), 3)
	assert.Nil(t, l.At(3))
	assert.Nil(t, l.At(-1))
	assert.Equal(t, 1, l.Count(2))
	assert.Equal(t, 0, l.Count(5))
	assert.Equal(t, 8, l.Total())

	var empty simplex.List
	assert.Equal(t, -1, empty.Dim())
	assert.Equal(t, 0, empty.Total())
}

// TestList_Skeleton verifies truncation without aliasing the outer slice.
func TestList_Skeleton(t *testing.T) {
	l := sampleList()

	sk := l.Skeleton(1)
	require.Len(t, sk, 2)
	assert.Equal(t, l[1], sk[1])

	assert.Len(t, l.Skeleton(7), 3)
	assert.Empty(t, l.Skeleton(-1))

	sk = append(sk, []simplex.Simplex{{"x", "y", "z"}})
	assert.Len(t, sk, 3)
	assert.Len(t, l, 3)
	assert.Equal(t, simplex.Simplex{"a", "b", "c"}, l[2][0])
}

// TestList_VerticesEdgesLinks covers the 1-skeleton views.
func TestList_VerticesEdgesLinks(t *testing.T) {
	l := sampleList()

	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Vertices())
	assert.Equal(t, [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}, l.Edges())
	assert.Equal(t, map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
	}, l.Links())

	vertsOnly := simplex.List{{{"a"}}}
	assert.Empty(t, vertsOnly.Edges())
	assert.Empty(t, vertsOnly.Links())
}

// TestList_Sets converts every simplex to a Set.
func TestList_Sets(t *testing.T) {
	sets := sampleList().Sets()
	require.Len(t, sets, 3)
	assert.True(t, sets[2][0].Equal(simplex.NewSet("c", "b", "a")))
	assert.Equal(t, 1, simplex.Simplex{"a", "b"}.Dim())
}
