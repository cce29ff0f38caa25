// SPDX-License-Identifier: MIT

package nerve_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmapper/cluster"
	"github.com/katalvlaran/kmapper/simplex"
)

// mustClusters builds an ordered cluster map from (id, members) pairs.
func mustClusters(t *testing.T, pairs ...interface{}) *cluster.Map {
	t.Helper()
	require.Zero(t, len(pairs)%2, "pairs must be (id, members)")
	m := cluster.New()
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, m.Add(pairs[i].(string), pairs[i+1].([]int)...))
	}

	return m
}

// dimKeys converts dimension d into a set of Set keys.
func dimKeys(l simplex.List, d int) map[string]bool {
	out := make(map[string]bool)
	for _, s := range l.At(d) {
		out[s.Set().Key()] = true
	}

	return out
}

// key is shorthand for simplex.NewSet(ids...).Key().
func key(ids ...string) string { return simplex.NewSet(ids...).Key() }

// randomClusters draws n clusters of up to maxSize samples from a universe
// of the given size. Deterministic for a fixed seed.
func randomClusters(t *testing.T, rng *rand.Rand, n, maxSize, universe int) *cluster.Map {
	t.Helper()
	m := cluster.New()
	for i := 0; i < n; i++ {
		size := rng.Intn(maxSize + 1)
		members := make([]int, size)
		for j := range members {
			members[j] = rng.Intn(universe)
		}
		require.NoError(t, m.Add("c"+strconv.Itoa(i), members...))
	}

	return m
}
