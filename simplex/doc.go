// SPDX-License-Identifier: MIT

// Package simplex provides the value types shared by the nerve builder and
// the hypergraph reducer.
//
//   - Set: an immutable, sorted set of vertex (cluster) IDs with structural
//     equality. Domination and face tests always go through Set, never
//     through positional comparison.
//   - Simplex: an ordered sequence of k+1 distinct vertex IDs, k = dimension,
//     as emitted by the nerve.
//   - List: the dimension-indexed simplex list. Index 0 holds one singleton
//     per cluster; index d holds every d-simplex found. A dimension d ≥ 1 is
//     present only when it holds at least one simplex, so an empty
//     dimension is never followed by another one.
//
// Combinations enumerates k-subsets of {0..n-1} in lexicographic order and
// is the enumeration primitive of both algorithms.
package simplex
