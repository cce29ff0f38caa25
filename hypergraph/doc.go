// SPDX-License-Identifier: MIT

// Package hypergraph reduces a simplicial complex to its maximal simplices.
//
// A nerve records every overlapping sub-group separately: a filled
// triangle {a,b,c} also yields the edges {a,b}, {a,c}, {b,c} and the three
// vertices. As a hypergraph only {a,b,c} is needed. Reduce keeps exactly
// the simplices that are not a face of another simplex, which makes the
// result a simple hypergraph: no hyperedge is a strict subset of another.
//
// Algorithm:
//  1. Convert every simplex to a simplex.Set and keep one working set per
//     dimension.
//  2. From the highest dimension down: accept each remaining simplex, then
//     discard all of its faces from the lower working sets.
//  3. A discarded face is never accepted and never discards anything.
//
// Processing order matters: a simplex can only be dominated by a simplex of
// higher dimension, so when a dimension is reached every survivor in it is
// maximal.
//
// Complexity:
//
//	Time   = O(Σ 2^|S|) over accepted simplices S
//	Memory = O(total simplices)
package hypergraph
