// SPDX-License-Identifier: MIT

// Package nerve builds the nerve of a cluster cover: the simplicial complex
// whose vertices are clusters and whose k-simplices are groups of k+1
// clusters sharing at least MinIntersection samples.
//
// 🚀 What is the nerve?
//
//	Mapper covers a dataset with overlapping regions and clusters each
//	region. Two clusters that share samples are linked; three clusters that
//	share samples all together span a triangle, and so on. The result is a
//	compressed topological summary of the data.
//
// ✨ Engines:
//   - Simplicial: the full complex, optionally capped at MaxDim.
//   - Graph:      the 1-skeleton (vertices and edges), the usual Mapper graph.
//
// ⚙️ Usage:
//
//	e, err := nerve.NewSimplicial(nerve.WithMinIntersection(2), nerve.WithMaxDim(3))
//	if err != nil {
//	  // errors.Is(err, nerve.ErrOptionViolation)
//	}
//	list, err := e.Compute(clusters)
//	// list[0]: one singleton per cluster, list[1]: edges, list[2]: triangles…
//
// Algorithm:
//  1. Dimension 0: every cluster, in input order.
//  2. For d = 1, 2, … (≤ MaxDim): every combination of d+1 distinct clusters,
//     in lexicographic index order, whose common members number at least
//     MinIntersection becomes a d-simplex.
//  3. If dimension d yields nothing, stop. Adding a cluster to a group can
//     only shrink the common members, so no (d+1)-group can pass either.
//
// Complexity:
//
//	Time   = O(Σ_d C(n, d+1)·(d+1)·m), n clusters, m = smallest cluster size
//	Memory = O(total members + output)
//
// Engines are immutable after construction and safe for concurrent use.
package nerve
