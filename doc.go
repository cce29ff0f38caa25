// Package kmapper is the combinatorial backbone of a Mapper pipeline for
// topological data analysis: it turns overlapping clusters into a nerve
// and, on demand, into a face-minimal hypergraph.
//
// 🚀 What is kmapper?
//
//	Upstream, a cover + clustering stage produces clusters of samples that
//	overlap. kmapper takes that mapping (cluster ID → sample IDs) and:
//		• builds the nerve: clusters are vertices, groups of clusters with
//		  at least MinIntersection shared samples are simplices
//		• restricts it to the 1-skeleton, the classic Mapper graph
//		• reduces the full complex to its maximal simplices (a hypergraph)
//		• exports the graph to lvlath-style core.Graph or gonum/graph
//
// ✨ Why kmapper?
//
//   - Exact: the monotone stopping rule prunes enumeration without ever
//     dropping a simplex.
//   - Deterministic: input order in, same simplex order out.
//   - Stateless: every call recomputes from scratch; safe for concurrent
//     callers on independent inputs.
//
// Packages:
//
//	cluster/    — ordered cluster map, YAML/JSON decoding
//	simplex/    — Set, Simplex, List, combination enumeration
//	nerve/      — Simplicial and Graph nerve engines
//	hypergraph/ — face-domination reduction
//	mapper/     — the {nodes, simplices} record and Build
//	converters/ — export to core.Graph and gonum
//	core/       — thread-safe undirected graph with vertex attributes
//	cmd/kmapper — command-line front end
//
// Quick ASCII example:
//
//	a:[1,2,3,4]   b:[1,2,5]   c:[5,6,7]
//
//	    a───b───c        (a∩b = {1,2}, b∩c = {5}, a∩c = ∅)
//
//	go get github.com/katalvlaran/kmapper
package kmapper
