// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, undirected in-memory Graph used as
// the export target of Mapper graphs.
//
// The Graph G = (V,E) supports:
//
//   - Vertex attributes: every Vertex carries a Metadata map. The Mapper
//     export stores the cluster membership under the "membership" key.
//   - Weighted vs. unweighted edges (WithWeighted). The Mapper export can
//     weight an edge by the number of shared samples.
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency.
//
// Self-loops and parallel edges are rejected: a nerve never produces them.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                          // O(1)
//	HasVertex(id string) bool                           // O(1)
//	Vertex(id string) (*Vertex, error)                  // O(1)
//	SetVertexAttribute(id, key string, v interface{})   // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (string, error) // O(1)†
//	HasEdge(from, to string) bool                          // O(1)
//
//	// Query
//	Vertices() []string                  // O(V·log V)
//	Edges() []*Edge                      // O(E·log E)
//	NeighborIDs(id string) ([]string, error)
//	Degree(id string) (int, error)
//	VertexCount() int; EdgeCount() int
//	ConnectedComponents() [][]string     // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – from == to
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
//
// † amortized: atomic ID generation + nested-map insertion.
package core
