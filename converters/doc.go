// SPDX-License-Identifier: MIT

// Package converters flattens a Mapper graph into general-purpose graph
// libraries:
//   - lvlath-style core.Graph (this module)
//   - gonum/graph (simple.WeightedUndirectedGraph)
//
// Only dimensions 0 and 1 are exported: one node per cluster carrying its
// member samples under the "membership" attribute, one undirected edge per
// 1-simplex. Higher dimensions are ignored; use Hyperedges for those.
//
// Export is pure format transcription. No threshold is applied here; the
// optional edge weight is the number of samples the two clusters share.
package converters
