// SPDX-License-Identifier: MIT

// Package cluster holds the input of the nerve construction: an ordered
// mapping from cluster ID to the sample IDs that fell into that cluster.
//
// A Mapper pipeline covers the data with overlapping regions and clusters
// every region independently. The same sample can therefore belong to
// several clusters, and those shared samples are what the nerve records.
//
// Ordering:
//
//	Map preserves insertion order. The nerve enumerates clusters in this
//	order, so the simplices it emits are reproducible. FromMap sorts the IDs
//	of a Go map, and Decode keeps the key order of the YAML/JSON document.
//
// Usage:
//
//	m := cluster.New()
//	_ = m.Add("cube0_cluster0", 1, 2, 3, 4)
//	_ = m.Add("cube1_cluster0", 1, 2, 5)
//
//	f, _ := os.Open("clusters.yaml")
//	m, err := cluster.Decode(f)
package cluster
