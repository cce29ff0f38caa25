// SPDX-License-Identifier: MIT

// Command kmapper builds the nerve of a cluster cover and prints it as a
// simplex list, a Mapper graph, or a reduced hypergraph.
//
// Input is a YAML or JSON mapping of cluster ID to member sample IDs:
//
//	cube0_cluster0: [1, 2, 3, 4]
//	cube1_cluster0: [1, 2, 5]
//	cube2_cluster0: [5, 6, 7]
//
// Usage:
//
//	kmapper nerve      -i clusters.yaml --min-intersection 2 --max-dim 3
//	kmapper graph      -i clusters.yaml --weighted
//	kmapper hypergraph -i clusters.json -o json
//	cat clusters.yaml | kmapper graph
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
