// SPDX-License-Identifier: MIT

package converters_test

import (
	"fmt"

	"github.com/katalvlaran/kmapper/cluster"
	"github.com/katalvlaran/kmapper/converters"
	"github.com/katalvlaran/kmapper/mapper"
	"github.com/katalvlaran/kmapper/nerve"
)

// ExampleToCore exports a Mapper graph with overlap-weighted edges.
func ExampleToCore() {
	clusters, _ := cluster.FromMap(map[string][]int{
		"a": {1, 2, 3, 4},
		"b": {1, 2, 5},
		"c": {5, 6, 7},
	})
	engine, _ := nerve.NewGraph()
	g, _ := mapper.Build(clusters, engine)

	cg, err := converters.ToCore(g, converters.WithOverlapWeights())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range cg.Vertices() {
		v, _ := cg.Vertex(id)
		fmt.Println(id, v.Metadata[converters.MembershipKey])
	}
	for _, e := range cg.Edges() {
		fmt.Printf("%s -- %s (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// a [1 2 3 4]
	// b [1 2 5]
	// c [5 6 7]
	// a -- b (2)
	// b -- c (1)
}
