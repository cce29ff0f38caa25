// SPDX-License-Identifier: MIT

package converters

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/kmapper/hypergraph"
	"github.com/katalvlaran/kmapper/mapper"
)

// ClusterNode is the gonum node exported for a cluster.
type ClusterNode struct {
	// NodeID is the gonum node ID, assigned 0, 1, … in dimension-0 order.
	NodeID int64

	// Cluster is the Mapper cluster ID.
	Cluster string

	// Membership holds the samples of the cluster.
	Membership []int
}

// ID implements graph.Node.
func (n ClusterNode) ID() int64 { return n.NodeID }

var _ graph.Node = ClusterNode{}

// ToGonum converts the 1-skeleton of g into a gonum weighted undirected
// graph. Edge weight is the number of samples shared by the two clusters.
// The returned map resolves cluster IDs to gonum node IDs.
//
// Errors:
//   - ErrNilGraph, ErrMalformedSimplex.
func ToGonum(g *mapper.Graph) (*simple.WeightedUndirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	out := simple.NewWeightedUndirectedGraph(0, 0)
	ids := make(map[string]int64)

	node := func(id string) ClusterNode {
		if nid, ok := ids[id]; ok {
			return out.Node(nid).(ClusterNode)
		}
		n := ClusterNode{NodeID: int64(len(ids)), Cluster: id, Membership: membership(g, id)}
		ids[id] = n.NodeID
		out.AddNode(n)
		return n
	}

	for _, id := range g.Simplices.Vertices() {
		node(id)
	}
	for _, s := range g.Simplices.At(1) {
		u, v, err := endpoints(s)
		if err != nil {
			return nil, nil, err
		}
		from, to := node(u), node(v)
		if out.HasEdgeBetween(from.ID(), to.ID()) {
			continue
		}
		w := float64(overlap(g.Nodes[u], g.Nodes[v]))
		out.SetWeightedEdge(out.NewWeightedEdge(from, to, w))
	}

	return out, ids, nil
}

// Hyperedges flattens h into one sorted ID slice per hyperedge, in h's
// order. No attributes are attached.
func Hyperedges(h *hypergraph.Hypergraph) [][]string {
	if h == nil {
		return nil
	}
	edges := h.Edges()
	out := make([][]string, len(edges))
	for i, e := range edges {
		out[i] = e.IDs()
	}

	return out
}
