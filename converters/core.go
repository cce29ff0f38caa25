// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/katalvlaran/kmapper/core"
	"github.com/katalvlaran/kmapper/mapper"
	"github.com/katalvlaran/kmapper/simplex"
)

// ToCore converts the 1-skeleton of g into a core.Graph.
//
// Every dimension-0 cluster becomes a vertex whose Metadata[MembershipKey]
// is a copy of g.Nodes[id] (nil if the cluster has no entry). Every
// 1-simplex becomes one undirected edge; endpoints missing from dimension 0
// are added on the fly. A repeated pair yields a single edge.
//
// Errors:
//   - ErrNilGraph, ErrOptionViolation, ErrMalformedSimplex.
//   - core errors wrapped with the offending simplex.
func ToCore(g *mapper.Graph, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var out *core.Graph
	if o.OverlapWeights {
		out = core.NewGraph(core.WithWeighted())
	} else {
		out = core.NewGraph()
	}

	addNode := func(id string) error {
		if out.HasVertex(id) {
			return nil
		}
		if err := out.AddVertex(id); err != nil {
			return fmt.Errorf("converters: vertex %q: %w", id, err)
		}
		return out.SetVertexAttribute(id, o.MembershipKey, membership(g, id))
	}

	for _, id := range g.Simplices.Vertices() {
		if err = addNode(id); err != nil {
			return nil, err
		}
	}

	for _, s := range g.Simplices.At(1) {
		u, v, err := endpoints(s)
		if err != nil {
			return nil, err
		}
		if err = addNode(u); err != nil {
			return nil, err
		}
		if err = addNode(v); err != nil {
			return nil, err
		}
		if out.HasEdge(u, v) {
			continue
		}
		var w int64
		if o.OverlapWeights {
			w = int64(overlap(g.Nodes[u], g.Nodes[v]))
		}
		if _, err = out.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("converters: edge %v: %w", s, err)
		}
	}

	return out, nil
}

// endpoints validates a 1-simplex.
func endpoints(s simplex.Simplex) (string, string, error) {
	if len(s) != 2 || s[0] == "" || s[1] == "" || s[0] == s[1] {
		return "", "", fmt.Errorf("%w: %v", ErrMalformedSimplex, []string(s))
	}

	return s[0], s[1], nil
}

// membership copies g.Nodes[id].
func membership(g *mapper.Graph, id string) []int {
	ms, ok := g.Nodes[id]
	if !ok {
		return nil
	}
	out := make([]int, len(ms))
	copy(out, ms)

	return out
}

// overlap counts the samples shared by a and b.
func overlap(a, b []int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	set := make(map[int]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	n := 0
	for _, s := range b {
		if _, ok := set[s]; ok {
			n++
			delete(set, s)
		}
	}

	return n
}
