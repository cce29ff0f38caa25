// SPDX-License-Identifier: MIT

package nerve

import (
	"fmt"

	"github.com/katalvlaran/kmapper/cluster"
	"github.com/katalvlaran/kmapper/simplex"
)

// Engine computes a nerve over a cluster map.
type Engine interface {
	// Compute returns the dimension-indexed simplex list of clusters.
	Compute(clusters *cluster.Map) (simplex.List, error)

	// Options returns the validated parameters of the engine.
	Options() Options

	// String describes the engine and its parameters.
	String() string
}

var (
	_ Engine = (*Simplicial)(nil)
	_ Engine = (*Graph)(nil)
)

// Simplicial computes the full nerve, or its MaxDim-skeleton when capped.
type Simplicial struct {
	opts Options
}

// NewSimplicial validates opts and returns an engine.
//
// Errors:
//   - ErrOptionViolation if MinIntersection ≤ 0 or MaxDim < 0.
func NewSimplicial(opts ...Option) (*Simplicial, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = o.validate(); err != nil {
		return nil, err
	}

	return &Simplicial{opts: o}, nil
}

// Compute implements Engine.
func (s *Simplicial) Compute(clusters *cluster.Map) (simplex.List, error) {
	if clusters == nil {
		return nil, ErrNilClusters
	}

	return compute(clusters, s.opts), nil
}

// Options implements Engine.
func (s *Simplicial) Options() Options { return s.opts }

// String renders e.g. "SimplicialNerve(min_intersection=1, dim=None)".
func (s *Simplicial) String() string {
	dim := "None"
	if s.opts.MaxDim != Unbounded {
		dim = fmt.Sprint(s.opts.MaxDim)
	}

	return fmt.Sprintf("SimplicialNerve(min_intersection=%d, dim=%s)", s.opts.MinIntersection, dim)
}

// Graph computes the 1-skeleton of the nerve: the Mapper graph.
// It is a Simplicial engine with MaxDim pinned to 1.
type Graph struct {
	inner Simplicial
}

// NewGraph validates opts and returns a 1-skeleton engine. Any MaxDim
// supplied through opts is validated, then replaced by 1.
func NewGraph(opts ...Option) (*Graph, error) {
	s, err := NewSimplicial(opts...)
	if err != nil {
		return nil, err
	}
	s.opts.MaxDim = 1

	return &Graph{inner: *s}, nil
}

// Compute implements Engine. The result has at most two dimensions.
func (g *Graph) Compute(clusters *cluster.Map) (simplex.List, error) {
	return g.inner.Compute(clusters)
}

// Skeleton returns the vertices and the edges of the nerve separately.
// edges is nil when no pair of clusters overlaps enough.
func (g *Graph) Skeleton(clusters *cluster.Map) (vertices, edges []simplex.Simplex, err error) {
	list, err := g.Compute(clusters)
	if err != nil {
		return nil, nil, err
	}

	return list.At(0), list.At(1), nil
}

// Options implements Engine.
func (g *Graph) Options() Options { return g.inner.opts }

// String renders e.g. "GraphNerve(min_intersection=2)".
func (g *Graph) String() string {
	return fmt.Sprintf("GraphNerve(min_intersection=%d)", g.inner.opts.MinIntersection)
}

// Compute validates opts and computes the nerve of clusters in one call.
//
// Example:
//
//	list, err := nerve.Compute(clusters, nerve.WithMinIntersection(2))
func Compute(clusters *cluster.Map, opts ...Option) (simplex.List, error) {
	e, err := NewSimplicial(opts...)
	if err != nil {
		return nil, err
	}

	return e.Compute(clusters)
}
