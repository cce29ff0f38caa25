// SPDX-License-Identifier: MIT

package mapper

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kmapper/cluster"
	"github.com/katalvlaran/kmapper/hypergraph"
	"github.com/katalvlaran/kmapper/simplex"
)

// Sentinel errors for the pipeline.
var (
	// ErrNilEngine is returned by Build when no engine is given.
	ErrNilEngine = errors.New("mapper: nerve engine is nil")

	// ErrNilClusters is returned by Build when no cluster map is given.
	ErrNilClusters = errors.New("mapper: cluster map is nil")
)

// Engine is the nerve capability Build depends on; nerve.Simplicial and
// nerve.Graph satisfy it.
type Engine interface {
	Compute(clusters *cluster.Map) (simplex.List, error)
}

// Graph is the Mapper output record.
//
// Nodes maps every cluster ID to its member samples (the "membership"
// attribute of exported nodes). Simplices is the dimension-indexed simplex
// list: Simplices[0] the clusters, Simplices[1] the edges, higher
// dimensions when the engine computed them.
type Graph struct {
	Nodes     map[string][]int `yaml:"nodes" json:"nodes"`
	Simplices simplex.List     `yaml:"simplices" json:"simplices"`
}

// Build runs engine over clusters and packages the result.
func Build(clusters *cluster.Map, engine Engine) (*Graph, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	if clusters == nil {
		return nil, ErrNilClusters
	}
	list, err := engine.Compute(clusters)
	if err != nil {
		return nil, fmt.Errorf("mapper: compute nerve: %w", err)
	}

	return &Graph{Nodes: clusters.ToMap(), Simplices: list}, nil
}

// Links returns the link dictionary of the graph's 1-skeleton.
func (g *Graph) Links() map[string][]string { return g.Simplices.Links() }

// Hypergraph reduces the full simplex list to its maximal simplices.
func (g *Graph) Hypergraph() *hypergraph.Hypergraph { return hypergraph.Reduce(g.Simplices) }

// Encode writes g as a YAML document.
func (g *Graph) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("mapper: encode: %w", err)
	}

	return enc.Close()
}

// Decode reads a Graph previously written by Encode (or any YAML/JSON
// document with "nodes" and "simplices" keys). An empty document decodes
// to an empty Graph.
func Decode(r io.Reader) (*Graph, error) {
	var g Graph
	if err := yaml.NewDecoder(r).Decode(&g); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapper: decode: %w", err)
	}
	if g.Nodes == nil {
		g.Nodes = map[string][]int{}
	}
	if g.Simplices == nil {
		g.Simplices = simplex.List{}
	}

	return &g, nil
}
