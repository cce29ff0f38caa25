// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kmapper/converters"
	"github.com/katalvlaran/kmapper/core"
	"github.com/katalvlaran/kmapper/mapper"
	"github.com/katalvlaran/kmapper/nerve"
)

// graphNode is one exported node of the graph subcommand.
type graphNode struct {
	ID         string `yaml:"id" json:"id"`
	Membership []int  `yaml:"membership,flow" json:"membership"`
}

// graphEdge is one exported edge of the graph subcommand.
type graphEdge struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// graphReport is the output document of the graph subcommand.
type graphReport struct {
	Engine     string      `yaml:"engine" json:"engine"`
	Nodes      []graphNode `yaml:"nodes" json:"nodes"`
	Edges      []graphEdge `yaml:"edges" json:"edges"`
	Components [][]string  `yaml:"components" json:"components"`
}

// hypergraphReport is the output document of the hypergraph subcommand.
type hypergraphReport struct {
	Engine     string     `yaml:"engine" json:"engine"`
	Hyperedges [][]string `yaml:"hyperedges" json:"hyperedges"`
}

func newNerveCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nerve",
		Short: "Print the dimension-indexed simplex list",
		Long: `Compute the nerve and print the Mapper record: "nodes" maps every cluster
to its members and "simplices" lists the simplices by dimension.

Examples:
  kmapper nerve -i clusters.yaml
  kmapper nerve -i clusters.yaml --min-intersection 2 --max-dim 2 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := f.logger(cmd)
			engine, err := nerve.NewSimplicial(f.nerveOptions()...)
			if err != nil {
				return err
			}
			clusters, err := f.loadClusters(cmd, log)
			if err != nil {
				return err
			}
			g, err := mapper.Build(clusters, engine)
			if err != nil {
				return err
			}
			log.Debug("nerve computed", "engine", engine.String(),
				"dimensions", len(g.Simplices), "simplices", g.Simplices.Total())

			return f.write(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().IntVar(&f.maxDim, "max-dim", nerve.Unbounded,
		"Highest simplex dimension (-1 = unbounded)")

	return cmd
}

func newGraphCmd(f *rootFlags) *cobra.Command {
	var weighted bool
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the Mapper graph (1-skeleton)",
		Long: `Compute the 1-skeleton of the nerve and print its nodes with their
membership, its edges, and its connected components.

Examples:
  kmapper graph -i clusters.yaml
  kmapper graph -i clusters.yaml --weighted --min-intersection 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := f.logger(cmd)
			engine, err := nerve.NewGraph(nerve.WithMinIntersection(f.minIntersection))
			if err != nil {
				return err
			}
			clusters, err := f.loadClusters(cmd, log)
			if err != nil {
				return err
			}
			g, err := mapper.Build(clusters, engine)
			if err != nil {
				return err
			}
			var opts []converters.Option
			if weighted {
				opts = append(opts, converters.WithOverlapWeights())
			}
			cg, err := converters.ToCore(g, opts...)
			if err != nil {
				return err
			}
			report, err := newGraphReport(engine.String(), cg)
			if err != nil {
				return err
			}
			log.Debug("graph exported", "nodes", len(report.Nodes),
				"edges", len(report.Edges), "components", len(report.Components))

			return f.write(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&weighted, "weighted", false,
		"Weight edges by the number of shared samples")

	return cmd
}

func newHypergraphCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hypergraph",
		Short: "Print the maximal simplices of the nerve",
		Long: `Compute the nerve and reduce it to a simple hypergraph: every simplex
that is a face of a larger simplex is dropped.

Examples:
  kmapper hypergraph -i clusters.yaml
  kmapper hypergraph -i clusters.yaml --max-dim 3 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := f.logger(cmd)
			engine, err := nerve.NewSimplicial(f.nerveOptions()...)
			if err != nil {
				return err
			}
			clusters, err := f.loadClusters(cmd, log)
			if err != nil {
				return err
			}
			g, err := mapper.Build(clusters, engine)
			if err != nil {
				return err
			}
			h := g.Hypergraph()
			log.Debug("hypergraph reduced", "simplices", g.Simplices.Total(),
				"hyperedges", h.Len(), "rank", h.Rank())

			return f.write(cmd.OutOrStdout(), hypergraphReport{
				Engine:     engine.String(),
				Hyperedges: converters.Hyperedges(h),
			})
		},
	}
	cmd.Flags().IntVar(&f.maxDim, "max-dim", nerve.Unbounded,
		"Highest simplex dimension (-1 = unbounded)")

	return cmd
}

// newGraphReport flattens a core graph into the output document.
func newGraphReport(engine string, g *core.Graph) (graphReport, error) {
	report := graphReport{
		Engine:     engine,
		Nodes:      []graphNode{},
		Edges:      []graphEdge{},
		Components: g.ConnectedComponents(),
	}
	if report.Components == nil {
		report.Components = [][]string{}
	}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return graphReport{}, err
		}
		members, _ := v.Metadata[converters.MembershipKey].([]int)
		report.Nodes = append(report.Nodes, graphNode{ID: id, Membership: members})
	}
	for _, e := range g.Edges() {
		report.Edges = append(report.Edges, graphEdge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return report, nil
}
