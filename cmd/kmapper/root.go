// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kmapper/cluster"
	"github.com/katalvlaran/kmapper/nerve"
)

// Output formats.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// rootFlags holds the flags shared by every subcommand.
type rootFlags struct {
	input           string
	output          string
	minIntersection int
	maxDim          int
	verbose         bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "kmapper",
		Short: "Build the nerve of a Mapper cluster cover",
		Long: `kmapper reads a mapping of cluster IDs to member sample IDs and builds
the nerve: clusters become vertices, and groups of clusters sharing at least
--min-intersection samples become simplices.

Subcommands:
  nerve       - print the dimension-indexed simplex list
  graph       - print the 1-skeleton as nodes, edges and components
  hypergraph  - print the maximal simplices only`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if f.output != formatYAML && f.output != formatJSON {
				return fmt.Errorf("unknown output format %q (want yaml or json)", f.output)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&f.input, "input", "i", "-",
		"Cluster file (YAML or JSON); - reads stdin")
	root.PersistentFlags().StringVarP(&f.output, "output", "o", formatYAML,
		"Output format: yaml, json")
	root.PersistentFlags().IntVar(&f.minIntersection, "min-intersection", 1,
		"Minimum number of shared samples for a simplex")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false,
		"Enable debug logging on stderr")

	root.AddCommand(newNerveCmd(f))
	root.AddCommand(newGraphCmd(f))
	root.AddCommand(newHypergraphCmd(f))

	return root
}

// logger returns a text slog.Logger writing to the command's stderr.
func (f *rootFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// nerveOptions maps the flags onto nerve options.
func (f *rootFlags) nerveOptions() []nerve.Option {
	opts := []nerve.Option{nerve.WithMinIntersection(f.minIntersection)}
	if f.maxDim == nerve.Unbounded {
		opts = append(opts, nerve.WithUnboundedDim())
	} else {
		opts = append(opts, nerve.WithMaxDim(f.maxDim))
	}

	return opts
}

// loadClusters reads the cluster map from --input.
func (f *rootFlags) loadClusters(cmd *cobra.Command, log *slog.Logger) (*cluster.Map, error) {
	var r io.Reader = cmd.InOrStdin()
	if f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, fmt.Errorf("open cluster file: %w", err)
		}
		defer file.Close()
		r = file
	}

	m, err := cluster.Decode(r)
	if err != nil {
		return nil, err
	}
	log.Debug("clusters loaded", "source", f.input, "clusters", m.Len())

	return m, nil
}

// write renders v in the selected output format.
func (f *rootFlags) write(w io.Writer, v interface{}) error {
	if f.output == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
