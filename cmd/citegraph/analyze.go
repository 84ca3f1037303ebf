// SPDX-License-Identifier: MIT
// Package: citegraph/cmd/citegraph

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citegraph/degree"
	"github.com/katalvlaran/citegraph/digraph"
	"github.com/katalvlaran/citegraph/render"
	"github.com/katalvlaran/citegraph/report"
)

// modelSource labels reports for graphs read from a file or URL.
const modelSource = "source"

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute the in-degree distribution of a loaded or generated graph",
		Long: "analyze reads the graph named by --source (file or http(s) URL) or, without\n" +
			"--source, generates one from the model flags. It prints a summary and\n" +
			"optionally writes a log-log plot, a TSV series and a TOML report.",
		Example: "  citegraph analyze --source alg_phys-cite.txt --plot cite.png\n" +
			"  citegraph analyze --model dpa -n 5000 -m 5 --tsv dpa.tsv --report dpa.toml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, model, params, err := a.obtain(ctx)
			if err != nil {
				return err
			}
			r, err := report.New(model, params, g)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), r)

			norm := degree.Normalize(r.Distribution())
			if path := a.cfg.Output.TSV; path != "" {
				if err = writeOutput(cmd, path, func(w io.Writer) error { return render.WriteTSV(w, norm) }); err != nil {
					return err
				}
			}
			if path := a.cfg.Output.Plot; path != "" {
				p, err := render.LogLogPlot("Normalized in-degree distribution", render.Series{Name: model, Points: norm})
				if err != nil {
					return err
				}
				if err = render.SavePlot(p, path); err != nil {
					return err
				}
				a.log.Info().Str("file", path).Msg("plot written")
			}
			if path := a.cfg.Output.Report; path != "" {
				return writeOutput(cmd, path, func(w io.Writer) error { return report.Write(w, r) })
			}

			return nil
		},
	}
	addGeneratorFlags(cmd)
	addSourceFlags(cmd, "adjacency-list file or http(s) URL (empty generates from the model flags)")
	f := cmd.Flags()
	f.String("plot", "", "write a log-log plot; format from extension (png, svg, pdf)")
	f.String("tsv", "", "write the normalized distribution as TSV (- for stdout)")
	f.String("report", "", "write a TOML report (- for stdout)")

	return cmd
}

// obtain loads the configured source, or generates a model graph when no
// source is set.
func (a *app) obtain(ctx context.Context) (*digraph.Graph, string, report.Params, error) {
	if a.cfg.Source == "" {
		g, params, err := a.buildModel(ctx, a.cfg.Generator)

		return g, a.cfg.Generator.Model, params, err
	}

	g, err := a.loadSource(ctx, a.cfg.Source)
	if err != nil {
		return nil, "", report.Params{}, err
	}

	return g, modelSource, report.Params{Source: a.cfg.Source}, nil
}

func addSourceFlags(cmd *cobra.Command, usage string) {
	f := cmd.Flags()
	f.String("source", "", usage)
	f.Duration("timeout", time.Minute, "HTTP timeout for URL sources (0 disables)")
}

// printSummary writes one line per report.
func printSummary(w io.Writer, r report.Report) {
	fmt.Fprintf(w, "%-10s nodes=%d edges=%d mean_out_degree=%.3f max_in_degree=%d",
		r.Model, r.Nodes, r.Edges, r.MeanOutDegree, r.InDegree.Max)
	if r.PowerLaw != nil {
		fmt.Fprintf(w, " exponent=%.3f r2=%.3f", r.PowerLaw.Exponent, r.PowerLaw.RSquared)
	}
	fmt.Fprintln(w)
}
