// SPDX-License-Identifier: MIT
// Package: citegraph/cmd/citegraph

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citegraph/degree"
	"github.com/katalvlaran/citegraph/internal/config"
	"github.com/katalvlaran/citegraph/render"
	"github.com/katalvlaran/citegraph/report"
	"github.com/katalvlaran/citegraph/source"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a citation graph with a DPA graph of matching size",
		Long: "compare loads the citation graph, builds a DPA graph with the same node\n" +
			"count and m = round(mean out-degree), and prints both in-degree summaries.\n" +
			"With --plot both normalized distributions share one log-log plot.\n" +
			"Without --source the published physics citation graph is fetched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			location := a.cfg.Source
			if location == "" {
				location = source.CitationURL
			}
			cit, err := a.loadSource(ctx, location)
			if err != nil {
				return err
			}

			gc := a.cfg.Generator
			gc.Model = config.ModelDPA
			gc.N = cit.NodeCount()
			gc.M = max(int(math.Round(degree.MeanOutDegree(cit))), 1)
			dpa, params, err := a.buildModel(ctx, gc)
			if err != nil {
				return err
			}

			citRep, err := report.New(modelSource, report.Params{Source: location}, cit)
			if err != nil {
				return err
			}
			dpaRep, err := report.New(config.ModelDPA, params, dpa)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSummary(out, citRep)
			printSummary(out, dpaRep)

			path := a.cfg.Output.Plot
			if path == "" {
				return nil
			}
			p, err := render.LogLogPlot("Normalized in-degree distribution",
				render.Series{Name: "citations", Points: degree.Normalize(citRep.Distribution())},
				render.Series{Name: fmt.Sprintf("DPA n=%d m=%d", gc.N, gc.M), Points: degree.Normalize(dpaRep.Distribution())},
			)
			if err != nil {
				return err
			}
			if err = render.SavePlot(p, path); err != nil {
				return err
			}
			a.log.Info().Str("file", path).Msg("plot written")

			return nil
		},
	}
	addSourceFlags(cmd, "adjacency-list file or http(s) URL (default: the physics citation graph)")
	f := cmd.Flags()
	f.Int64("seed", 0, "random seed for the DPA graph (0 derives one from the clock)")
	f.Int("progress-every", 5000, "log DPA progress every N steps (0 disables)")
	f.String("plot", "", "write both distributions to a log-log plot (png, svg, pdf)")

	return cmd
}
