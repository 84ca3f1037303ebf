// SPDX-License-Identifier: MIT
// Package: citegraph/cmd/citegraph

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citegraph/report"
	"github.com/katalvlaran/citegraph/source"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random digraph and write it as an adjacency list",
		Example: "  citegraph generate --model dpa -n 27770 -m 13 --seed 42 --out dpa.txt\n" +
			"  citegraph generate --model er -n 1000 -p 0.01",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, params, err := a.buildModel(cmd.Context(), a.cfg.Generator)
			if err != nil {
				return err
			}
			out := a.cfg.Output.Graph
			if out == "" {
				out = "-"
			}
			if err = writeOutput(cmd, out, func(w io.Writer) error { return source.Encode(w, g) }); err != nil {
				return err
			}
			if a.cfg.Output.Report == "" {
				return nil
			}
			r, err := report.New(a.cfg.Generator.Model, params, g)
			if err != nil {
				return err
			}

			return writeOutput(cmd, a.cfg.Output.Report, func(w io.Writer) error { return report.Write(w, r) })
		},
	}
	addGeneratorFlags(cmd)
	cmd.Flags().StringP("out", "o", "-", "edge-list output file (- for stdout)")
	cmd.Flags().String("report", "", "write a TOML run report to this file")

	return cmd
}
