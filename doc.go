// Package citegraph generates random directed graphs and analyses their
// in-degree distributions, with a focus on comparing real citation graphs
// against the directed preferential-attachment (DPA) model.
//
// Layout:
//
//	digraph/          - thread-safe adjacency-set digraph on integer ids + gonum interop
//	builder/          - Complete, ErdosRenyi and DPA constructors, the DPA Multiset
//	degree/           - in/out degrees, sparse distributions, normalization, power-law fit
//	source/           - "node n1 n2 ..." edge lists: parse, encode, load from file or URL
//	render/           - log-log scatter plots (gonum/plot) and TSV series
//	report/           - TOML run reports
//	internal/config/  - viper configuration and the zerolog logger
//	cmd/citegraph/    - cobra CLI: generate, analyze, compare, version
//
// Quick start:
//
//	g, err := builder.BuildDPA(ctx, 27770, 13, builder.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	norm := degree.Normalize(degree.InDegreeDistribution(g))
//	p, err := render.LogLogPlot("DPA", render.Series{Name: "dpa", Points: norm})
//
// The DPA model starts from a complete digraph on m nodes and adds nodes one
// at a time; each new node cites m distinct existing nodes chosen with
// probability proportional to in-degree + 1. With a fixed seed the result is
// reproducible.
package citegraph
