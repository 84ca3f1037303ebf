// SPDX-License-Identifier: MIT
// Package: citegraph/report
//
// Package report captures one analysis run (model parameters, graph size,
// in-degree summary and power-law fit) as a TOML document, so runs over the
// citation graph and over model graphs can be diffed side by side.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/citegraph/degree"
	"github.com/katalvlaran/citegraph/digraph"
)

// Params records how a graph was obtained. Zero fields are omitted.
type Params struct {
	N      int     `toml:"n,omitempty"`
	M      int     `toml:"m,omitempty"`
	P      float64 `toml:"p,omitempty"`
	Seed   int64   `toml:"seed,omitempty"`
	Source string  `toml:"source,omitempty"`
}

// Report is the TOML-serialisable result of analysing one graph.
type Report struct {
	Model         string           `toml:"model"`
	Params        Params           `toml:"params"`
	Nodes         int              `toml:"nodes"`
	Edges         int              `toml:"edges"`
	MeanOutDegree float64          `toml:"mean_out_degree"`
	InDegree      degree.Summary   `toml:"in_degree"`
	PowerLaw      *degree.PowerLaw `toml:"power_law,omitempty"`
	// Degrees and Counts are the sparse in-degree histogram, ascending by degree.
	Degrees []int `toml:"degrees"`
	Counts  []int `toml:"counts"`
}

// New analyses g. A distribution too narrow to fit leaves PowerLaw nil.
func New(model string, params Params, g *digraph.Graph) (Report, error) {
	dist := degree.InDegreeDistribution(g)
	r := Report{
		Model:         model,
		Params:        params,
		Nodes:         g.NodeCount(),
		Edges:         g.EdgeCount(),
		MeanOutDegree: degree.MeanOutDegree(g),
		InDegree:      degree.Summarize(dist),
		Degrees:       dist.Degrees(),
	}
	r.Counts = make([]int, len(r.Degrees))
	for i, k := range r.Degrees {
		r.Counts[i] = dist[k]
	}

	fit, err := degree.FitPowerLaw(degree.Normalize(dist).WithoutZero())
	switch {
	case err == nil:
		r.PowerLaw = &fit
	case errors.Is(err, degree.ErrTooFewPoints):
	default:
		return Report{}, fmt.Errorf("report.New: %w", err)
	}

	return r, nil
}

// Distribution rebuilds the sparse histogram from Degrees/Counts.
func (r Report) Distribution() degree.Distribution {
	dist := make(degree.Distribution, len(r.Degrees))
	for i, k := range r.Degrees {
		if i < len(r.Counts) {
			dist[k] = r.Counts[i]
		}
	}

	return dist
}

// Write encodes r as TOML.
func Write(w io.Writer, r Report) error {
	if err := toml.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("report.Write: %w", err)
	}

	return nil
}

// Read decodes a TOML report.
func Read(rd io.Reader) (Report, error) {
	var r Report
	if err := toml.NewDecoder(rd).Decode(&r); err != nil {
		return Report{}, fmt.Errorf("report.Read: %w", err)
	}

	return r, nil
}
