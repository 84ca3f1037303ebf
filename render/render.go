// SPDX-License-Identifier: MIT
// Package: citegraph/render
//
// Package render draws normalized degree distributions as log-log scatter
// plots (gonum/plot) and writes them as plain TSV series.
//
// Points with degree 0 or probability 0 are dropped before plotting: both
// axes are logarithmic.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/citegraph/degree"
)

// ErrNoPoints indicates nothing plottable remained after dropping zeros.
var ErrNoPoints = errors.New("render: no plottable points")

// Default canvas size for SavePlot / WritePlot.
const (
	DefaultWidth  = 7 * vg.Inch
	DefaultHeight = 7 * vg.Inch
)

// Series is one named distribution on a plot.
type Series struct {
	Name   string
	Points degree.Normalized
}

// LogLogPlot builds a scatter plot with logarithmic axes, one glyph style per
// series, in argument order.
//
// Errors: ErrNoPoints when no series contributes a plottable point.
func LogLogPlot(title string, series ...Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "in-degree"
	p.Y.Label.Text = "fraction of nodes"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	plotted := 0
	for i, s := range series {
		xys := logLogXYs(s.Points)
		if len(xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("LogLogPlot: series %q: %w", s.Name, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Shape = plotutil.Shape(i)
		p.Add(sc)
		p.Legend.Add(s.Name, sc)
		plotted++
	}
	if plotted == 0 {
		return nil, fmt.Errorf("LogLogPlot: %w", ErrNoPoints)
	}
	widenDegenerate(&p.X)
	widenDegenerate(&p.Y)

	return p, nil
}

// SavePlot writes p to path; the format follows the file extension
// (png, svg, pdf, ...).
func SavePlot(p *plot.Plot, path string) error {
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("SavePlot(%s): %w", path, err)
	}

	return nil
}

// WritePlot renders p in the given format ("png", "svg", ...) to w.
func WritePlot(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return fmt.Errorf("WritePlot: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("WritePlot: %w", err)
	}

	return nil
}

// WriteTSV writes "degree<TAB>probability" lines ordered by degree. Degree 0
// is written when present; the TSV is lossless.
func WriteTSV(w io.Writer, norm degree.Normalized) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("degree\tprobability\n"); err != nil {
		return fmt.Errorf("WriteTSV: %w", err)
	}
	for _, k := range norm.Degrees() {
		line := strconv.Itoa(k) + "\t" + strconv.FormatFloat(norm[k], 'g', -1, 64) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("WriteTSV: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteTSV: %w", err)
	}

	return nil
}

// logLogXYs keeps the strictly positive points of norm, ordered by degree.
func logLogXYs(norm degree.Normalized) plotter.XYs {
	positive := norm.WithoutZero()
	xys := make(plotter.XYs, 0, len(positive))
	for _, k := range positive.Degrees() {
		if positive[k] <= 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(k), Y: positive[k]})
	}

	return xys
}

// widenDegenerate pads a zero-width axis by a factor of two each side. The
// plot's own padding is additive and can reach zero, which a log scale rejects.
func widenDegenerate(a *plot.Axis) {
	if a.Min == a.Max {
		a.Min /= 2
		a.Max *= 2
	}
}
