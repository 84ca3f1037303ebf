// SPDX-License-Identifier: MIT
// Package: citegraph/degree
//
// stats.go - summary statistics and a log-log power-law fit over degree
// distributions, used to compare model graphs against the citation network.

package degree

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrTooFewPoints indicates a fit was requested over fewer than two usable points.
var ErrTooFewPoints = errors.New("degree: too few points to fit")

// minFitPoints is the smallest number of (log k, log P) points a line needs.
const minFitPoints = 2

// Summary describes a degree distribution.
type Summary struct {
	Nodes  int     `toml:"nodes"`
	Mean   float64 `toml:"mean"`
	StdDev float64 `toml:"std_dev"`
	Min    int     `toml:"min"`
	Max    int     `toml:"max"`
}

// Summarize computes count-weighted statistics over d. StdDev is the
// unbiased sample estimate; it is 0 when fewer than two nodes exist.
// Complexity: O(len(d)).
func Summarize(d Distribution) Summary {
	keys := d.Degrees()
	s := Summary{Nodes: d.Total()}
	if len(keys) == 0 {
		return s
	}
	s.Min, s.Max = keys[0], keys[len(keys)-1]

	x := make([]float64, len(keys))
	w := make([]float64, len(keys))
	for i, k := range keys {
		x[i] = float64(k)
		w[i] = float64(d[k])
	}
	s.Mean = stat.Mean(x, w)
	if s.Nodes > 1 {
		s.StdDev = stat.StdDev(x, w)
	}

	return s
}

// PowerLaw is a least-squares fit of log10 P(k) = Intercept - Exponent·log10 k.
type PowerLaw struct {
	Exponent  float64 `toml:"exponent"`
	Intercept float64 `toml:"intercept"`
	RSquared  float64 `toml:"r_squared"`
	Points    int     `toml:"points"`
}

// FitPowerLaw fits a straight line to the log-log points of n, skipping
// degree 0 and zero probabilities. A distribution following P(k) ∝ k^-γ
// yields Exponent ≈ γ.
//
// Errors: ErrTooFewPoints when fewer than two usable points remain.
// Complexity: O(len(n) log len(n)).
func FitPowerLaw(n Normalized) (PowerLaw, error) {
	var x, y []float64
	for _, k := range n.Degrees() {
		p := n[k]
		if k <= 0 || p <= 0 {
			continue
		}
		x = append(x, math.Log10(float64(k)))
		y = append(y, math.Log10(p))
	}
	if len(x) < minFitPoints {
		return PowerLaw{}, fmt.Errorf("FitPowerLaw: %d points: %w", len(x), ErrTooFewPoints)
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)

	return PowerLaw{
		Exponent:  -beta,
		Intercept: alpha,
		RSquared:  stat.RSquared(x, y, nil, alpha, beta),
		Points:    len(x),
	}, nil
}
