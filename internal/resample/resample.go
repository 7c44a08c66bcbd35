// Package resample maps a densely sampled series onto other sample points.
package resample

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"munchies/internal/models"
)

// Linear evaluates the piecewise-linear interpolant through (xs, ys) at every
// target. Targets outside [xs[0], xs[n-1]] take the nearest endpoint value.
// xs must be strictly increasing and hold at least two points.
func Linear(xs, ys, targets []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("resample: %d known x values but %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("resample: need at least 2 known points, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("resample: x values not strictly increasing at index %d (%g after %g)", i, xs[i], xs[i-1])
		}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	out := make([]float64, len(targets))
	for i, x := range targets {
		out[i] = pl.Predict(x)
	}
	return out, nil
}

// ObesityAt resamples the annual obesity series onto the given years
func ObesityAt(years []int, series models.ObesitySeries) ([]float64, error) {
	targets := make([]float64, len(years))
	for i, y := range years {
		targets[i] = float64(y)
	}
	return Linear(series.Years(), series.Percents(), targets)
}
