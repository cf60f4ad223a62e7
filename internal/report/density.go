package report

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// densityCurve builds the smoothed density overlay drawn over a count
// histogram: a Gaussian kernel density estimate with Silverman's
// rule-of-thumb bandwidth, scaled by n*binWidth so the curve sits on the
// same frequency axis as the bars. Returns nil when the sample is
// degenerate (fewer than two values, or zero spread).
func densityCurve(values []float64, bins int) plotter.XYs {
	n := len(values)
	if n < 2 || bins <= 0 {
		return nil
	}

	min, max := values[0], values[0]
	mean := 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		mean += v
	}
	mean /= float64(n)
	if max == min {
		return nil
	}

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n - 1)
	sigma := math.Sqrt(variance)
	if sigma == 0 {
		return nil
	}

	bandwidth := 1.06 * sigma * math.Pow(float64(n), -0.2)
	binWidth := (max - min) / float64(bins)
	scale := float64(n) * binWidth

	const samples = 128
	// Extend past the data range so the curve tails off instead of being
	// clipped at the extreme values.
	lo := min - 2*bandwidth
	hi := max + 2*bandwidth
	step := (hi - lo) / float64(samples-1)

	curve := make(plotter.XYs, samples)
	norm := 1.0 / (float64(n) * bandwidth * math.Sqrt(2*math.Pi))
	for i := 0; i < samples; i++ {
		x := lo + float64(i)*step
		density := 0.0
		for _, v := range values {
			u := (x - v) / bandwidth
			density += math.Exp(-0.5 * u * u)
		}
		curve[i] = plotter.XY{X: x, Y: density * norm * scale}
	}
	return curve
}
