// Package report renders the descriptive charts over the cleaned show
// dataset and orchestrates the fixed reporting sequence.
//
// Rendering goes through gonum/plot: horizontal bar charts for per-genre
// and per-show rankings, a genre-colored scatter, a year x genre heatmap,
// a yearly trend line and two histograms (the rating histogram with a
// Gaussian density overlay). The Runner executes the reporting steps in
// order with failure isolation, so one broken chart never suppresses the
// remaining ones.
package report
