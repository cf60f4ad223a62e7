package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"showlens/internal/analytics"
	"showlens/internal/config"
	"showlens/pkg/contracts/domain"
)

// Step is one reporting step in the fixed analysis sequence.
type Step struct {
	// Name identifies the step in logs and joined errors.
	Name string
	// Run executes the step. A non-nil error marks the step failed but
	// never stops the steps after it.
	Run func(ctx context.Context) error
}

// Runner executes reporting steps in order with failure isolation: every
// step runs regardless of earlier failures, and the collected errors come
// back joined at the end. One broken chart must not cost the others.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a step runner logging through the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run executes the steps sequentially and returns the joined errors of
// every failed step, or nil when all succeeded.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	var errs []error
	for _, step := range steps {
		start := time.Now()
		if err := step.Run(ctx); err != nil {
			r.logger.ErrorContext(ctx, "report step failed",
				slog.String("step", step.Name),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("%s: %w", step.Name, err))
			continue
		}
		r.logger.InfoContext(ctx, "report step complete",
			slog.String("step", step.Name),
			slog.Duration("elapsed", time.Since(start)))
	}
	return errors.Join(errs...)
}

// AnalysisSteps assembles the six reporting steps over the cleaned dataset
// in their fixed order: rating-by-genre, duration-vs-rating, top shows,
// bottom shows, genre-by-year, distributions. Each step derives what it
// needs from the shows locally and never mutates them.
func AnalysisSteps(r *Renderer, shows []domain.Show, cfg config.AnalysisConfig) []Step {
	return []Step{
		{
			Name: "rating_by_genre",
			Run: func(ctx context.Context) error {
				return r.RatingByGenre(analytics.RatingByGenre(shows))
			},
		},
		{
			Name: "duration_vs_rating",
			Run: func(ctx context.Context) error {
				return r.DurationVsRating(shows)
			},
		},
		{
			Name: "top_shows",
			Run: func(ctx context.Context) error {
				top := analytics.TopByRating(shows, cfg.TopShows, false)
				return r.TopShows(top, fmt.Sprintf("Top %d shows by rating", cfg.TopShows), ChartTopShows)
			},
		},
		{
			Name: "bottom_shows",
			Run: func(ctx context.Context) error {
				bottom := analytics.TopByRating(shows, cfg.TopShows, true)
				return r.TopShows(bottom, fmt.Sprintf("Bottom %d shows by rating", cfg.TopShows), ChartBottomShows)
			},
		},
		{
			Name: "genre_by_year",
			Run: func(ctx context.Context) error {
				matrix := analytics.CountByYearAndGenre(shows, cfg.YearStart, cfg.YearEnd)
				if err := r.GenreYearHeatmap(matrix); err != nil {
					return err
				}
				return r.RatingTrend(analytics.RatingByYear(shows, cfg.YearStart, cfg.YearEnd))
			},
		},
		{
			Name: "distributions",
			Run: func(ctx context.Context) error {
				if err := r.RatingHistogram(shows); err != nil {
					return err
				}
				if err := r.DurationHistogram(shows); err != nil {
					return err
				}
				return r.GenreFrequency(analytics.GenreFrequency(shows))
			},
		},
	}
}
