package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"showlens/internal/analytics"
	"showlens/internal/config"
	"showlens/internal/dataset"
	"showlens/internal/exporter"
	"showlens/internal/infrastructure"
	"showlens/internal/report"
	"showlens/pkg/contracts/domain"
)

func main() {
	input := flag.String("input", "", "path to the show dataset (csv or xlsx)")
	out := flag.String("out", "", "output directory for charts and exports")
	configFile := flag.String("config", "", "optional yaml config file")
	flag.Parse()

	// .env files are a convenience for local runs; absence is fine.
	_ = godotenv.Load()

	// Flags take precedence over everything else by becoming the
	// highest-priority environment values before config loads.
	if *input != "" {
		os.Setenv("SHOWLENS_INPUT_PATH", *input)
	}
	if *out != "" {
		os.Setenv("SHOWLENS_OUTPUT_DIR", *out)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	logger.InfoContext(ctx, "Starting show analysis",
		slog.String("input", cfg.Input.Path),
		slog.String("output_dir", cfg.Output.Dir))

	if err := run(ctx, cfg, logger); err != nil {
		logger.ErrorContext(ctx, "Analysis finished with errors", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.InfoContext(ctx, "Analysis complete")
}

// run executes the whole pipeline: load, clean, report, export. Reporting
// and export failures are isolated per step and surface as one joined
// error after every step had its chance to run.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	df, err := dataset.Load(cfg.Input.Path)
	if err != nil {
		return err
	}

	cleaned, stats, err := dataset.Clean(df)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "dataset cleaned",
		slog.Int("rows_in", stats.RowsIn),
		slog.Int("dropped_required", stats.DroppedRequired),
		slog.Int("dropped_non_numeric", stats.DroppedNonNumeric),
		slog.Int("dropped_null", stats.DroppedNull),
		slog.Int("rows_out", stats.RowsOut))

	shows, err := dataset.ToShows(cleaned)
	if err != nil {
		return err
	}
	if len(shows) == 0 {
		logger.WarnContext(ctx, "no usable rows survived cleaning; charts will be skipped")
	}

	renderer, err := report.NewRenderer(cfg.Output.Dir, logger)
	if err != nil {
		return err
	}

	steps := report.AnalysisSteps(renderer, shows, cfg.Analysis)
	steps = append(steps, exportSteps(cfg, shows)...)
	runErr := report.NewRunner(logger).Run(ctx, steps)

	printRankings(os.Stdout, shows, cfg.Analysis.TopShows)

	return runErr
}

// exportSteps appends the tabular exports to the reporting sequence, each
// as its own isolated step.
func exportSteps(cfg *config.Config, shows []domain.Show) []report.Step {
	csvWriter := exporter.NewCSVWriter(cfg.Output.Dir, nil)
	workbook := exporter.NewWorkbookWriter(cfg.Output.Dir, nil)
	a := cfg.Analysis

	return []report.Step{
		{
			Name: "export_csv",
			Run: func(ctx context.Context) error {
				if err := csvWriter.ExportGenreRatings(analytics.RatingByGenre(shows)); err != nil {
					return err
				}
				if err := csvWriter.ExportShows(exporter.FileTopShows, analytics.TopByRating(shows, a.TopShows, false)); err != nil {
					return err
				}
				if err := csvWriter.ExportShows(exporter.FileBottomShows, analytics.TopByRating(shows, a.TopShows, true)); err != nil {
					return err
				}
				if err := csvWriter.ExportGenreCounts(analytics.GenreFrequency(shows)); err != nil {
					return err
				}
				return csvWriter.ExportYearRatings(analytics.RatingByYear(shows, a.YearStart, a.YearEnd))
			},
		},
		{
			Name: "export_workbook",
			Run: func(ctx context.Context) error {
				return workbook.Write(exporter.Summary{
					GenreRatings: analytics.RatingByGenre(shows),
					TopShows:     analytics.TopByRating(shows, a.TopShows, false),
					BottomShows:  analytics.TopByRating(shows, a.TopShows, true),
					GenreCounts:  analytics.GenreFrequency(shows),
					YearRatings:  analytics.RatingByYear(shows, a.YearStart, a.YearEnd),
					YearGenre:    analytics.CountByYearAndGenre(shows, a.YearStart, a.YearEnd),
				})
			},
		},
	}
}

// printRankings writes the best and worst show tables to the terminal.
func printRankings(w io.Writer, shows []domain.Show, n int) {
	if len(shows) == 0 {
		return
	}
	printShowTable(w, fmt.Sprintf("Top %d shows", n), analytics.TopByRating(shows, n, false))
	printShowTable(w, fmt.Sprintf("Bottom %d shows", n), analytics.TopByRating(shows, n, true))
}

func printShowTable(w io.Writer, title string, shows []domain.Show) {
	fmt.Fprintf(w, "\n%s\n", title)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Title", "Primary Genre", "Rating"})
	for i, s := range shows {
		table.Append([]string{
			strconv.Itoa(i + 1),
			s.Title,
			s.PrimaryGenre(),
			strconv.FormatFloat(s.Rating, 'f', 1, 64),
		})
	}
	table.Render()
}
