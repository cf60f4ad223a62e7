package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showlens/internal/config"
	"showlens/pkg/contracts/domain"
)

func sampleShows() []domain.Show {
	return []domain.Show{
		{Title: "A", Genres: "Drama,Crime", DurationMinutes: 45, Rating: 8.5, Years: "2010-2015"},
		{Title: "B", Genres: "Comedy", DurationMinutes: 22, Rating: 7.0, Years: "2012"},
		{Title: "C", Genres: "Drama", DurationMinutes: 60, Rating: 6.1, Years: "2005"},
	}
}

func TestExportStepsWriteEveryTable(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Output: config.OutputConfig{Dir: dir},
		Analysis: config.AnalysisConfig{
			TopShows:  2,
			YearStart: 2001,
			YearEnd:   2019,
		},
	}

	steps := exportSteps(cfg, sampleShows())
	require.Len(t, steps, 2)
	assert.Equal(t, "export_csv", steps[0].Name)
	assert.Equal(t, "export_workbook", steps[1].Name)

	for _, step := range steps {
		require.NoError(t, step.Run(context.Background()))
	}

	for _, name := range []string{
		"rating_by_genre.csv",
		"top_rated_shows.csv",
		"lowest_rated_shows.csv",
		"genre_frequency.csv",
		"avg_rating_by_year.csv",
		"summary.xlsx",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestPrintRankings(t *testing.T) {
	var buf bytes.Buffer
	printRankings(&buf, sampleShows(), 2)

	out := buf.String()
	assert.Contains(t, out, "Top 2 shows")
	assert.Contains(t, out, "Bottom 2 shows")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "Drama")
	assert.Contains(t, out, "8.5")
}

func TestPrintRankingsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printRankings(&buf, nil, 15)
	assert.Empty(t, buf.String())
}
