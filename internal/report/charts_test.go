package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showlens/pkg/contracts/domain"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(t.TempDir(), nil)
	require.NoError(t, err)
	return r
}

func TestRatingByGenreChart(t *testing.T) {
	r := testRenderer(t)

	rows := []domain.GenreRating{
		{Genre: "Drama", MeanRating: 8.5, Count: 3},
		{Genre: "Comedy", MeanRating: 7.0, Count: 2},
	}
	require.NoError(t, r.RatingByGenre(rows))
	assert.FileExists(t, r.path(ChartRatingByGenre))
}

func TestDurationVsRatingChart(t *testing.T) {
	r := testRenderer(t)

	shows := []domain.Show{
		{Title: "A", Genres: "Drama,Crime", DurationMinutes: 45, Rating: 8.5},
		{Title: "B", Genres: "Comedy", DurationMinutes: 22, Rating: 7.0},
		{Title: "C", Genres: "Comedy", DurationMinutes: 25, Rating: 6.8},
	}
	require.NoError(t, r.DurationVsRating(shows))
	assert.FileExists(t, r.path(ChartDurationRating))
}

func TestTopShowsChart(t *testing.T) {
	r := testRenderer(t)

	shows := []domain.Show{
		{Title: "Best", Rating: 9.4},
		{Title: "Second", Rating: 9.1},
	}
	require.NoError(t, r.TopShows(shows, "Top 2 shows by rating", ChartTopShows))
	assert.FileExists(t, r.path(ChartTopShows))
}

func TestGenreYearHeatmapChart(t *testing.T) {
	r := testRenderer(t)

	m := domain.YearGenreMatrix{
		Years:  []int{2005, 2006, 2007},
		Genres: []string{"Comedy", "Drama"},
		Counts: [][]float64{{1, 0, 2}, {3, 1, 0}},
	}
	require.NoError(t, r.GenreYearHeatmap(m))
	assert.FileExists(t, r.path(ChartGenreYearHeatmap))
}

func TestRatingTrendChart(t *testing.T) {
	r := testRenderer(t)

	rows := []domain.YearRating{
		{Year: 2005, MeanRating: 7.2, Count: 4},
		{Year: 2008, MeanRating: 7.9, Count: 2},
	}
	require.NoError(t, r.RatingTrend(rows))
	assert.FileExists(t, r.path(ChartRatingTrend))
}

func TestHistogramCharts(t *testing.T) {
	r := testRenderer(t)

	shows := []domain.Show{
		{Title: "A", Rating: 6.5, DurationMinutes: 20},
		{Title: "B", Rating: 7.5, DurationMinutes: 45},
		{Title: "C", Rating: 8.0, DurationMinutes: 60},
		{Title: "D", Rating: 8.2, DurationMinutes: 42},
	}
	require.NoError(t, r.RatingHistogram(shows))
	require.NoError(t, r.DurationHistogram(shows))
	assert.FileExists(t, r.path(ChartRatingHistogram))
	assert.FileExists(t, r.path(ChartDurationHist))
}

func TestChartsSkipEmptyInput(t *testing.T) {
	r := testRenderer(t)

	assert.NoError(t, r.RatingByGenre(nil))
	assert.NoError(t, r.DurationVsRating(nil))
	assert.NoError(t, r.TopShows(nil, "empty", ChartTopShows))
	assert.NoError(t, r.GenreYearHeatmap(domain.YearGenreMatrix{}))
	assert.NoError(t, r.RatingTrend(nil))
	assert.NoError(t, r.RatingHistogram(nil))
	assert.NoError(t, r.GenreFrequency(nil))

	assert.NoFileExists(t, r.path(ChartTopShows))
}

func TestDensityCurve(t *testing.T) {
	values := []float64{6.0, 6.5, 7.0, 7.5, 8.0, 8.5, 9.0}

	curve := densityCurve(values, 10)

	require.NotEmpty(t, curve)
	for _, pt := range curve {
		assert.GreaterOrEqual(t, pt.Y, 0.0)
	}
	// The curve spans past the data range to let the tails fall off.
	assert.Less(t, curve[0].X, 6.0)
	assert.Greater(t, curve[len(curve)-1].X, 9.0)
}

func TestDensityCurveDegenerateInput(t *testing.T) {
	assert.Nil(t, densityCurve(nil, 10))
	assert.Nil(t, densityCurve([]float64{5}, 10))
	assert.Nil(t, densityCurve([]float64{5, 5, 5}, 10))
}
