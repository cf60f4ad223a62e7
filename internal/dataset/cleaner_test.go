package dataset

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "showlens/internal/errors"
)

func frameFromRecords(t *testing.T, records [][]string) dataframe.DataFrame {
	t.Helper()
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	require.NoError(t, df.Err)
	return df
}

func rawShowRecords() [][]string {
	return [][]string{
		{" Title ", "Genres", "EpisodeDuration(in minutes)", "Rating", "Years"},
		{"A", "Drama,Crime", "45", "8.5", "2010"},
		{"B", "Comedy", "22", "7.0", "2012"},
	}
}

func TestCleanKeepsValidRows(t *testing.T) {
	df := frameFromRecords(t, rawShowRecords())

	cleaned, stats, err := Clean(df)
	require.NoError(t, err)

	assert.Equal(t, 2, cleaned.Nrow())
	assert.Equal(t, Stats{RowsIn: 2, RowsOut: 2}, stats)
	assert.Equal(t,
		[]string{"title", "genres", "episodeduration(in minutes)", "rating", "years"},
		cleaned.Names())
}

func TestCleanDropsNullsInRequiredColumns(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"title", "genres", "episodeduration(in minutes)", "rating", "years"},
		{"A", "Drama", "45", "8.5", "2010"},
		{"", "Comedy", "22", "7.0", "2011"},
		{"C", "NaN", "30", "6.0", "2012"},
		{"D", "Action", "NaN", "5.0", "2013"},
		{"E", "Horror", "60", "", "2014"},
	})

	cleaned, stats, err := Clean(df)
	require.NoError(t, err)

	assert.Equal(t, 1, cleaned.Nrow())
	assert.Equal(t, 4, stats.DroppedRequired)
	assert.Equal(t, 1, stats.RowsOut)
}

func TestCleanDropsCoercionFailures(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"title", "genres", "episodeduration(in minutes)", "rating", "years"},
		{"A", "Drama", "45", "N/A", "2010"},
		{"B", "Comedy", "forty", "7.0", "2011"},
		{"C", "Action", "30", "6.5", "2012"},
	})

	cleaned, stats, err := Clean(df)
	require.NoError(t, err)

	assert.Equal(t, 1, cleaned.Nrow())
	assert.Equal(t, 2, stats.DroppedNonNumeric)

	shows, err := ToShows(cleaned)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "C", shows[0].Title)
}

func TestCleanDropsRemainingNulls(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"title", "genres", "episodeduration(in minutes)", "rating", "years"},
		{"A", "Drama", "45", "8.5", ""},
		{"B", "Comedy", "22", "7.0", "2011"},
	})

	cleaned, stats, err := Clean(df)
	require.NoError(t, err)

	assert.Equal(t, 1, cleaned.Nrow())
	assert.Equal(t, 1, stats.DroppedNull)
}

func TestCleanOutputHasNoNulls(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"title", "genres", "episodeduration(in minutes)", "rating", "years"},
		{"A", "Drama", "45", "8.5", "2010"},
		{"", "", "NaN", "NaN", "NaN"},
		{"B", "Comedy", "bad", "7.0", "2011"},
		{"C", "Action", "30", "6.5", "2012"},
	})

	cleaned, _, err := Clean(df)
	require.NoError(t, err)

	for _, row := range cleaned.Records()[1:] {
		for _, cell := range row {
			assert.False(t, isNull(cell), "cleaned table must hold no nulls")
		}
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{" Title ", "Genres", "EpisodeDuration(in minutes)", "Rating", "Years"},
		{"A", "Drama,Crime", "45", "8.50", "2010"},
		{"B", "Comedy", "22", "7", "2012"},
		{"bad", "", "x", "y", ""},
	})

	once, stats1, err := Clean(df)
	require.NoError(t, err)
	twice, stats2, err := Clean(once)
	require.NoError(t, err)

	assert.Equal(t, once.Records(), twice.Records())
	assert.Equal(t, stats1.RowsOut, stats2.RowsIn)
	assert.Zero(t, stats2.DroppedRequired+stats2.DroppedNonNumeric+stats2.DroppedNull)
}

func TestCleanRenamesTitleLikeColumn(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"Show Title", "genres", "episodeduration(in minutes)", "rating", "years"},
		{"A", "Drama", "45", "8.5", "2010"},
	})

	cleaned, _, err := Clean(df)
	require.NoError(t, err)

	assert.Contains(t, cleaned.Names(), "title")

	shows, err := ToShows(cleaned)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "A", shows[0].Title)
}

func TestCleanFailsFastOnMissingSchema(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"name", "category", "length", "score"},
		{"A", "Drama", "45", "8.5"},
	})

	_, _, err := Clean(df)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
}

func TestCleanEmptyResult(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"title", "genres", "episodeduration(in minutes)", "rating"},
		{"A", "Drama", "not a number", "8.5"},
	})

	cleaned, stats, err := Clean(df)
	require.NoError(t, err)

	assert.Equal(t, 0, cleaned.Nrow())
	assert.Equal(t, 1, stats.DroppedNonNumeric)

	shows, err := ToShows(cleaned)
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestToShows(t *testing.T) {
	df := frameFromRecords(t, rawShowRecords())
	cleaned, _, err := Clean(df)
	require.NoError(t, err)

	shows, err := ToShows(cleaned)
	require.NoError(t, err)
	require.Len(t, shows, 2)

	assert.Equal(t, "A", shows[0].Title)
	assert.Equal(t, "Drama,Crime", shows[0].Genres)
	assert.Equal(t, 45.0, shows[0].DurationMinutes)
	assert.Equal(t, 8.5, shows[0].Rating)
	assert.Equal(t, "2010", shows[0].Years)

	assert.Equal(t, "B", shows[1].Title)
	assert.Equal(t, 7.0, shows[1].Rating)
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		cell   string
		want   float64
		wantOK bool
	}{
		{"45", 45, true},
		{" 8.5 ", 8.5, true},
		{"1,234", 1234, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, ok := parseNumeric(tt.cell)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
