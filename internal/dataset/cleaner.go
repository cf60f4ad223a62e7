package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"showlens/internal/config"
	apperrors "showlens/internal/errors"
	"showlens/pkg/contracts/domain"
)

// Stats records how many rows each cleaning stage removed. The counts are
// logged after cleaning so silent data loss shows up in the run output.
type Stats struct {
	RowsIn            int `json:"rows_in"`
	DroppedRequired   int `json:"dropped_required"`    // null in a required column
	DroppedNonNumeric int `json:"dropped_non_numeric"` // duration or rating failed coercion
	DroppedNull       int `json:"dropped_null"`        // null in any remaining column
	RowsOut           int `json:"rows_out"`
}

// Clean normalizes the schema and removes incomplete or invalid records.
// In order, over every row:
//
//  1. column names are whitespace-trimmed and lowercased
//  2. if no column is named exactly "title", the first column whose name
//     contains "title" is renamed to it
//  3. the required columns (title, episodeduration(in minutes), genres,
//     rating) must all exist; otherwise a SCHEMA error is returned
//  4. the literal string "NaN" and the empty string count as null
//  5. rows with a null in a required column are dropped
//  6. duration and rating are coerced to numeric; rows whose coercion
//     fails or yields a non-finite value are dropped
//  7. rows with any remaining null are dropped
//
// Rows are excluded, never repaired. Clean is idempotent: running it over
// its own output drops nothing and changes nothing.
func Clean(df dataframe.DataFrame) (dataframe.DataFrame, Stats, error) {
	var stats Stats

	df = normalizeColumns(df)
	if df.Err != nil {
		return df, stats, apperrors.NewParsingError("column normalization failed", df.Err)
	}

	if missing := missingRequired(df.Names()); len(missing) > 0 {
		return df, stats, apperrors.NewSchemaError(missing)
	}

	records := df.Records()
	header := records[0]
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	durCol := idx[config.DurationColumn]
	ratingCol := idx[config.RatingColumn]
	required := []int{
		idx[config.TitleColumn],
		durCol,
		idx[config.GenresColumn],
		ratingCol,
	}

	stats.RowsIn = len(records) - 1
	out := [][]string{header}

rows:
	for _, row := range records[1:] {
		for _, col := range required {
			if isNull(row[col]) {
				stats.DroppedRequired++
				continue rows
			}
		}

		duration, ok := parseNumeric(row[durCol])
		if !ok {
			stats.DroppedNonNumeric++
			continue
		}
		rating, ok := parseNumeric(row[ratingCol])
		if !ok {
			stats.DroppedNonNumeric++
			continue
		}

		for _, cell := range row {
			if isNull(cell) {
				stats.DroppedNull++
				continue rows
			}
		}

		clean := make([]string, len(row))
		copy(clean, row)
		clean[durCol] = strconv.FormatFloat(duration, 'g', -1, 64)
		clean[ratingCol] = strconv.FormatFloat(rating, 'g', -1, 64)
		out = append(out, clean)
	}
	stats.RowsOut = len(out) - 1

	if stats.RowsOut == 0 {
		return emptyFrame(header), stats, nil
	}

	cleaned := dataframe.LoadRecords(out,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if cleaned.Err != nil {
		return cleaned, stats, apperrors.NewParsingError("rebuilding cleaned table failed", cleaned.Err)
	}
	return cleaned, stats, nil
}

// ToShows converts a cleaned dataframe into typed records. It trusts the
// cleaning invariants and errors if a cell still fails numeric coercion.
func ToShows(df dataframe.DataFrame) ([]domain.Show, error) {
	if df.Nrow() == 0 {
		return nil, nil
	}

	records := df.Records()
	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[name] = i
	}
	yearsCol, hasYears := idx[config.YearsColumn]

	shows := make([]domain.Show, 0, len(records)-1)
	for i, row := range records[1:] {
		duration, ok := parseNumeric(row[idx[config.DurationColumn]])
		if !ok {
			return nil, apperrors.NewParsingError("non-numeric duration in cleaned table", nil).
				WithContext("row", i)
		}
		rating, ok := parseNumeric(row[idx[config.RatingColumn]])
		if !ok {
			return nil, apperrors.NewParsingError("non-numeric rating in cleaned table", nil).
				WithContext("row", i)
		}

		show := domain.Show{
			Title:           row[idx[config.TitleColumn]],
			Genres:          row[idx[config.GenresColumn]],
			DurationMinutes: duration,
			Rating:          rating,
		}
		if hasYears {
			show.Years = row[yearsCol]
		}
		shows = append(shows, show)
	}
	return shows, nil
}

// normalizeColumns lowercases and trims every column name, then applies
// the best-effort title rename.
func normalizeColumns(df dataframe.DataFrame) dataframe.DataFrame {
	names := df.Names()
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = strings.ToLower(strings.TrimSpace(name))
	}
	if err := df.SetNames(normalized...); err != nil {
		df.Err = err
		return df
	}

	if hasColumn(normalized, config.TitleColumn) {
		return df
	}
	for _, name := range normalized {
		if strings.Contains(name, config.TitleColumn) {
			return df.Rename(config.TitleColumn, name)
		}
	}
	// No title-like column at all; the required-columns check reports it.
	return df
}

func missingRequired(names []string) []string {
	var missing []string
	for _, col := range config.RequiredColumns() {
		if !hasColumn(names, col) {
			missing = append(missing, col)
		}
	}
	return missing
}

func hasColumn(names []string, col string) bool {
	for _, name := range names {
		if name == col {
			return true
		}
	}
	return false
}

// isNull reports whether a raw cell counts as a null marker.
func isNull(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	return trimmed == "" || trimmed == "NaN"
}

// parseNumeric coerces a raw cell to a finite float. Thousands separators
// are tolerated the way source spreadsheets emit them.
func parseNumeric(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(cell), ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// emptyFrame builds a zero-row frame that still carries the schema, so
// downstream code can report an empty dataset instead of a missing column.
func emptyFrame(header []string) dataframe.DataFrame {
	cols := make([]series.Series, len(header))
	for i, name := range header {
		cols[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(cols...)
}
