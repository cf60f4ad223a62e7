package exporter

import (
	"strconv"

	"showlens/pkg/contracts/domain"
)

// Export file names, one per aggregate table.
const (
	FileGenreRatings = "rating_by_genre.csv"
	FileTopShows     = "top_rated_shows.csv"
	FileBottomShows  = "lowest_rated_shows.csv"
	FileGenreCounts  = "genre_frequency.csv"
	FileYearRatings  = "avg_rating_by_year.csv"
)

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ExportGenreRatings writes the rating-by-genre table in report order.
func (w *CSVWriter) ExportGenreRatings(rows []domain.GenreRating) error {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{row.Genre, formatRating(row.MeanRating), strconv.Itoa(row.Count)}
	}
	return w.WriteSimpleCSV(FileGenreRatings, []string{"Genre", "MeanRating", "Count"}, records)
}

// ExportShows writes a ranked show list, top or bottom, keeping the list's
// own ordering.
func (w *CSVWriter) ExportShows(name string, shows []domain.Show) error {
	records := make([][]string, len(shows))
	for i, s := range shows {
		records[i] = []string{
			s.Title,
			s.Genres,
			strconv.FormatFloat(s.DurationMinutes, 'g', -1, 64),
			formatRating(s.Rating),
			s.Years,
		}
	}
	return w.WriteSimpleCSV(name,
		[]string{"Title", "Genres", "DurationMinutes", "Rating", "Years"}, records)
}

// ExportGenreCounts writes the primary-genre frequency table.
func (w *CSVWriter) ExportGenreCounts(rows []domain.GenreCount) error {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{row.Genre, strconv.Itoa(row.Count)}
	}
	return w.WriteSimpleCSV(FileGenreCounts, []string{"Genre", "Count"}, records)
}

// ExportYearRatings writes the mean rating per debut year, year ascending.
func (w *CSVWriter) ExportYearRatings(rows []domain.YearRating) error {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{strconv.Itoa(row.Year), formatRating(row.MeanRating), strconv.Itoa(row.Count)}
	}
	return w.WriteSimpleCSV(FileYearRatings, []string{"Year", "MeanRating", "Count"}, records)
}
