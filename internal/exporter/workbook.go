package exporter

import (
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	apperrors "showlens/internal/errors"
	"showlens/pkg/contracts/domain"
)

// WorkbookName is the summary workbook file name.
const WorkbookName = "summary.xlsx"

// Summary bundles every aggregate table for the workbook export.
type Summary struct {
	GenreRatings []domain.GenreRating
	TopShows     []domain.Show
	BottomShows  []domain.Show
	GenreCounts  []domain.GenreCount
	YearRatings  []domain.YearRating
	YearGenre    domain.YearGenreMatrix
}

// WorkbookWriter collects the aggregate tables into one Excel workbook,
// a sheet per table.
type WorkbookWriter struct {
	dir    string
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer targeting the output directory.
func NewWorkbookWriter(dir string, logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{dir: dir, logger: logger}
}

// Write builds and saves the summary workbook.
func (w *WorkbookWriter) Write(summary Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeGenreRatings(f, summary.GenreRatings); err != nil {
		return err
	}
	if err := w.writeShows(f, "Top Shows", summary.TopShows); err != nil {
		return err
	}
	if err := w.writeShows(f, "Bottom Shows", summary.BottomShows); err != nil {
		return err
	}
	if err := w.writeGenreCounts(f, summary.GenreCounts); err != nil {
		return err
	}
	if err := w.writeYearRatings(f, summary.YearRatings); err != nil {
		return err
	}
	if err := w.writeYearGenreMatrix(f, summary.YearGenre); err != nil {
		return err
	}

	// Drop the default sheet excelize creates with the file.
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx >= 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return apperrors.NewExportError(WorkbookName, err)
		}
	}

	path := filepath.Join(w.dir, WorkbookName)
	if err := f.SaveAs(path); err != nil {
		return apperrors.NewExportError(WorkbookName, err)
	}
	w.logger.Info("workbook written", slog.String("path", path))
	return nil
}

func (w *WorkbookWriter) writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return apperrors.NewExportError(WorkbookName, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return apperrors.NewExportError(WorkbookName, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.NewExportError(WorkbookName, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return apperrors.NewExportError(WorkbookName, err)
		}
	}
	return nil
}

func (w *WorkbookWriter) writeGenreRatings(f *excelize.File, rows []domain.GenreRating) error {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = []interface{}{row.Genre, row.MeanRating, row.Count}
	}
	return w.writeSheet(f, "Rating by Genre",
		[]interface{}{"Genre", "Mean Rating", "Shows"}, out)
}

func (w *WorkbookWriter) writeShows(f *excelize.File, sheet string, shows []domain.Show) error {
	out := make([][]interface{}, len(shows))
	for i, s := range shows {
		out[i] = []interface{}{s.Title, s.Genres, s.DurationMinutes, s.Rating, s.Years}
	}
	return w.writeSheet(f, sheet,
		[]interface{}{"Title", "Genres", "Duration (min)", "Rating", "Years"}, out)
}

func (w *WorkbookWriter) writeGenreCounts(f *excelize.File, rows []domain.GenreCount) error {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = []interface{}{row.Genre, row.Count}
	}
	return w.writeSheet(f, "Genre Frequency",
		[]interface{}{"Genre", "Shows"}, out)
}

func (w *WorkbookWriter) writeYearRatings(f *excelize.File, rows []domain.YearRating) error {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = []interface{}{row.Year, row.MeanRating, row.Count}
	}
	return w.writeSheet(f, "Rating by Year",
		[]interface{}{"Year", "Mean Rating", "Shows"}, out)
}

// writeYearGenreMatrix lays the count matrix out with genres down the first
// column and one column per year, mirroring the heatmap orientation.
func (w *WorkbookWriter) writeYearGenreMatrix(f *excelize.File, m domain.YearGenreMatrix) error {
	header := make([]interface{}, 0, len(m.Years)+1)
	header = append(header, "Genre")
	for _, year := range m.Years {
		header = append(header, strconv.Itoa(year))
	}

	out := make([][]interface{}, len(m.Genres))
	for i, genre := range m.Genres {
		row := make([]interface{}, 0, len(m.Years)+1)
		row = append(row, genre)
		for j := range m.Years {
			row = append(row, int(m.Counts[i][j]))
		}
		out[i] = row
	}
	return w.writeSheet(f, "Genre by Year", header, out)
}
