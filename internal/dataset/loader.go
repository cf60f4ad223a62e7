package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	apperrors "showlens/internal/errors"
)

// Load reads the raw show dataset into a dataframe of string cells. Type
// detection is disabled on purpose: the cleaner owns all coercion so that
// malformed numerics are dropped instead of silently reinterpreted.
//
// The container is chosen by extension: .xlsx and .xls files go through
// the Excel reader, everything else is treated as CSV.
func Load(path string) (dataframe.DataFrame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return loadExcel(path)
	default:
		return loadCSV(path)
	}
}

func loadCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, apperrors.NewStorageError("cannot open dataset", err).
			WithContext("path", path)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewParsingError("cannot parse csv dataset", df.Err).
			WithContext("path", path)
	}
	return df, nil
}

// loadExcel reads the first sheet that actually carries rows. Source
// workbooks sometimes hide the data behind empty cover sheets.
func loadExcel(path string) (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, apperrors.NewStorageError("cannot open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	var rows [][]string
	for _, name := range f.GetSheetList() {
		sheetRows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if len(sheetRows) > 1 {
			rows = sheetRows
			break
		}
	}
	if len(rows) < 2 {
		return dataframe.DataFrame{}, apperrors.NewParsingError(
			fmt.Sprintf("no sheet with data rows in %s", filepath.Base(path)), nil)
	}

	// excelize omits trailing empty cells, so pad every row out to the
	// header width before handing the records to gota.
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row[:width]
	}

	df := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewParsingError("cannot load workbook rows", df.Err).
			WithContext("path", path)
	}
	return df, nil
}
