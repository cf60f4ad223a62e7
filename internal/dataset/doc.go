// Package dataset loads and cleans the raw television show table.
//
// Loading produces a gota dataframe of untyped string cells from either a
// CSV file or an Excel workbook. Cleaning normalizes the column names,
// resolves the title column, validates the required schema, and drops every
// row that is incomplete or fails numeric coercion, reporting per-stage
// drop counts. The cleaned frame is converted into []domain.Show and
// treated as read-only by every downstream report.
package dataset
