// Package exporter writes the aggregate analysis tables to disk.
//
// Two exporters share the output directory with the rendered charts:
//
// CSVWriter: one CSV per aggregate table (rating by genre, top and bottom
// show lists, genre frequency, rating by year), with a UTF-8 BOM for Excel
// compatibility.
//
// WorkbookWriter: a single summary.xlsx collecting every aggregate plus
// the year x genre count matrix, one sheet per table.
package exporter
