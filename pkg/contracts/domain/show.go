package domain

import (
	"regexp"
	"strings"
)

// yearRe matches the first 4-digit run inside a free-text year range
// such as "2001-2015" or "Between 1999 and 2003".
var yearRe = regexp.MustCompile(`\d{4}`)

// Show represents one cleaned television show record. It is the Single
// Source of Truth for show data across the system: the cleaner guarantees
// that Title and Genres are non-empty and that DurationMinutes and Rating
// are finite numbers, and every analytics and reporting consumer relies on
// those invariants.
type Show struct {
	// Title is the show title. No uniqueness constraint; two shows may
	// share a title.
	Title string `json:"title" csv:"Title" validate:"required"`

	// Genres is the comma-joined genre list exactly as it appears in the
	// source data (e.g. "Drama,Crime"). The first element is the primary
	// genre.
	Genres string `json:"genres" csv:"Genres" validate:"required"`

	// DurationMinutes is the episode duration in minutes.
	DurationMinutes float64 `json:"duration_minutes" csv:"DurationMinutes"`

	// Rating is the show rating. Not range-validated: malformed source
	// data may carry values outside the usual 0-10 scale.
	Rating float64 `json:"rating" csv:"Rating"`

	// Years is the free-text years-active field (e.g. "2001-2015").
	// May be empty; the year-based reports skip shows without a
	// recognizable start year.
	Years string `json:"years" csv:"Years"`
}

// PrimaryGenre returns the first entry of the comma-separated genre list,
// with surrounding whitespace trimmed so that "Drama, Comedy" and
// "Drama,Comedy" group identically.
func (s Show) PrimaryGenre() string {
	return PrimaryGenre(s.Genres)
}

// PrimaryGenre extracts the primary genre from a comma-joined genre field.
// An empty field yields an empty string.
func PrimaryGenre(genres string) string {
	first, _, _ := strings.Cut(genres, ",")
	return strings.TrimSpace(first)
}

// ExtractYearStart scans a free-text years field for the first 4-digit run
// and returns it as the show's debut year. The second return is false when
// the field contains no 4-digit number.
func ExtractYearStart(years string) (int, bool) {
	m := yearRe.FindString(years)
	if m == "" {
		return 0, false
	}
	year := 0
	for _, r := range m {
		year = year*10 + int(r-'0')
	}
	return year, true
}

// YearStart is the convenience form of ExtractYearStart on a Show.
func (s Show) YearStart() (int, bool) {
	return ExtractYearStart(s.Years)
}
