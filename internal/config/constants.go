package config

// Application constants for the showlens analysis pipeline.
const (
	// Application info
	AppName = "showlens"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. SHOWLENS_INPUT_PATH, SHOWLENS_ANALYSIS_TOP_SHOWS.
	EnvPrefix = "SHOWLENS"

	// Analytical choices. The year bounds and top-N are deliberate,
	// documented defaults rather than tunables: the 2001-2019 window
	// keeps the year-based reports on a consistent range, and 15 is
	// the established size of the best/worst show lists.
	DefaultTopShows  = 15
	DefaultYearStart = 2001
	DefaultYearEnd   = 2019

	// Output defaults
	DefaultOutputDir = "output"

	// Logging defaults
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultLogOutput   = "console"
	DefaultLogFilePath = "logs/showlens.log"

	// Required dataset columns after name normalization. DurationColumn
	// carries the source header verbatim, parentheses included.
	TitleColumn    = "title"
	GenresColumn   = "genres"
	DurationColumn = "episodeduration(in minutes)"
	RatingColumn   = "rating"
	YearsColumn    = "years"
)

// RequiredColumns lists the columns every usable record must populate.
func RequiredColumns() []string {
	return []string{TitleColumn, DurationColumn, GenresColumn, RatingColumn}
}
