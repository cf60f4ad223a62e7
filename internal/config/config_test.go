package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOWLENS_INPUT_PATH", "testdata/shows.csv")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "testdata/shows.csv", cfg.Input.Path)
	assert.Equal(t, DefaultOutputDir, cfg.Output.Dir)
	assert.Equal(t, DefaultTopShows, cfg.Analysis.TopShows)
	assert.Equal(t, DefaultYearStart, cfg.Analysis.YearStart)
	assert.Equal(t, DefaultYearEnd, cfg.Analysis.YearEnd)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingInputPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "showlens.yaml")
	content := `
input:
  path: data/imdb_tvshows.csv
output:
  dir: charts
analysis:
  top_shows: 10
  year_start: 2005
  year_end: 2015
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "data/imdb_tvshows.csv", cfg.Input.Path)
	assert.Equal(t, "charts", cfg.Output.Dir)
	assert.Equal(t, 10, cfg.Analysis.TopShows)
	assert.Equal(t, 2005, cfg.Analysis.YearStart)
	assert.Equal(t, 2015, cfg.Analysis.YearEnd)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "showlens.yaml")
	content := `
input:
  path: from_file.csv
analysis:
  top_shows: 10
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	t.Setenv("SHOWLENS_INPUT_PATH", "from_env.csv")
	t.Setenv("SHOWLENS_ANALYSIS_TOP_SHOWS", "20")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "from_env.csv", cfg.Input.Path)
	assert.Equal(t, 20, cfg.Analysis.TopShows)
}

func TestValidateRejectsInvertedYearRange(t *testing.T) {
	t.Setenv("SHOWLENS_INPUT_PATH", "shows.csv")
	t.Setenv("SHOWLENS_ANALYSIS_YEAR_START", "2019")
	t.Setenv("SHOWLENS_ANALYSIS_YEAR_END", "2001")

	_, err := Load("")
	require.Error(t, err)
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	t.Setenv("SHOWLENS_INPUT_PATH", "shows.csv")
	t.Setenv("SHOWLENS_LOGGING_LEVEL", "verbose")

	_, err := Load("")
	require.Error(t, err)
}

func TestRequiredColumns(t *testing.T) {
	cols := RequiredColumns()
	assert.Equal(t, []string{"title", "episodeduration(in minutes)", "genres", "rating"}, cols)
}
