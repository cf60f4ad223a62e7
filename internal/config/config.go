package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig locates the raw dataset.
type InputConfig struct {
	// Path is the delimited tabular file to analyze. CSV by default;
	// .xlsx/.xls files are read through the Excel loader.
	Path string `yaml:"path" envconfig:"PATH" validate:"required"`
}

// OutputConfig controls where rendered charts and exports land.
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" default:"output" validate:"required"`
}

// AnalysisConfig carries the fixed analytical choices. The defaults are the
// documented constants; they are surfaced here so a deployment can override
// them without a rebuild.
type AnalysisConfig struct {
	TopShows  int `yaml:"top_shows" envconfig:"TOP_SHOWS" default:"15" validate:"min=1"`
	YearStart int `yaml:"year_start" envconfig:"YEAR_START" default:"2001" validate:"min=1900"`
	YearEnd   int `yaml:"year_end" envconfig:"YEAR_END" default:"2019" validate:"min=1900,gtefield=YearStart"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/showlens.log"`
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence, then validates
// the result. An empty configFile skips the file stage.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// envconfig applies struct defaults even when the variables are unset.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = merge(*fileCfg, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge overlays env config on top of file config. A file value wins only
// where the env stage left the field empty or at its struct default.
func merge(fileCfg, envCfg Config) Config {
	out := envCfg
	if out.Input.Path == "" {
		out.Input.Path = fileCfg.Input.Path
	}
	if fileCfg.Output.Dir != "" && out.Output.Dir == DefaultOutputDir {
		out.Output.Dir = fileCfg.Output.Dir
	}
	if fileCfg.Analysis.TopShows != 0 && out.Analysis.TopShows == DefaultTopShows {
		out.Analysis.TopShows = fileCfg.Analysis.TopShows
	}
	if fileCfg.Analysis.YearStart != 0 && out.Analysis.YearStart == DefaultYearStart {
		out.Analysis.YearStart = fileCfg.Analysis.YearStart
	}
	if fileCfg.Analysis.YearEnd != 0 && out.Analysis.YearEnd == DefaultYearEnd {
		out.Analysis.YearEnd = fileCfg.Analysis.YearEnd
	}
	if fileCfg.Logging.Level != "" && out.Logging.Level == DefaultLogLevel {
		out.Logging.Level = fileCfg.Logging.Level
	}
	if fileCfg.Logging.Format != "" && out.Logging.Format == DefaultLogFormat {
		out.Logging.Format = fileCfg.Logging.Format
	}
	if fileCfg.Logging.Output != "" && out.Logging.Output == DefaultLogOutput {
		out.Logging.Output = fileCfg.Logging.Output
	}
	if fileCfg.Logging.FilePath != "" && out.Logging.FilePath == DefaultLogFilePath {
		out.Logging.FilePath = fileCfg.Logging.FilePath
	}
	return out
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
