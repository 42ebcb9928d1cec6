// Package config resolves the analysis configuration from defaults, an optional
// YAML file, a .env file and COURSERANK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank"
	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/parser"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "COURSERANK"

// Config represents the complete program configuration
type Config struct {
	Input     string       `yaml:"input" envconfig:"INPUT"`
	OutputDir string       `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	Sheet     string       `yaml:"sheet" envconfig:"SHEET"`
	Layout    LayoutConfig `yaml:"layout" envconfig:"LAYOUT"`
	Summary   bool         `yaml:"summary" envconfig:"SUMMARY"`
	Workbook  bool         `yaml:"workbook" envconfig:"WORKBOOK"`
	Strict    bool         `yaml:"strict" envconfig:"STRICT"`
	LogLevel  string       `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// LayoutConfig locates course headers and responses. Rows are zero-based,
// columns are spreadsheet letters.
type LayoutConfig struct {
	HeaderRow int    `yaml:"header_row" envconfig:"HEADER_ROW"`
	DataRow   int    `yaml:"data_row" envconfig:"DATA_ROW"`
	Columns   string `yaml:"columns" envconfig:"COLUMNS"`
}

// Default returns the configuration for the exit survey extract.
func Default() *Config {
	layout := courserank.DefaultLayout()
	return &Config{
		Input:     courserank.DefaultInput,
		OutputDir: courserank.DefaultOutputDir,
		Layout: LayoutConfig{
			HeaderRow: layout.HeaderRow,
			DataRow:   layout.DataStartRow,
			Columns:   "L:S",
		},
		LogLevel: "info",
	}
}

// Load builds the configuration. Later sources override earlier ones:
// defaults, the YAML file at path (if non-empty), .env, then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the layout and log level.
func (c *Config) Validate() error {
	if _, err := c.ToLayout(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ToLayout converts the layout section to analysis coordinates.
func (c *Config) ToLayout() (courserank.Layout, error) {
	start, end, err := parser.ParseColumnSpan(c.Layout.Columns)
	if err != nil {
		return courserank.Layout{}, err
	}
	layout := courserank.Layout{
		HeaderRow:    c.Layout.HeaderRow,
		DataStartRow: c.Layout.DataRow,
		ColStart:     start,
		ColEnd:       end,
	}
	return layout, layout.Validate()
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Options builds analysis options from the configuration.
func (c *Config) Options(logger *slog.Logger) (courserank.Options, error) {
	layout, err := c.ToLayout()
	if err != nil {
		return courserank.Options{}, err
	}
	return courserank.Options{
		Layout:    layout,
		Sheet:     c.Sheet,
		OutputDir: c.OutputDir,
		Summary:   c.Summary,
		Workbook:  c.Workbook,
		Logger:    logger,
	}, nil
}
