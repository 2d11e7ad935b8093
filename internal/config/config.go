// Package config defines the loader configuration and how it is assembled.
//
// Precedence (low -> high): defaults, YAML file, FOOTBALLDB_* environment
// variables, then command line flags applied by the caller.
package config

import (
	"fmt"
	"strings"

	"github.com/nao1215/footballdb/internal/logger"
)

// Fixed input file names inside DataDir.
const (
	ReceivingFile = "receiving.csv"
	RosterFile    = "roster.csv"
)

// Defaults applied by New.
const (
	DefaultDataDir    = "Data"
	DefaultDBPath     = "football_data.db"
	DefaultSampleSize = 3
	DefaultLogLevel   = "info"
)

// Config contains process configuration.
type Config struct {
	// DataDir is the directory holding receiving.csv and roster.csv.
	DataDir string `koanf:"data_dir"`

	// DBPath is the SQLite database file to write.
	DBPath string `koanf:"db_path"`

	// SampleSize is the number of rows printed per table after loading.
	SampleSize int `koanf:"sample_size"`

	// MetricsFile, when set, receives Prometheus text-format run metrics.
	MetricsFile string `koanf:"metrics_file"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		DataDir:    DefaultDataDir,
		DBPath:     DefaultDBPath,
		SampleSize: DefaultSampleSize,
		LogLevel:   DefaultLogLevel,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	}
	if c.SampleSize < 0 {
		return fmt.Errorf("%w: sample_size must not be negative, got %d", ErrInvalidConfig, c.SampleSize)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
