// Package config provides configuration management for opendata.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > .env > config.yaml >
// defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode,
//     path, batch_size
//   - Log: level, format, destination
//   - General: data_dir, jobs_number
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use OPENDATA_ prefix with underscores for nesting:
//
//	OPENDATA_DATABASE_DRIVER=sqlite
//	OPENDATA_DATABASE_PATH=/tmp/opendata.sqlite
//	OPENDATA_DATA_DIR=./data
//	OPENDATA_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete opendata configuration.
type Config struct {
	// Database contains connection settings of the relational store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// DataDir is the directory with emergency.yml, faculties.yml,
	// provinces.yml, universities.yml and the formations directory.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// JobsNumber is the number of concurrent workers used to parse
	// formations files.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains the relational store connection parameters.
type DatabaseConfig struct {
	// Driver selects the store: "postgres" or "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Path is the SQLite database file. Used only with the "sqlite" driver,
	// ":memory:" keeps the store in memory.
	Path string `mapstructure:"path" yaml:"path"`

	// BatchSize is the number of neighborhoods inserted per statement.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:    "postgres",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "opendata",
			SSLMode:   "disable",
			Path:      "opendata.sqlite",
			BatchSize: 1_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		DataDir:    "data",
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// DatasetPaths returns locations of all dataset files derived from
// DataDir.
func (c *Config) DatasetPaths() DatasetPaths {
	return NewDatasetPaths(c.DataDir)
}
