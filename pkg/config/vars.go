package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "opendata"
)

// Dataset file names inside the data directory.
const (
	EmergencyFile    = "emergency.yml"
	FacultiesFile    = "faculties.yml"
	ProvincesFile    = "provinces.yml"
	UniversitiesFile = "universities.yml"
	FormationsDir    = "formations"
)

// DatasetPaths enumerates the data directory and every dataset path
// derived from it.
type DatasetPaths struct {
	Dir          string
	Emergency    string
	Faculties    string
	Provinces    string
	Universities string
	Formations   string
}

// NewDatasetPaths derives dataset file locations from a data directory.
func NewDatasetPaths(dir string) DatasetPaths {
	return DatasetPaths{
		Dir:          dir,
		Emergency:    filepath.Join(dir, EmergencyFile),
		Faculties:    filepath.Join(dir, FacultiesFile),
		Provinces:    filepath.Join(dir, ProvincesFile),
		Universities: filepath.Join(dir, UniversitiesFile),
		Formations:   filepath.Join(dir, FormationsDir),
	}
}

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/opendata by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/opendata/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/opendata/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
