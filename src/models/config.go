package models

// MConfig Structure
type MConfig struct {
	Name     string         `yaml:"name"`
	Host     string         `yaml:"host"`
	Port     int            `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	Dataset  MDatasetConfig `yaml:"dataset"`
}

type MDatasetConfig struct {
	// Backend selects the dataset source: csv (default), sqlite or postgres.
	Backend string `yaml:"backend"`

	// Paths is the ordered list of candidate CSV locations; the first
	// existing file wins.
	Paths []string `yaml:"paths"`

	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
	Table              string `yaml:"table"`
}
