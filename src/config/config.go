package config

import (
	"fmt"
	"os"

	"coinscope/src/models"
	"coinscope/src/utils"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation and fills defaults
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Dataset backend defaults to CSV with the standard candidate paths.
	switch c.Dataset.Backend {
	case "":
		c.Dataset.Backend = "csv"
	case "csv", "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown dataset backend: %s (must be csv, sqlite or postgres)", c.Dataset.Backend)
	}

	if c.Dataset.Backend == "csv" && len(c.Dataset.Paths) == 0 {
		c.Dataset.Paths = utils.DefaultDatasetPaths
	}
	if c.Dataset.Backend == "sqlite" && c.Dataset.DBPath == "" {
		return fmt.Errorf("dataset db_path cannot be empty for sqlite backend")
	}
	if c.Dataset.Backend == "postgres" && c.Dataset.DBConnectionString == "" {
		return fmt.Errorf("dataset db_connection_string cannot be empty for postgres backend")
	}
	if c.Dataset.Table == "" {
		c.Dataset.Table = "coins"
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
