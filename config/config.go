package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level YAML configuration.
type Config struct {
	Connection Connection `yaml:"connection"`
	Output     Output     `yaml:"output"`
	Tables     []string   `yaml:"tables"`
	Log        Log        `yaml:"log"`
}

// Connection holds database connection parameters.
type Connection struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Output holds code generation output parameters.
type Output struct {
	Package   string `yaml:"package"`
	Dir       string `yaml:"dir"`
	Overwrite bool   `yaml:"overwrite"`
}

// Log holds logger parameters.
type Log struct {
	Level  string `yaml:"level"`  // silent, error, warn, info
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Default returns a Config filled from environment variables only, for
// running without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	cfg.fillDefaults()
	return cfg
}

// applyEnv fills in empty Connection fields from environment variables.
// YAML values take precedence; env vars are used only as fallback.
func (c *Config) applyEnv() {
	if c.Connection.Driver == "" {
		c.Connection.Driver = os.Getenv("BEANGEN_DRIVER")
	}
	if c.Connection.DSN == "" {
		c.Connection.DSN = os.Getenv("BEANGEN_DSN")
	}
}

func (c *Config) fillDefaults() {
	if c.Connection.Driver == "" {
		c.Connection.Driver = "sqlite3"
	}
	if c.Output.Package == "" {
		c.Output.Package = "models"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "./models"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// validate checks required fields and applies defaults.
func (c *Config) validate() error {
	c.fillDefaults()
	if c.Connection.DSN == "" {
		return fmt.Errorf("connection.dsn is required")
	}
	switch c.Connection.Driver {
	case "sqlite3", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported driver: %s", c.Connection.Driver)
	}
	switch c.Log.Level {
	case "silent", "error", "warn", "info":
	default:
		return fmt.Errorf("unknown log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}
	return nil
}
