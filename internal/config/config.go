package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the entire application configuration
type Config struct {
	Host     HostConfig     `mapstructure:"host"`
	Facts    FactsConfig    `mapstructure:"facts"`
	Checks   ChecksConfig   `mapstructure:"checks"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
}

// HostConfig identifies the host under check
type HostConfig struct {
	// Name labels results in logs and history. Defaults to the machine
	// hostname when empty.
	Name string `mapstructure:"name"`

	// GroupNames lists the host's role groups. Only consulted when the
	// fact source cannot supply them (i.e. the local collector).
	GroupNames []string `mapstructure:"group_names"`
}

// FactsConfig selects where host facts come from
type FactsConfig struct {
	// Source is "file" for a pre-materialized facts document or "local"
	// to collect the mount table from the machine the preflight runs on.
	Source string `mapstructure:"source"`

	// Path is the facts document location when source is "file".
	Path string `mapstructure:"path"`
}

// ChecksConfig carries user-tunable check settings
type ChecksConfig struct {
	// MinHostDiskGB overrides the recommended minimum disk space.
	// Either a bare number of gigabytes (applied to /var) or a nested
	// mapping of path to role group to gigabytes.
	MinHostDiskGB any `mapstructure:"min_host_disk_gb"`

	// PlaybookContext is "upgrade" for an in-place upgrade; anything
	// else means a fresh install. Ignored when the facts document
	// carries its own context.
	PlaybookContext string `mapstructure:"playbook_context"`

	// Disabled lists check names that must be skipped.
	Disabled []string `mapstructure:"disabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig contains result history settings
type DatabaseConfig struct {
	// Path of the SQLite result history database. Empty disables
	// recording.
	Path string `mapstructure:"path"`
}

// Load loads configuration from the specified file path
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("host.name", "")
	viper.SetDefault("facts.source", "file")
	viper.SetDefault("facts.path", "facts.yaml")
	viper.SetDefault("checks.playbook_context", "")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("database.path", "")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Facts.Source {
	case "file":
		if c.Facts.Path == "" {
			return fmt.Errorf("facts.path is required when facts.source is \"file\"")
		}
	case "local":
		// Roles cannot be observed locally; without them every check
		// would be inactive.
		if len(c.Host.GroupNames) == 0 {
			return fmt.Errorf("host.group_names is required when facts.source is \"local\"")
		}
	default:
		return fmt.Errorf("invalid facts.source: %s", c.Facts.Source)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
		// Valid formats
	default:
		return fmt.Errorf("invalid logging.format: %s", c.Logging.Format)
	}

	return nil
}
