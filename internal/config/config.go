package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the simulator settings.
type Config struct {
	// ClockMode24h selects 24-hour display of alarm times; off means
	// 12-hour display with a PM indicator.
	ClockMode24h bool `yaml:"clock_mode_24h"`
	// StateFile is the path of the JSON file the alarm table is kept in
	// between simulator runs.
	StateFile string `yaml:"state_file"`
	// LogLevel is the minimum level written to the log file.
	LogLevel string `yaml:"log_level"`
	// LogFile receives log output; the terminal itself is taken by the
	// watch display while the simulator runs.
	LogFile string `yaml:"log_file"`
	// NoSound disables audible buzzer output.
	NoSound bool `yaml:"no_sound"`
}

const (
	// DefaultConfigFilename is the default filename for simulator settings.
	DefaultConfigFilename = "alarm-face-settings.yaml"

	// DefaultStateFilename is the default filename for the alarm table JSON.
	DefaultStateFilename = "alarm-face-state.json"

	// DefaultLogFilename is the default log file.
	DefaultLogFilename = "alarm-sim.log"

	// DefaultLogLevel is used when the settings do not name one.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// errConfigIsNotSet is returned when a nil configuration is provided.
var errConfigIsNotSet = errors.New("configuration is not set")

// Default returns a configuration with every field at its default.
func Default() *Config {
	cfg := &Config{
		ClockMode24h: true,
	}
	Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path and fills defaults for
// absent fields. A missing file is not an error: the simulator then runs
// on defaults, matching a watch booting with a blank settings register.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	Validate(&cfg)

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	Validate(cfg)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults for unset fields. Every field has a workable
// default, so validation cannot fail.
func Validate(cfg *Config) {
	if cfg.StateFile == "" {
		cfg.StateFile = DefaultStateFilename
	}

	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFilename
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
