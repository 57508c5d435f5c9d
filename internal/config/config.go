/*
PURPOSE:
  Defines the configuration structure and loading logic for syn.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the lexical database location.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variables overrides (SYN_...).
  - Logging level/format must be selectable without recompiling.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine, internal/output
  - Dependencies: gopkg.in/yaml.v3 (file), github.com/ilyakaznacheev/cleanenv (env)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default file is not an error (falls back to defaults).
  - A missing file named explicitly is an error.

IMPLEMENTATION RULES:
  - Priority: ENV > YAML > DefaultConfig().
  - Validate() runs last.

USAGE:
  cfg, err := config.Load("syn.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// defaultFiles are searched in the working directory when no path is given.
var defaultFiles = []string{"syn.yaml", "syn.yml", ".syn.yaml"}

// logLevels are the accepted log.level values; empty means info.
var logLevels = []string{"", "debug", "info", "warn", "error"}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"SYN_LOG_LEVEL"`
	Format string `yaml:"format" env:"SYN_LOG_FORMAT"`
}

// Config represents the full configuration for syn.
type Config struct {
	// WordNetPath points at a GWN-LMF JSON release, optionally gzip-compressed,
	// or at an OEWN JSON directory.
	WordNetPath string    `yaml:"wordnet_path" env:"SYN_WORDNET_PATH"`
	Format      string    `yaml:"format"       env:"SYN_FORMAT"`
	All         bool      `yaml:"all"          env:"SYN_ALL"`
	Log         LogConfig `yaml:"log"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		WordNetPath: "english-wordnet.json",
		Format:      FormatText,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads configuration from a file, then applies environment overrides.
// If path is specified, it must exist.
// If path is empty, it searches for default files in order.
// If no file found, defaults are used.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, path, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}

func readConfigFile(path string) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, fmt.Errorf("config: read %s: %w", path, err)
		}
		return data, path, nil
	}

	for _, name := range defaultFiles {
		data, err := os.ReadFile(name)
		if err == nil {
			return data, name, nil
		}
	}
	// No config file found, use defaults
	return nil, "", nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.WordNetPath) == "" {
		errs = append(errs, errors.New("wordnet_path is required"))
	}
	if !slices.Contains([]string{FormatText, FormatJSON}, c.Format) {
		errs = append(errs, fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format))
	}
	if !slices.Contains([]string{"", "text", "json"}, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be \"text\" or \"json\", got %q", c.Log.Format))
	}
	if !slices.Contains(logLevels, strings.ToLower(strings.TrimSpace(c.Log.Level))) {
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}

	return errors.Join(errs...)
}
