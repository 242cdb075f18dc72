// Package config loads the CLI configuration file (.formschema.yaml).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formschema/pkg/validation"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".formschema.yaml"

// HomeEnv overrides the directory holding the session database.
const HomeEnv = "FORMSCHEMA_HOME"

// Config is the full CLI configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Session    SessionConfig    `yaml:"session"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Normalize  bool             `yaml:"normalize"`
}

// DatabaseConfig locates the session database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SessionConfig controls the editing session.
type SessionConfig struct {
	Name         string `yaml:"name"`
	HistoryLimit int    `yaml:"history_limit"`
}

// ValidationConfig tunes the validator.
type ValidationConfig struct {
	OrderContiguity bool `yaml:"order_contiguity"`
	MaxInputs       int  `yaml:"max_inputs"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	logFormats = []string{"json", "console"}
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(defaultHome(), "sessions.db")},
		Session: SessionConfig{
			Name:         "default",
			HistoryLimit: 100,
		},
		Validation: ValidationConfig{
			OrderContiguity: true,
			MaxInputs:       validation.DefaultMaxInputs,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Normalize: true,
	}
}

// Load reads the file at path on top of the defaults. Keys missing from the
// file keep their default value; unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load that falls back to the defaults when the file does
// not exist.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML configuration on top of the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Database.Path) == "" {
		problems = append(problems, "database.path is required")
	}
	if strings.TrimSpace(c.Session.Name) == "" {
		problems = append(problems, "session.name is required")
	}
	if c.Session.HistoryLimit < 0 {
		problems = append(problems, "session.history_limit must not be negative")
	}
	if c.Validation.MaxInputs < validation.MinInputs {
		problems = append(problems, fmt.Sprintf("validation.max_inputs must be at least %d", validation.MinInputs))
	}
	if !contains(logLevels, c.Logging.Level) {
		problems = append(problems, fmt.Sprintf("logging.level must be one of %s", strings.Join(logLevels, ", ")))
	}
	if !contains(logFormats, c.Logging.Format) {
		problems = append(problems, fmt.Sprintf("logging.format must be one of %s", strings.Join(logFormats, ", ")))
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: invalid: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidatorOptions maps the validation section to validator options.
func (c *Config) ValidatorOptions() []validation.Option {
	return []validation.Option{
		validation.WithOrderContiguity(c.Validation.OrderContiguity),
		validation.WithMaxInputs(c.Validation.MaxInputs),
	}
}

func defaultHome() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return home
	}
	if dir, err := os.UserHomeDir(); err == nil && dir != "" {
		return filepath.Join(dir, ".formschema")
	}
	return ".formschema"
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
