package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/csvkit/pkg/csvkit"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config holds the file-format settings shared by the CLI commands.
type Config struct {
	Extension string `yaml:"extension"`
	Delimiter string `yaml:"delimiter"`
	OutputDir string `yaml:"output_dir,omitempty"`
}

const ConfigFileName = "csvkit.yaml"

// Environment variables that override values from the config file.
const (
	EnvExtension = "CSVKIT_EXTENSION"
	EnvDelimiter = "CSVKIT_DELIMITER"
	EnvOutputDir = "CSVKIT_OUTPUT_DIR"
)

// Default returns the built-in settings: ".csv" files, comma-delimited.
func Default() *Config {
	return &Config{
		Extension: csvkit.DefaultExtension,
		Delimiter: string(csvkit.DefaultDelimiter),
	}
}

// Load reads csvkit.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Keys absent from the file keep their
// default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvExtension); ok && v != "" {
		c.Extension = v
	}
	if v, ok := lookup(EnvDelimiter); ok && v != "" {
		c.Delimiter = v
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		c.OutputDir = v
	}
}

// Validate checks the delimiter and extension.
func (c *Config) Validate() error {
	var errs []error

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("delimiter must be a single character, got %q: %w", c.Delimiter, csvkit.ErrInvalidConfig))
	} else if r := c.Comma(); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		errs = append(errs, fmt.Errorf("delimiter %q is not allowed: %w", c.Delimiter, csvkit.ErrInvalidConfig))
	}

	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		errs = append(errs, fmt.Errorf("extension must start with '.', got %q: %w", c.Extension, csvkit.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Comma returns the delimiter as a rune.
func (c *Config) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
