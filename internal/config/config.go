// Package config loads coursecat settings.
//
// Values are layered, later layers winning:
//
//  1. built-in defaults
//  2. an optional YAML file (coursecat.yaml)
//  3. COURSECAT_* environment variables
//
// Command-line flags are applied on top by the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/vegasq/coursecat/internal/validation"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "COURSECAT_"

// ConfigPathEnvVar overrides the config file search.
const ConfigPathEnvVar = "COURSECAT_CONFIG"

// FileName is the config file searched for in DefaultConfigDirs.
const FileName = "coursecat.yaml"

// Config holds every setting of a coursecat run.
type Config struct {
	Dataset DatasetConfig `koanf:"dataset"`
	Output  OutputConfig  `koanf:"output"`
	Log     LogConfig     `koanf:"log"`
	Top     TopConfig     `koanf:"top"`
}

// DatasetConfig locates the course data.
type DatasetConfig struct {
	// Path is a CSV or Parquet file, or a glob matching several.
	Path          string `koanf:"path"`
	SkipMalformed bool   `koanf:"skip_malformed"`
}

// OutputConfig selects the result format.
type OutputConfig struct {
	Format string `koanf:"format" validate:"oneof=table csv json jsonl yaml"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// TopConfig holds defaults for the top command.
type TopConfig struct {
	K  int    `koanf:"k" validate:"min=1"`
	By string `koanf:"by" validate:"required"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{Format: "table"},
		Log:    LogConfig{Level: "warn", Format: "console"},
		Top:    TopConfig{K: 10, By: "participants"},
	}
}

// Load builds the configuration from defaults, the config file and the
// environment. An explicit path must exist; otherwise the file is optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath, err := resolveConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// COURSECAT_DATASET_PATH -> dataset.path
	// COURSECAT_DATASET_SKIP_MALFORMED -> dataset.skip_malformed
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c)
}

// DefaultConfigDirs lists the directories searched for FileName, in order.
func DefaultConfigDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "coursecat"))
	}
	return dirs
}

func resolveConfigFile(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(ConfigPathEnvVar)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}

	for _, dir := range DefaultConfigDirs() {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// sections are the top-level keys; the first underscore after one of them
// separates section from field.
var sections = []string{"dataset", "output", "log", "top"}

// envTransformFunc maps COURSECAT_SECTION_FIELD_NAME to section.field_name.
// Variables outside the known sections are ignored.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok && rest != "" {
			return section + "." + rest
		}
	}
	return ""
}
