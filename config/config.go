// Package config loads and validates the plutonium configuration file.
// Validation is fatal and happens before any analysis; downstream components
// may assume a validated configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/justinlietz93/Plutonium/domain"
	"github.com/justinlietz93/Plutonium/infrastructure/source"
)

const (
	// DefaultOutputFile is used when output_file is not configured.
	DefaultOutputFile = "dependency_report.md"
	// DefaultCacheFile is used when cache_file is not configured. Set
	// cache_file to an empty string explicitly to disable the snapshot.
	DefaultCacheFile = "version_cache.json"
)

// Config is the top-level configuration for plutonium.
type Config struct {
	OutputFile  string            `yaml:"output_file"`
	CacheFile   *string           `yaml:"cache_file"`
	Directories []DirectoryConfig `yaml:"directories"`
}

// DirectoryConfig describes one directory task: a path (local directory or
// remote git URL) and the environments to analyze there.
type DirectoryConfig struct {
	Path         string   `yaml:"path"`
	Environments []string `yaml:"environments"`
}

// SnapshotPath returns the cache snapshot path, or "" when persistence is
// disabled.
func (c *Config) SnapshotPath() string {
	if c.CacheFile == nil {
		return DefaultCacheFile
	}
	return *c.CacheFile
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables in paths and validating the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	cfg.OutputFile = ExpandEnv(cfg.OutputFile)
	for i := range cfg.Directories {
		cfg.Directories[i].Path = ExpandEnv(cfg.Directories[i].Path)
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".plutonium.yaml",
		".plutonium.yml",
		"plutonium.yaml",
		"plutonium.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ExpandEnv expands environment variable references (${VAR}) in a
// configured path. Unset variables expand to the empty string with a warning.
func ExpandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for required configuration values. Unsupported environment
// names are rejected here so the selector downstream may assume validity.
func validate(cfg *Config) error {
	if len(cfg.Directories) == 0 {
		return errors.New("at least one directory must be configured")
	}

	for i, dir := range cfg.Directories {
		if dir.Path == "" {
			return fmt.Errorf("directories[%d].path is required", i)
		}

		if !source.IsRemote(dir.Path) {
			info, statErr := os.Stat(dir.Path)
			if statErr != nil {
				return fmt.Errorf("directories[%d]: path %q does not exist", i, dir.Path)
			}
			if !info.IsDir() {
				return fmt.Errorf("directories[%d]: path %q is not a directory", i, dir.Path)
			}
		}

		if len(dir.Environments) == 0 {
			return fmt.Errorf("directories[%d].environments must have at least one entry", i)
		}
		for _, env := range dir.Environments {
			if !domain.IsSupportedEnvironment(env) {
				return fmt.Errorf(
					"directories[%d]: unsupported environment %q (supported: %s)",
					i, env, strings.Join(domain.SupportedEnvironments, ", "),
				)
			}
		}
	}

	return nil
}
