// Package config provides configuration types and defaults for the perspectives tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kiewb/perspectives/internal/domain/distribution"
	"github.com/kiewb/perspectives/internal/log"
	"github.com/kiewb/perspectives/internal/presentation"
)

// EnvPrefix prefixes every environment variable read by the tool.
const EnvPrefix = "PERSPECTIVES"

// LocalConfigPath is checked before the user config directory.
const LocalConfigPath = ".perspectives/config.yaml"

// Config holds all configuration options.
type Config struct {
	Distribution string      `mapstructure:"distribution"` // distribution under test, e.g. "kie-wb"
	Format       string      `mapstructure:"format"`       // "json" (default), "yaml" or "table"
	Debug        bool        `mapstructure:"debug"`
	Log          LogConfig   `mapstructure:"log"`
	Cache        CacheConfig `mapstructure:"cache"`
}

// LogConfig holds debug log options.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"` // "debug", "info", "warn" or "error"
}

// CacheConfig controls memoization of per-distribution queries.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"` // 0 keeps entries for the process lifetime
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Distribution: string(distribution.KieWB),
		Format:       string(presentation.FormatJSON),
		Debug:        false,
		Log: LogConfig{
			Path:  "debug.log",
			Level: "debug",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     0,
		},
	}
}

// SetDefaults registers Defaults with v.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("distribution", defaults.Distribution)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log.path", defaults.Log.Path)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("cache.enabled", defaults.Cache.Enabled)
	v.SetDefault("cache.ttl", defaults.Cache.TTL)
}

// Load reads configuration into v and returns the result.
//
// Lookup order:
//  1. cfgFile, when non-empty
//  2. .perspectives/config.yaml (current directory)
//  3. ~/.config/perspectives/config.yaml (user config)
//
// A .env file in the current directory is loaded first, and PERSPECTIVES_* environment
// variables override file values. A missing config or .env file is not an error; an
// unreadable or malformed .env file is.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	switch err := godotenv.Load(); {
	case err == nil:
		log.Debug(log.CatConfig, "loaded .env")
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(LocalConfigPath); err == nil {
		v.SetConfigFile(LocalConfigPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "perspectives"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "no config file found, using defaults")
	} else {
		log.Debug(log.CatConfig, "loaded config", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every option names a known value.
func Validate(cfg Config) error {
	if _, err := distribution.Parse(cfg.Distribution); err != nil {
		return fmt.Errorf("distribution: %w", err)
	}
	if _, err := presentation.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl: must not be negative, got %s", cfg.Cache.TTL)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Perspectives Configuration

# Distribution under test: kie-drools-wb, kie-wb or kie-wb-monitoring
distribution: kie-wb

# Output format: json, yaml or table
format: json

# Debug logging (also enabled by --debug or PERSPECTIVES_DEBUG=true)
debug: false
log:
  path: debug.log
  level: debug  # debug, info, warn or error

# Memoize per-distribution queries
cache:
  enabled: true
  # ttl: 10m  # expiry after last read; 0 (default) keeps results for the process lifetime
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
