package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/kiewb/perspectives/internal/domain/distribution"
	"github.com/kiewb/perspectives/internal/presentation"
)

// isolate runs the test from an empty directory with an empty HOME.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, "kie-wb", cfg.Distribution)
	require.Equal(t, "json", cfg.Format)
	require.False(t, cfg.Debug)
	require.True(t, cfg.Cache.Enabled)
	require.NoError(t, Validate(cfg))
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
distribution: kie-wb-monitoring
format: table
cache:
  enabled: false
  ttl: 5m
log:
  level: warn
`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "kie-wb-monitoring", cfg.Distribution)
	require.Equal(t, "table", cfg.Format)
	require.False(t, cfg.Cache.Enabled)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "debug.log", cfg.Log.Path, "unset keys keep defaults")
}

func TestLoad_LocalConfigPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalConfigPath), "distribution: kie-drools-wb\n")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "kie-drools-wb", cfg.Distribution)
}

func TestLoad_UserConfigDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".config", "perspectives", "config.yaml"), "format: yaml\n")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "yaml", cfg.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalConfigPath), "distribution: kie-drools-wb\n")
	t.Setenv("PERSPECTIVES_DISTRIBUTION", "kie-wb-monitoring")
	t.Setenv("PERSPECTIVES_LOG_LEVEL", "error")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "kie-wb-monitoring", cfg.Distribution)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "PERSPECTIVES_FORMAT=table\n")
	t.Cleanup(func() { _ = os.Unsetenv("PERSPECTIVES_FORMAT") })

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "table", cfg.Format)
}

func TestLoad_BrokenDotEnv(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{
			name: "invalid variable name",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, ".env"), "PERSPECTIVES-FORMAT=table\n")
			},
		},
		{
			name: "unterminated quote",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, ".env"), "PERSPECTIVES_FORMAT=\"table\n")
			},
		},
		{
			name: "directory instead of file",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o755))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			tt.setup(t, dir)

			_, err := Load(viper.New(), "")
			require.Error(t, err)
			require.Contains(t, err.Error(), "loading .env")
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.yaml")
	writeFile(t, path, "distribution: [unterminated\n")

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "constant style distribution", mutate: func(c *Config) { c.Distribution = "KIE_WB_MONITORING" }},
		{name: "unknown distribution", mutate: func(c *Config) { c.Distribution = "kie-wbb" }, errContains: "distribution:"},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, errContains: "format:"},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "trace" }, errContains: "log.level:"},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.TTL = -time.Second }, errContains: "cache.ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidate_WrapsSentinels(t *testing.T) {
	cfg := Defaults()
	cfg.Distribution = "nope"
	require.ErrorIs(t, Validate(cfg), distribution.ErrUnknownDistribution)

	cfg = Defaults()
	cfg.Format = "xml"
	require.ErrorIs(t, Validate(cfg), presentation.ErrUnknownFormat)
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}
