package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Model", cfg.Generator.Model, ModelDPA},
		{"N", cfg.Generator.N, 27770},
		{"M", cfg.Generator.M, 13},
		{"P", cfg.Generator.P, 0.0005},
		{"Seed", cfg.Generator.Seed, int64(0)},
		{"ProgressEvery", cfg.Generator.ProgressEvery, 5000},
		{"Source", cfg.Source, ""},
		{"HTTPTimeout", cfg.HTTPTimeout, 60 * time.Second},
		{"Plot", cfg.Output.Plot, ""},
		{"LogLevel", cfg.Logging.Level, "info"},
		{"LogFormat", cfg.Logging.Format, "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CITEGRAPH_GENERATOR_MODEL", "er")
	t.Setenv("CITEGRAPH_GENERATOR_N", "500")
	t.Setenv("CITEGRAPH_HTTP_TIMEOUT", "5s")
	t.Setenv("CITEGRAPH_LOGGING_LEVEL", "debug")

	cfg, err := Load(New())
	require.NoError(t, err)
	require.Equal(t, ModelER, cfg.Generator.Model)
	require.Equal(t, 500, cfg.Generator.N)
	require.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citegraph.yaml")
	body := "generator:\n  model: complete\n  n: 12\noutput:\n  plot: out.png\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	v := New()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, ModelComplete, cfg.Generator.Model)
	require.Equal(t, 12, cfg.Generator.N)
	require.Equal(t, 13, cfg.Generator.M, "unset keys keep defaults")
	require.Equal(t, "out.png", cfg.Output.Plot)

	require.Error(t, ReadFile(New(), filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestValidate(t *testing.T) {
	base, err := Load(New())
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"model", func(c *Config) { c.Generator.Model = "ba" }},
		{"progress", func(c *Config) { c.Generator.ProgressEvery = -1 }},
		{"timeout", func(c *Config) { c.HTTPTimeout = -time.Second }},
		{"level", func(c *Config) { c.Logging.Level = "loud" }},
		{"format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestCreateLogger(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := cfg.CreateLogger(&buf)
	require.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"service":"citegraph"`)
	require.Contains(t, buf.String(), "shown")
}
