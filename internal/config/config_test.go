package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minipy.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "tree", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.False(t, cfg.Output.ShowTokens)
	assert.Equal(t, "minipy", cfg.LSP.Name)
	assert.Nil(t, cfg.LogFile())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[output]
format = "yaml"
show_tokens = true

[log]
verbosity = 2
file = "/tmp/minipy.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color, "missing keys get defaults")
	assert.True(t, cfg.Output.ShowTokens)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	require.NotNil(t, cfg.LogFile())
	assert.Equal(t, "/tmp/minipy.log", *cfg.LogFile())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad format", "[output]\nformat = \"json\"\n", "output.format"},
		{"bad color", "[output]\ncolor = \"sometimes\"\n", "output.color"},
		{"negative verbosity", "[log]\nverbosity = -1\n", "log.verbosity"},
		{"syntax", "[output\n", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestDiscoverFromEnv(t *testing.T) {
	path := writeConfig(t, "[output]\nformat = \"source\"\n")
	t.Setenv(EnvConfigPath, path)

	cfg, found, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, found)
	assert.Equal(t, "source", cfg.Output.Format)
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, found, err := Discover()
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, Default(), cfg)
}

func TestWriteTOMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "source"
	cfg.Log.Verbosity = 1

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteTOML(&buf))
	assert.Contains(t, buf.String(), "[output]")

	loaded, err := Load(writeConfig(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
