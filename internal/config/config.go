package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "MINIPY_CONFIG"

// Config holds the settings shared by the command-line driver and the
// language server
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	LSP    LSPConfig    `toml:"lsp"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format     string `toml:"format"`      // tree, source or yaml
	Color      string `toml:"color"`       // auto, always or never
	ShowTokens bool   `toml:"show_tokens"` // print the token stream before parsing
}

// LogConfig is passed to commonlog.Configure
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"` // empty logs to stderr
}

type LSPConfig struct {
	Name string `toml:"name"`
}

var (
	formats = []string{"tree", "source", "yaml"}
	colors  = []string{"auto", "always", "never"}
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Discover loads the first config found in MINIPY_CONFIG, ./minipy.toml or
// $HOME/.config/minipy/config.toml. Without any of them it returns the
// defaults and an empty path.
func Discover() (*Config, string, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// SearchPaths lists the default config locations in lookup order.
func SearchPaths() []string {
	paths := []string{"./minipy.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "minipy", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.LSP.Name == "" {
		c.LSP.Name = "minipy"
	}
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if !contains(formats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %v, got %q", formats, c.Output.Format)
	}
	if !contains(colors, c.Output.Color) {
		return fmt.Errorf("output.color must be one of %v, got %q", colors, c.Output.Color)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	return nil
}

// LogFile returns the log path for commonlog.Configure, nil for stderr.
func (c *Config) LogFile() *string {
	if c.Log.File == "" {
		return nil
	}
	return &c.Log.File
}

// WriteTOML writes the configuration as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
