// Package config loads posixpath's layered configuration: embedded
// defaults, then the user's config file, then POSIXPATH_* environment
// variables. Later layers win.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/posixpath/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// NormalizeConfig controls how paths are normalized by default.
type NormalizeConfig struct {
	Style string `koanf:"style" toml:"style"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Color  string `koanf:"color" toml:"color"`
	Format string `koanf:"format" toml:"format"`
}

// Config is the resolved configuration for the posixpath CLI.
type Config struct {
	Normalize NormalizeConfig `koanf:"normalize" toml:"normalize"`
	Output    OutputConfig    `koanf:"output" toml:"output"`
}

// rawBytesProvider implements a koanf provider for embedded bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "raw bytes provider does not support Read")
}

// UserConfigPath returns the location of the user's config file,
// respecting XDG_CONFIG_HOME.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "posixpath", "config.toml")
}

// Load builds the configuration from defaults, the user config file (if
// present), and environment overrides, in that order.
func Load() (*Config, error) {
	return loadFrom(UserConfigPath())
}

func loadFrom(userPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", userPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", userPath)
	}

	// POSIXPATH_NORMALIZE_STYLE=full -> normalize.style, etc.
	envProvider := env.Provider("POSIXPATH_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "POSIXPATH_")), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultContent returns the embedded defaults file verbatim, comments
// included.
func DefaultContent() string {
	return string(defaultConfig)
}

// Write serializes the configuration as TOML to path, creating parent
// directories as needed. Used by genconfig to seed a user config file.
func (c *Config) Write(path string) error {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to serialize configuration")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}
	return nil
}

// Validate checks that every configured value is one this tool
// understands.
func (c *Config) Validate() error {
	switch c.Normalize.Style {
	case "standard", "full":
	default:
		return errors.Newf(errors.ErrConfigValid,
			"normalize.style must be %q or %q, got %q", "standard", "full", c.Normalize.Style)
	}

	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.Newf(errors.ErrConfigValid,
			"output.color must be %q, %q or %q, got %q", "auto", "always", "never", c.Output.Color)
	}

	switch c.Output.Format {
	case "text", "yaml":
	default:
		return errors.Newf(errors.ErrConfigValid,
			"output.format must be %q or %q, got %q", "text", "yaml", c.Output.Format)
	}
	return nil
}
