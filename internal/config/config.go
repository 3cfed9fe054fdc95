// Package config loads the optional appicon.yaml shared by genicon and
// icoconv. A missing file yields the defaults, which reproduce the plain
// "run it in the build directory" behavior.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/postgo/appicon"
	"github.com/postgo/appicon/ico"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "appicon.yaml"

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("config: invalid")

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is a slog level name. The default, warn, keeps routine runs
	// down to the progress lines on stdout.
	Level string `yaml:"level"`
}

// Config holds the settings shared by genicon and icoconv.
type Config struct {
	// OutputDir receives the generated PNGs.
	OutputDir string `yaml:"output_dir"`

	// Fonts are tried in order before the embedded font.
	Fonts []string `yaml:"fonts"`

	// Source is the PNG the converter reads. Empty means the canonical
	// icon inside OutputDir.
	Source string `yaml:"source"`

	// ICO is the container the converter writes.
	ICO string `yaml:"ico"`

	// Syso, when set, is an additional Windows resource object to write.
	Syso     string `yaml:"syso"`
	SysoArch string `yaml:"syso_arch"`

	Log LogConfig `yaml:"log"`
}

// DefaultConfig returns the settings used when no config file exists.
// Source is left empty and resolved against OutputDir on load.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Fonts:     []string{appicon.LocalFontName, appicon.SystemFontPath},
		ICO:       ico.DefaultDestination,
		SysoArch:  "amd64",
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads a YAML config file and merges it with defaults. An empty path
// means DefaultFile; a missing DefaultFile is not an error, a missing
// explicit path is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path is chosen by the user
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return finish(DefaultConfig())
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML config from bytes and merges with defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return finish(cfg)
}

// finish applies the environment, derives Source and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.applyEnv()
	if cfg.Source == "" {
		cfg.Source = filepath.Join(cfg.OutputDir, ico.DefaultSource)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables on top of config values.
func (c *Config) applyEnv() {
	if v := os.Getenv("APPICON_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("APPICON_FONT"); v != "" {
		c.Fonts = append([]string{v}, c.Fonts...)
	}
	if v := os.Getenv("APPICON_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("%w: source is empty", ErrInvalid)
	}
	if c.ICO == "" {
		return fmt.Errorf("%w: ico is empty", ErrInvalid)
	}
	if c.Syso != "" && !slices.Contains(ico.Arches(), c.SysoArch) {
		return fmt.Errorf("%w: syso_arch %q, want one of %s", ErrInvalid, c.SysoArch, strings.Join(ico.Arches(), ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses Log.Level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return l, nil
}
