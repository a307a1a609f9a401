// Package config loads the .dartcomplete.yaml file which configures the dartcomplete command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Filename is the name of the config file.
const Filename = ".dartcomplete.yaml"

// ErrNotFound is returned by [Find] when there's no config file.
var ErrNotFound = errors.New(Filename + " not found")

// Color controls when output is coloured.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config is the contents of a config file.
type Config struct {
	// LogLevel is the name of the minimum level of the log messages which are written to stderr.
	LogLevel string `yaml:"log_level"`
	Color    Color  `yaml:"color"`
	// Libraries are source files which are added to the search universe. Each can be imported by its path relative to
	// the directory of the config file.
	Libraries []string `yaml:"libraries"`
	// CoreLibrary replaces the embedded core library.
	CoreLibrary string `yaml:"core_library"`
	// ShowDetails prints the declaring type and type of each proposal.
	ShowDetails bool `yaml:"show_details"`

	// Dir is the directory which relative paths are resolved against.
	Dir string `yaml:"-"`
}

// Default returns the config which is used when there's no config file.
func Default() *Config {
	return &Config{
		LogLevel: zapcore.WarnLevel.String(),
		Color:    ColorAuto,
	}
}

// Load loads the nearest config file in dir or one of its parents. If there isn't one, the default config is returned
// with relative paths resolved against dir.
func Load(dir string) (*Config, error) {
	path, err := Find(dir)
	if errors.Is(err, ErrNotFound) {
		cfg := Default()
		cfg.Dir, err = filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// Find searches for a config file starting from dir and walking up.
func Find(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for dir := absDir; ; {
		path := filepath.Join(dir, Filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// LoadFile loads the config file at path. Fields which aren't set take their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field of the config.
func (c *Config) Validate() error {
	var err error
	if _, levelErr := zapcore.ParseLevel(c.LogLevel); levelErr != nil {
		err = multierr.Append(err, fmt.Errorf("log_level: %w", levelErr))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		err = multierr.Append(err, fmt.Errorf("color: must be one of %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color))
	}
	for i, lib := range c.Libraries {
		if lib == "" {
			err = multierr.Append(err, fmt.Errorf("libraries[%d]: path is empty", i))
		}
	}
	return err
}

// Level returns the log level of the config. The default level is returned if the log level is invalid.
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}

// LibraryPaths returns the absolute paths of the configured libraries keyed by the URI which imports them.
func (c *Config) LibraryPaths() map[string]string {
	paths := make(map[string]string, len(c.Libraries))
	for _, lib := range c.Libraries {
		paths[filepath.ToSlash(filepath.Clean(lib))] = c.resolve(lib)
	}
	return paths
}

// CoreLibraryPath returns the absolute path of the configured core library, or "" if the embedded one should be used.
func (c *Config) CoreLibraryPath() string {
	if c.CoreLibrary == "" {
		return ""
	}
	return c.resolve(c.CoreLibrary)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}
