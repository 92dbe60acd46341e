// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the scene2d tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/scene2d/base/logx"
	"cogentcore.org/scene2d/layout"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct
// that contains all of the configuration
// options for the scene2d tool.
type Config struct {

	// Viewport is the viewport size scenes are laid out in.
	Viewport Viewport `toml:"viewport"`

	// Origin is where layout roots are placed: top-left or center.
	Origin string `toml:"origin"`

	// LogLevel is the verbosity: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// FontSize is the default label font size in points.
	FontSize float32 `toml:"font_size"`

	// Font is the label font: basic or latin-modern.
	Font string `toml:"font"`

	// Inspector is the address the inspector server listens on.
	Inspector string `toml:"inspector"`

	// Debounce is how long watch waits for changes to settle.
	Debounce Duration `toml:"debounce"`
}

// Viewport is a viewport size.
type Viewport struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Duration is a [time.Duration] read from text such as "150ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Viewport:  Viewport{Width: 800, Height: 600},
		Origin:    "top-left",
		LogLevel:  "warn",
		FontSize:  13,
		Font:      "basic",
		Inspector: "localhost:8642",
		Debounce:  Duration(100 * time.Millisecond),
	}
}

// DefaultPath returns the path of the user configuration file,
// ~/.config/scene2d/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "scene2d", "config.toml"), nil
}

// Open reads the configuration at path over the defaults. A missing
// file leaves the defaults; a malformed one is an error. An empty path
// uses [DefaultPath].
func Open(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config: no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := c.RootOrigin(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Font {
	case "basic", "latin-modern":
	default:
		return fmt.Errorf("config: unknown font %q", c.Font)
	}
	return nil
}

// RootOrigin returns the layout origin mode.
func (c *Config) RootOrigin() (layout.Origins, error) {
	switch strings.ToLower(c.Origin) {
	case "", "top-left":
		return layout.OriginTopLeft, nil
	case "center":
		return layout.OriginCenter, nil
	}
	return layout.OriginTopLeft, fmt.Errorf("config: unknown origin %q", c.Origin)
}

// Level returns the log level.
func (c *Config) Level() (slog.Level, error) {
	l, ok := logx.LevelFromString(c.LogLevel)
	if !ok {
		return l, fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return l, nil
}
