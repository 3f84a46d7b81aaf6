package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/rburan/logpane/internal/pane"
)

// Config captures the recognized logpane options.
type Config struct {
	MaxEntries     int
	RetainEntries  int
	ShowTimestamp  bool
	ShowDate       bool
	ResizeDebounce time.Duration
	DrainCap       int
	FrameInterval  time.Duration
}

const (
	defaultConfigPath    = "~/.config/logpane/config.toml"
	defaultFrameInterval = 33 * time.Millisecond
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxEntries:     pane.DefaultMaxEntries,
		RetainEntries:  pane.DefaultRetainEntries,
		ResizeDebounce: pane.DefaultResizeDebounce,
		DrainCap:       pane.DefaultDrainCap,
		FrameInterval:  defaultFrameInterval,
	}
}

// Load locates and parses the config, falling back to defaults when the
// file is missing. Out-of-range values are clamped, never fatal: a log pane
// must come up usable regardless of what the file says.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		MaxEntries      *int  `toml:"max_entries"`
		RetainEntries   *int  `toml:"retain_entries"`
		ShowTimestamp   *bool `toml:"show_timestamp"`
		ShowDate        *bool `toml:"show_date"`
		ResizeDebounce  *int  `toml:"resize_debounce_ms"`
		DrainCap        *int  `toml:"drain_cap"`
		FrameIntervalMs *int  `toml:"frame_interval_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.MaxEntries != nil {
		cfg.MaxEntries = *raw.MaxEntries
	}
	if raw.RetainEntries != nil {
		cfg.RetainEntries = *raw.RetainEntries
	}
	if raw.ShowTimestamp != nil {
		cfg.ShowTimestamp = *raw.ShowTimestamp
	}
	if raw.ShowDate != nil {
		cfg.ShowDate = *raw.ShowDate
	}
	if raw.ResizeDebounce != nil {
		cfg.ResizeDebounce = time.Duration(*raw.ResizeDebounce) * time.Millisecond
	}
	if raw.DrainCap != nil {
		cfg.DrainCap = *raw.DrainCap
	}
	if raw.FrameIntervalMs != nil {
		cfg.FrameInterval = time.Duration(*raw.FrameIntervalMs) * time.Millisecond
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps misconfigured values into a usable range. RetainEntries
// must stay strictly below MaxEntries so eviction always makes progress.
func (c *Config) normalize() {
	if c.MaxEntries <= 0 {
		c.MaxEntries = pane.DefaultMaxEntries
	}
	if c.RetainEntries <= 0 {
		c.RetainEntries = pane.DefaultRetainEntries
	}
	if c.RetainEntries >= c.MaxEntries {
		c.RetainEntries = c.MaxEntries - 1
	}
	if c.DrainCap <= 0 {
		c.DrainCap = pane.DefaultDrainCap
	}
	if c.ResizeDebounce <= 0 {
		c.ResizeDebounce = pane.DefaultResizeDebounce
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = defaultFrameInterval
	}
}

// PaneOptions converts the config into pane options.
func (c Config) PaneOptions() pane.Options {
	return pane.Options{
		MaxEntries:     c.MaxEntries,
		RetainEntries:  c.RetainEntries,
		ShowTimestamp:  c.ShowTimestamp,
		ShowDate:       c.ShowDate,
		ResizeDebounce: c.ResizeDebounce,
		DrainCap:       c.DrainCap,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
