package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rburan/logpane/internal/pane"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_ParsesAllOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
max_entries = 500
retain_entries = 50
show_timestamp = true
show_date = true
resize_debounce_ms = 150
drain_cap = 32
frame_interval_ms = 16
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxEntries != 500 || cfg.RetainEntries != 50 {
		t.Fatalf("bounds = %d/%d, want 500/50", cfg.MaxEntries, cfg.RetainEntries)
	}
	if !cfg.ShowTimestamp || !cfg.ShowDate {
		t.Fatalf("stamp flags = %v/%v, want true/true", cfg.ShowTimestamp, cfg.ShowDate)
	}
	if cfg.ResizeDebounce != 150*time.Millisecond {
		t.Fatalf("ResizeDebounce = %v, want 150ms", cfg.ResizeDebounce)
	}
	if cfg.DrainCap != 32 {
		t.Fatalf("DrainCap = %d, want 32", cfg.DrainCap)
	}
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Fatalf("FrameInterval = %v, want 16ms", cfg.FrameInterval)
	}
}

func TestLoad_ClampsMisconfiguredValues(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantMax    int
		wantRetain int
	}{
		{
			"retain above max",
			"max_entries = 100\nretain_entries = 100",
			100, 99,
		},
		{
			"negative values",
			"max_entries = -5\nretain_entries = -1",
			pane.DefaultMaxEntries, pane.DefaultRetainEntries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if cfg.MaxEntries != tt.wantMax {
				t.Fatalf("MaxEntries = %d, want %d", cfg.MaxEntries, tt.wantMax)
			}
			if cfg.RetainEntries != tt.wantRetain {
				t.Fatalf("RetainEntries = %d, want %d", cfg.RetainEntries, tt.wantRetain)
			}
			if cfg.RetainEntries >= cfg.MaxEntries {
				t.Fatalf("RetainEntries %d not below MaxEntries %d", cfg.RetainEntries, cfg.MaxEntries)
			}
		})
	}
}

func TestLoad_ZeroDurationsGetFloored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
resize_debounce_ms = 0
frame_interval_ms = 0
drain_cap = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ResizeDebounce != pane.DefaultResizeDebounce {
		t.Fatalf("ResizeDebounce = %v, want default %v", cfg.ResizeDebounce, pane.DefaultResizeDebounce)
	}
	if cfg.FrameInterval != defaultFrameInterval {
		t.Fatalf("FrameInterval = %v, want default %v", cfg.FrameInterval, defaultFrameInterval)
	}
	if cfg.DrainCap != pane.DefaultDrainCap {
		t.Fatalf("DrainCap = %d, want default %d", cfg.DrainCap, pane.DefaultDrainCap)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`max_entries = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestPaneOptions_CarriesBounds(t *testing.T) {
	cfg := Default()
	cfg.MaxEntries = 42
	cfg.RetainEntries = 7
	cfg.ShowTimestamp = true

	opts := cfg.PaneOptions()
	if opts.MaxEntries != 42 || opts.RetainEntries != 7 || !opts.ShowTimestamp {
		t.Fatalf("PaneOptions() = %+v, want bounds 42/7 and ShowTimestamp", opts)
	}
}
