// Package config loads the logpane TOML configuration.
//
// The file lives at ~/.config/logpane/config.toml by default and every key
// is optional. Recognized options cover the pane's store bounds
// (max_entries, retain_entries), timestamp prefixing (show_timestamp,
// show_date), and the frame pipeline (resize_debounce_ms, drain_cap,
// frame_interval_ms). A missing file yields the defaults; out-of-range
// values are clamped rather than rejected.
package config
