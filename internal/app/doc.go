// Package app is the composition root for logpane. Run loads configuration
// and preferences, builds the UI model around the pane pipeline, attaches
// line sources (file tailing, demo feeders), and blocks on the TUI.
package app
