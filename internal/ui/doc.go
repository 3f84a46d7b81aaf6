// Package ui renders the log pane in the terminal with Bubble Tea. It owns
// the frame loop that ticks the pipeline, maps mouse and key input onto the
// pane, and draws the visible slice of laid-out content.
package ui
