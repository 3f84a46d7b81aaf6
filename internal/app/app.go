package app

import (
	"context"
	"fmt"

	"github.com/rburan/logpane/internal/config"
	"github.com/rburan/logpane/internal/prefs"
	"github.com/rburan/logpane/internal/source"
	"github.com/rburan/logpane/internal/ui"
)

// Options configure the logpane application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/logpane/prefs.toml
	FollowPath string // log file to tail; empty disables tailing
	Demo       bool   // feed synthetic log traffic
}

// Run boots the logpane TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	model := ui.New(ui.Options{
		Config:    cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Follow:    userPrefs.Follow,
	})
	p := model.Pane()

	if opts.FollowPath != "" {
		follower, err := source.NewFollower(opts.FollowPath, p.Append)
		if err != nil {
			return fmt.Errorf("follow %s: %w", opts.FollowPath, err)
		}
		defer follower.Close()
	}

	if opts.Demo {
		StartFeeders(ctx, p, defaultFeederCount)
	}

	return ui.Run(ctx, model)
}
