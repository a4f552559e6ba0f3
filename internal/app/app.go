package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/deck/internal/cache"
	"github.com/five82/deck/internal/config"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/library"
	"github.com/five82/deck/internal/logging"
	"github.com/five82/deck/internal/prefs"
	"github.com/five82/deck/internal/state"
	"github.com/five82/deck/internal/ui"
	"github.com/five82/deck/internal/view"
)

// Options configure the deck TUI.
type Options struct {
	Config    config.Config
	PrefsPath string // empty uses default ~/.config/deck/prefs.toml
	// View overrides the saved last view when set, as a query string such
	// as "view=artists&artist=<id>".
	View string
}

// Services are the long-lived dependencies shared by the TUI and the CLI
// subcommands.
type Services struct {
	Config  config.Config
	Logger  *slog.Logger
	Client  *kiosk.Client
	Cache   *cache.Cache
	Library *library.Service

	closers []io.Closer
}

// Open builds the logger, backend client and library cache described by cfg.
func Open(cfg config.Config) (*Services, error) {
	logger, logCloser, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	s := &Services{Config: cfg, Logger: logger, closers: []io.Closer{logCloser}}

	s.Client, err = kiosk.NewClient(cfg.Backend)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("init kiosk client: %w", err)
	}

	s.Cache, err = cache.Open(cfg.Cache, logger, nil)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("open library cache: %w", err)
	}
	s.closers = append([]io.Closer{s.Cache}, s.closers...)

	s.Library = library.NewService(s.Client, s.Cache, logger)
	return s, nil
}

// Close releases the cache and the log file.
func (s *Services) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// Run boots the deck TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	svc, err := Open(opts.Config)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()
	logger := svc.Logger

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	start := view.Decode(userPrefs.LastView)
	if opts.View != "" {
		start = view.Decode(opts.View)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	poller := StartPoller(ctx, store, svc.Client, opts.Config.Poll.NowPlaying, logger)

	logger.Info("deck starting", "backend", svc.Client.BaseURL(), "cache", opts.Config.Cache.Backend)

	final, runErr := ui.Run(ui.Options{
		Context:           ctx,
		Backend:           svc.Client,
		Library:           svc.Library,
		Store:             store,
		Cache:             svc.Cache,
		Logger:            logger,
		RefreshNowPlaying: poller.Trigger,
		Poll:              opts.Config.Poll,
		Prefs:             userPrefs,
		PrefsPath:         opts.PrefsPath,
		Language:          opts.Config.Language,
		View:              start,
		LogFile:           opts.Config.Log.File,
	})

	cancel()
	<-poller.Done()

	// The UI saves prefs as they change; reload so only last_view is added.
	latest, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		latest = userPrefs
	}
	latest.LastView = view.Encode(final)
	if err := prefs.Save(opts.PrefsPath, latest); err != nil {
		logger.Warn("save last view failed", "error", err)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("run ui: %w", runErr)
	}
	logger.Info("deck stopped")
	return nil
}
