package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/larder/internal/config"
	"github.com/five82/larder/internal/console"
	"github.com/five82/larder/internal/logging"
	"github.com/five82/larder/internal/persist"
	"github.com/five82/larder/internal/prefs"
	"github.com/five82/larder/internal/remote"
	"github.com/five82/larder/internal/ui"
)

// Options configure the larder application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/larder/prefs.toml
	Ephemeral  bool   // keep state in memory only
}

// Session holds everything a command needs once configuration is loaded.
type Session struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *zap.Logger
	Console   *console.Console
}

// Open loads configuration, opens the state backend and restores persisted
// state. Callers must Close the session.
func Open(ctx context.Context, opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs failed, using defaults", zap.Error(err))
	}

	client, err := remote.NewClient(remote.Options{
		ProductURL: cfg.ProductAPI,
		BerryURL:   cfg.BerryAPI,
		Timeout:    cfg.RequestTimeout,
		Logger:     logger,
	})
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init remote client: %w", err)
	}

	backend, err := openBackend(ctx, cfg, opts.Ephemeral)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	cons := console.New(console.Options{
		Gateway:    client,
		Backend:    backend,
		Logger:     logger,
		BerryLimit: cfg.BerryLimit,
	})
	cons.Restore(ctx)
	logger.Info("session opened",
		zap.String("state_path", cfg.StatePath),
		zap.Bool("ephemeral", opts.Ephemeral),
		zap.Int("products", cons.Products.Len()),
	)

	return &Session{
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
		Console:   cons,
	}, nil
}

// Close releases the backend and flushes the logger.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.Console != nil {
		if err := s.Console.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close state: %w", err))
		}
	}
	if s.Logger != nil {
		_ = s.Logger.Sync()
	}
	return errors.Join(errs...)
}

// Run boots the larder TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	session, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	return ui.Run(ui.Options{
		Context:   ctx,
		Console:   session.Console,
		Logger:    session.Logger,
		LogPath:   session.Config.LogPath,
		ThemeName: session.Prefs.Theme,
		Locale:    session.Prefs.Locale,
		PrefsPath: session.PrefsPath,
	})
}

func openBackend(ctx context.Context, cfg config.Config, ephemeral bool) (persist.Backend, error) {
	// each pooled sqlite connection would get its own :memory: database
	if ephemeral || cfg.InMemoryState() {
		return persist.NewMemory(), nil
	}
	db, err := persist.OpenSQLite(ctx, cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open state: %w", err)
	}
	return db, nil
}
