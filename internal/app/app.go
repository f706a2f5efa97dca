package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/prayerclock/internal/aladhan"
	"github.com/five82/prayerclock/internal/cache"
	"github.com/five82/prayerclock/internal/config"
	"github.com/five82/prayerclock/internal/logging"
	"github.com/five82/prayerclock/internal/prefs"
	"github.com/five82/prayerclock/internal/provider"
	"github.com/five82/prayerclock/internal/state"
	"github.com/five82/prayerclock/internal/ui"
)

// Options configure the prayerclock application.
type Options struct {
	ConfigPath     string
	PrefsPath      string // empty uses default ~/.config/prayerclock/prefs.toml
	RefreshMinutes int    // zero uses the config value
}

// Services bundles what both the TUI and the one-shot commands need.
type Services struct {
	Config   config.Config
	Logger   zerolog.Logger
	Provider *provider.Provider
	Cache    *cache.Cache

	closeLog func() error
}

// Close releases the cache connection and log file.
func (s *Services) Close() error {
	if s == nil {
		return nil
	}
	_ = s.Cache.Close()
	if s.closeLog != nil {
		return s.closeLog()
	}
	return nil
}

// Setup loads configuration and builds the provider stack.
func Setup(ctx context.Context, opts Options) (*Services, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.RefreshMinutes > 0 {
		cfg.RefreshMinutes = opts.RefreshMinutes
	}

	logger, closer, err := logging.Setup(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	client, err := aladhan.NewClient(cfg.APIBase)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init aladhan client: %w", err)
	}

	dayCache := cache.New(ctx, cache.Config{
		Addr:           cfg.RedisAddr,
		TTL:            cfg.CacheTTL(),
		DisableOnError: true,
	}, logger)

	prov := provider.New(client, provider.Options{
		City:     cfg.City,
		Country:  cfg.Country,
		Method:   cfg.Method,
		Location: loc,
		Cache:    dayCache,
		Logger:   logger,
	})

	logger.Info().
		Str("city", cfg.City).
		Str("country", cfg.Country).
		Int("method", cfg.Method).
		Bool("cache", dayCache.IsAvailable()).
		Msg("prayerclock starting")

	return &Services{
		Config:   cfg,
		Logger:   logger,
		Provider: prov,
		Cache:    dayCache,
		closeLog: closer.Close,
	}, nil
}

// Run boots the TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	svc, err := Setup(ctx, opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	userPrefs := prefs.Load(opts.PrefsPath)
	language := userPrefs.Language
	if language == "" {
		language = svc.Config.Language
	}

	store := &state.Store{}
	poller := NewPoller(svc.Provider, store, svc.Config.RefreshInterval(), svc.Logger)

	// Populate the store before the first frame.
	poller.Refresh(ctx)
	poller.Start(ctx)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Refresh:   poller.Request,
		Tick:      time.Second,
		ThemeName: userPrefs.Theme,
		Language:  language,
		PrefsPath: opts.PrefsPath,
		LogPath:   svc.Config.LogPath(),
		Logger:    svc.Logger,
	})
}
