// Package fizyo provides the navigation core of the fizyo physical-therapy
// companion app: the route table, a history-stack router, and the derived
// bottom-navigation state.
//
// The package wires those pieces from configuration. Screens receive the
// *App (or just its Router) explicitly; there is no global navigator.
package fizyo

import (
	"log/slog"

	"github.com/fiziktedavi/fizyo/pkg/fizyo/config"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/constants"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/internal"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/navbar"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/router"
)

// Options configures App construction.
type Options struct {
	ConfigPath        string         // Config file to load; empty uses config.DefaultPath
	Config            *config.Config // Use these settings instead of loading a file
	LogPath           string         // Overrides the configured log file path
	LogLevel          string         // Overrides the configured log level
	DisableConsoleLog bool           // Keep logs off stdout (terminal UIs)
}

// App bundles the navigation components of one running session.
type App struct {
	Config   config.Config
	Registry *router.Registry
	Router   *router.Router
	NavBar   *navbar.Bar
}

// New loads configuration, sets up logging and builds the router and nav bar.
func New(options Options) (*App, error) {
	cfg, err := resolveConfig(options)
	if err != nil {
		return nil, err
	}

	if options.LogPath != "" {
		cfg.Log.Path = options.LogPath
	}
	if options.LogLevel != "" {
		cfg.Log.Level = options.LogLevel
	}
	if options.DisableConsoleLog {
		internal.DisableConsoleLog()
	}
	internal.SetLogPath(cfg.Log.Path)
	internal.SetRawLogLevel(cfg.Log.Level)

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(internal.ParseLevel(cfg.Log.Level))
	}

	registry := DefaultRegistry()
	r, err := router.New(registry, cfg.App.StartRoute,
		router.WithLogger(internal.GetInternalLogger()),
		router.WithStateCacheSize(cfg.App.StateCacheSize),
	)
	if err != nil {
		return nil, NewConfigError("start_route", err)
	}

	app := &App{
		Config:   cfg,
		Registry: registry,
		Router:   r,
		NavBar:   navbar.NewBar().Attach(r),
	}
	GetLogger().Info("navigation ready", "start", r.CurrentRoute(), "routes", registry.Len())
	return app, nil
}

func resolveConfig(options Options) (config.Config, error) {
	if options.Config != nil {
		return *options.Config, nil
	}
	path := options.ConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, NewConfigError("config_path", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, NewConfigError("load_config", err)
	}
	return cfg, nil
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
