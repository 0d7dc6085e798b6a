package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/specialistvlad/tailgrid/internal/ctxlog"
	"github.com/specialistvlad/tailgrid/internal/registry"
)

// defaultDebounce is how long Watch waits after the last file event before
// it rebuilds.
const defaultDebounce = 500 * time.Millisecond

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	ctx      context.Context
	config   *Config
	registry *registry.Registry

	debounce   time.Duration
	httpServer *http.Server

	buildMu sync.Mutex // serializes builds

	mu        sync.RWMutex
	current   *Build
	lastErr   error
	builtAt   time.Time
	listeners []chan<- *Build
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW. Without modules the core plugin modules are
// installed.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.NewWithModules(modules...)
	logger.Debug("All plugin modules registered.", "count", len(modules), "plugins", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		ctx:      ctx,
		config:   cfg,
		registry: reg,
		debounce: defaultDebounce,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Current returns the last successful build, or nil.
func (a *App) Current() *Build {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// LastError returns the error of the most recent build attempt, or nil when
// it succeeded.
func (a *App) LastError() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastErr
}

// RegisterListener registers a channel that receives every successful
// build. Sends are non-blocking; a full channel misses the build.
func (a *App) RegisterListener(ch chan<- *Build) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, ch)
}

// record stores the outcome of a build attempt. A failed attempt keeps the
// previous build current.
func (a *App) record(b *Build, err error) {
	a.mu.Lock()
	a.lastErr = err
	if err != nil {
		a.mu.Unlock()
		return
	}
	a.current = b
	a.builtAt = time.Now()
	listeners := append([]chan<- *Build(nil), a.listeners...)
	a.mu.Unlock()

	for _, ch := range listeners {
		select {
		case ch <- b:
		default:
			a.logger.Warn("Build listener is not keeping up, build dropped.")
		}
	}
}

// withLogger makes sure ctx carries the app's logger.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
