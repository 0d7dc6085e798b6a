package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/specialistvlad/tailgrid/internal/ctxlog"
	"github.com/specialistvlad/tailgrid/internal/fsutil"
	"github.com/specialistvlad/tailgrid/internal/registry"
	"github.com/specialistvlad/tailgrid/internal/theme"
	"github.com/specialistvlad/tailgrid/internal/utility"
)

// Build is the result of one build invocation.
type Build struct {
	ConfigPath string
	Config     *config.Model
	// Files are the candidate files the content globs resolved to.
	Files []string
	// Theme is the default table with the record's extensions merged in,
	// after every plugin has been applied.
	Theme *theme.Table
	// Plugins are the applied plugin names in order.
	Plugins   []string
	Utilities *utility.Set
	Resolver  *utility.Resolver
}

// Load reads the configuration file in the format implied by its extension.
func (a *App) Load(ctx context.Context) (*config.Model, error) {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)

	format, err := FormatFor(a.config.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loading configuration.", "path", a.config.ConfigPath, "format", format.Name())

	m, err := format.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// Check loads and validates the record and resolves its plugins without
// touching the content files.
func (a *App) Check(ctx context.Context) (*config.Model, error) {
	m, _, err := a.check(ctx)
	return m, err
}

func (a *App) check(ctx context.Context) (*config.Model, []registry.Plugin, error) {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)

	m, err := a.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Validate(m); err != nil {
		return nil, nil, err
	}
	logger.Debug("Configuration is valid.", "content", len(m.Content), "colors", len(m.Theme.Extend.Colors), "letter_spacing", len(m.Theme.Extend.LetterSpacing))

	plugins, err := a.registry.Resolve(m.Plugins)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Plugins resolved.", "plugins", m.Plugins)
	return m, plugins, nil
}

// Build runs one full build invocation and records its outcome. A failed
// build leaves the previous one current.
func (a *App) Build(ctx context.Context) (*Build, error) {
	a.buildMu.Lock()
	defer a.buildMu.Unlock()

	b, err := a.build(ctx)
	a.record(b, err)
	return b, err
}

func (a *App) build(ctx context.Context) (*Build, error) {
	ctx, logger := ctxlog.With(a.withLogger(ctx), "config_path", a.config.ConfigPath)
	logger.Debug("Build started.")

	m, plugins, err := a.check(ctx)
	if err != nil {
		return nil, err
	}

	content, err := fsutil.ResolveContent(ctx, a.config.BaseDir, m.Content, fsutil.Options{
		Workers: a.config.WorkerCount,
		Strict:  a.config.Strict,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content: %w", err)
	}

	table := theme.Build(m.Theme.Extend)
	logger.Debug("Theme merged.", "tokens", table.Len())

	utilities, err := a.registry.Apply(ctx, plugins, table)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(plugins))
	for i, p := range plugins {
		names[i] = p.Name()
	}

	b := &Build{
		ConfigPath: a.config.ConfigPath,
		Config:     m,
		Files:      content.Files,
		Theme:      table,
		Plugins:    names,
		Utilities:  utilities,
		Resolver:   utility.NewResolver(table, utilities),
	}
	logger.Info("Build finished.", "files", len(b.Files), "tokens", table.Len(), "plugins", len(names), "utilities", utilities.Len())
	return b, nil
}
