package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/specialistvlad/tailgrid/internal/ctxlog"
)

// Run executes the main application logic based on the App's configuration:
// a check, a watch loop, or a single build followed by the requested output.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	a.startHealthcheckServer()
	defer func() { _ = a.closeHealthcheckServer() }()

	switch {
	case a.config.Watch:
		return a.Watch(ctx)

	case a.config.Check:
		m, err := a.Check(ctx)
		if err != nil {
			return err
		}
		if err := a.emitConfig(ctx, m); err != nil {
			return err
		}
		logger.Info("Configuration is valid.", "path", a.config.ConfigPath)
		return nil
	}

	b, err := a.Build(ctx)
	if err != nil {
		return err
	}
	if err := a.emitConfig(ctx, b.Config); err != nil {
		return err
	}
	return a.emitResolved(b)
}

// emitConfig prints and/or writes the normalized record when asked to.
func (a *App) emitConfig(ctx context.Context, m *config.Model) error {
	if a.config.Print != "" {
		format, err := FormatByName(a.config.Print)
		if err != nil {
			return err
		}
		data, err := format.Encode(m)
		if err != nil {
			return fmt.Errorf("encode %s: %w", format.Name(), err)
		}
		if _, err := a.outW.Write(data); err != nil {
			return err
		}
	}
	if a.config.WritePath != "" {
		return a.Export(ctx, m, a.config.WritePath)
	}
	return nil
}

// emitResolved prints the rule of every requested class. Unknown classes
// are reported together after the known ones are printed.
func (a *App) emitResolved(b *Build) error {
	var errs []error
	for _, class := range a.config.Resolve {
		rule, err := b.Resolver.Resolve(class)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintln(a.outW, rule.String())
	}
	return errors.Join(errs...)
}
