package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/tailgrid/internal/ctxlog"
	"github.com/specialistvlad/tailgrid/internal/theme"
	"github.com/specialistvlad/tailgrid/internal/utility"
)

// API is what a plugin sees while it is applied.
type API struct {
	// Theme is the build's token table. Plugins may read and extend it;
	// later plugins see the changes of earlier ones.
	Theme *theme.Table

	plugin    string
	utilities *utility.Set
	logger    *slog.Logger
}

// AddUtilities registers rules under the current plugin's name. A class that
// is already defined is replaced.
func (a *API) AddUtilities(rules ...utility.Rule) {
	for _, rule := range rules {
		rule.Source = a.plugin
		if prev, replaced := a.utilities.Add(rule); replaced {
			a.logger.Debug("Utility redefined.", "class", rule.Class, "previous_source", prev.Source, "source", rule.Source)
		}
	}
}

// Apply runs the plugins in order against table and returns the utilities
// they registered. The first failing plugin aborts the build.
func (r *Registry) Apply(ctx context.Context, plugins []Plugin, table *theme.Table) (*utility.Set, error) {
	logger := ctxlog.FromContext(ctx)
	set := utility.NewSet()

	for i, p := range plugins {
		pctx, plogger := ctxlog.With(ctx, "plugin", p.Name())
		plogger.Debug("Applying plugin.", "position", i)

		before := set.Len()
		api := &API{Theme: table, plugin: p.Name(), utilities: set, logger: plogger}
		if err := p.Apply(pctx, api); err != nil {
			return nil, fmt.Errorf("plugin %q failed: %w", p.Name(), err)
		}

		plogger.Debug("Plugin applied.", "utilities_added", set.Len()-before)
	}

	logger.Debug("All plugins applied.", "plugins", len(plugins), "utilities", set.Len())
	return set, nil
}
