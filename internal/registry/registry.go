package registry

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Plugin is an installed extension that registers utilities and may modify
// the token table.
type Plugin interface {
	// Name is the reference used in the configuration's plugin list.
	Name() string
	// Apply runs the plugin against a build's API.
	Apply(ctx context.Context, api *API) error
}

// Module is the interface that all bundled modules implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the installed plugins for a single application instance.
type Registry struct {
	plugins map[string]Plugin
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// NewWithModules creates a registry and lets each module register itself.
func NewWithModules(modules ...Module) *Registry {
	r := New()
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// RegisterPlugin installs p under p.Name().
func (r *Registry) RegisterPlugin(p Plugin) {
	name := p.Name()
	if name == "" {
		panic("plugin name must not be empty")
	}
	if _, exists := r.plugins[name]; exists {
		panic(fmt.Sprintf("plugin '%s' already registered", name))
	}
	slog.Debug("Registering plugin.", "name", name)
	r.plugins[name] = p
}

// Names returns the installed plugin references in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.plugins))
}

// Lookup returns the plugin installed under name.
func (r *Registry) Lookup(name string) (Plugin, bool) {
	p, ok := r.plugins[name]
	return p, ok
}
