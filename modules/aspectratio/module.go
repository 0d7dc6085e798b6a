// Package aspectratio provides the "@tailwindcss/aspect-ratio" plugin:
// padding-based aspect-w-N / aspect-h-N utilities.
package aspectratio

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/specialistvlad/tailgrid/internal/registry"
	"github.com/specialistvlad/tailgrid/internal/theme"
	"github.com/specialistvlad/tailgrid/internal/utility"
)

// Name is the reference used in configuration files.
const Name = "@tailwindcss/aspect-ratio"

// maxRatio is the largest ratio term filled in by default.
const maxRatio = 16

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs the plugin.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(&Plugin{})
}

// Plugin implements registry.Plugin.
type Plugin struct{}

// Name implements registry.Plugin.
func (p *Plugin) Name() string { return Name }

// Apply implements registry.Plugin. Terms already present in the
// aspectRatio section are kept; 1..16 are added when missing.
func (p *Plugin) Apply(ctx context.Context, api *registry.API) error {
	for i := 1; i <= maxRatio; i++ {
		key := strconv.Itoa(i)
		if _, ok := api.Theme.Lookup(theme.AspectRatio, key); !ok {
			api.Theme.Set(theme.AspectRatio, key, key)
		}
	}

	section := api.Theme.Section(theme.AspectRatio)
	keys := make([]string, 0, len(section))
	for k, v := range section {
		if n, err := strconv.ParseFloat(v, 64); err != nil || n <= 0 {
			return fmt.Errorf("aspectRatio.%s: %q is not a positive number", k, v)
		}
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareRatioKeys)

	for _, k := range keys {
		api.AddUtilities(utility.Rule{
			Class: "aspect-w-" + k,
			Declarations: []utility.Declaration{
				{Property: "position", Value: "relative"},
				{Property: "padding-bottom", Value: "calc(var(--tw-aspect-h) / var(--tw-aspect-w) * 100%)"},
				{Property: "--tw-aspect-w", Value: section[k]},
			},
		})
	}
	for _, k := range keys {
		api.AddUtilities(utility.Rule{
			Class:        "aspect-h-" + k,
			Declarations: []utility.Declaration{{Property: "--tw-aspect-h", Value: section[k]}},
		})
	}
	api.AddUtilities(utility.Rule{
		Class: "aspect-none",
		Declarations: []utility.Declaration{
			{Property: "position", Value: "static"},
			{Property: "padding-bottom", Value: "0"},
		},
	})
	return nil
}

// compareRatioKeys orders numeric keys numerically and everything else
// lexically after them.
func compareRatioKeys(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na - nb
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
