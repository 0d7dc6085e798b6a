// Package typography provides the "@tailwindcss/typography" plugin: the
// prose family of utilities for styling long-form rendered content.
package typography

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/specialistvlad/tailgrid/internal/registry"
	"github.com/specialistvlad/tailgrid/internal/theme"
	"github.com/specialistvlad/tailgrid/internal/utility"
)

// Name is the reference used in configuration files.
const Name = "@tailwindcss/typography"

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

// sizes are the prose size modifiers: font-size and line-height.
var sizes = map[string][2]string{
	"sm":   {"0.875rem", "1.7142857"},
	"base": {"1rem", "1.75"},
	"lg":   {"1.125rem", "1.7777778"},
	"xl":   {"1.25rem", "1.8"},
	"2xl":  {"1.5rem", "1.6666667"},
}

// grayScales get a prose-<name> color theme when the table carries the
// shades it needs.
var grayScales = []string{"slate", "gray"}

// Apply implements registry.Plugin.
func (p *Plugin) Apply(ctx context.Context, api *registry.API) error {
	for size, v := range sizes {
		if _, ok := api.Theme.Lookup(theme.Typography, size); !ok {
			api.Theme.Set(theme.Typography, size, v[0]+"/"+v[1])
		}
	}

	api.AddUtilities(utility.Rule{
		Class: "prose",
		Declarations: []utility.Declaration{
			{Property: "color", Value: "var(--tw-prose-body)"},
			{Property: "max-width", Value: "65ch"},
		},
	})

	section := api.Theme.Section(theme.Typography)
	for _, size := range slices.Sorted(maps.Keys(section)) {
		fontSize, lineHeight, ok := cutPair(section[size])
		if !ok {
			continue
		}
		api.AddUtilities(utility.Rule{
			Class: "prose-" + size,
			Declarations: []utility.Declaration{
				{Property: "font-size", Value: fontSize},
				{Property: "line-height", Value: lineHeight},
			},
		})
	}

	for _, scale := range grayScales {
		if rule, ok := colorTheme(api.Theme, scale); ok {
			api.AddUtilities(rule)
		}
	}

	api.AddUtilities(utility.Rule{
		Class: "prose-invert",
		Declarations: []utility.Declaration{
			{Property: "--tw-prose-body", Value: "var(--tw-prose-invert-body)"},
			{Property: "--tw-prose-headings", Value: "var(--tw-prose-invert-headings)"},
			{Property: "--tw-prose-links", Value: "var(--tw-prose-invert-links)"},
		},
	})
	return nil
}

// colorTheme builds prose-<scale> from the table's shades of scale.
func colorTheme(t *theme.Table, scale string) (utility.Rule, bool) {
	roles := []struct {
		property string
		shade    string
	}{
		{"--tw-prose-body", "700"},
		{"--tw-prose-headings", "900"},
		{"--tw-prose-lead", "600"},
		{"--tw-prose-links", "900"},
		{"--tw-prose-bold", "900"},
		{"--tw-prose-counters", "500"},
		{"--tw-prose-bullets", "300"},
		{"--tw-prose-hr", "200"},
		{"--tw-prose-quotes", "900"},
		{"--tw-prose-captions", "500"},
	}

	rule := utility.Rule{Class: "prose-" + scale}
	for _, role := range roles {
		v, ok := t.Lookup(theme.Colors, scale+"-"+role.shade)
		if !ok {
			return utility.Rule{}, false
		}
		rule.Declarations = append(rule.Declarations, utility.Declaration{Property: role.property, Value: v})
	}
	return rule, true
}

// cutPair splits a "font-size/line-height" token.
func cutPair(v string) (string, string, bool) {
	a, b, ok := strings.Cut(v, "/")
	if !ok || a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}
