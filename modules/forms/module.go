// Package forms provides the "@tailwindcss/forms" plugin using the class
// strategy: form controls are reset only where a form-* class is applied.
package forms

import (
	"context"

	"github.com/specialistvlad/tailgrid/internal/registry"
	"github.com/specialistvlad/tailgrid/internal/theme"
	"github.com/specialistvlad/tailgrid/internal/utility"
)

// Name is the reference used in configuration files.
const Name = "@tailwindcss/forms"

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

// Apply implements registry.Plugin. Border and accent colors come from the
// token table so a theme that overrides gray-500 or blue-600 restyles the
// controls too.
func (p *Plugin) Apply(ctx context.Context, api *registry.API) error {
	border := color(api.Theme, "gray-500", "#6b7280")
	accent := color(api.Theme, "blue-600", "#2563eb")
	white := color(api.Theme, "white", "#fff")

	base := []utility.Declaration{
		{Property: "appearance", Value: "none"},
		{Property: "background-color", Value: white},
		{Property: "border-color", Value: border},
		{Property: "border-width", Value: "1px"},
		{Property: "border-radius", Value: "0px"},
		{Property: "padding", Value: "0.5rem 0.75rem"},
		{Property: "font-size", Value: "1rem"},
		{Property: "line-height", Value: "1.5rem"},
	}
	for _, class := range []string{"form-input", "form-textarea", "form-multiselect"} {
		api.AddUtilities(utility.Rule{Class: class, Declarations: base})
	}
	api.AddUtilities(utility.Rule{
		Class: "form-select",
		Declarations: append(append([]utility.Declaration(nil), base...),
			utility.Declaration{Property: "padding-right", Value: "2.5rem"},
			utility.Declaration{Property: "print-color-adjust", Value: "exact"},
		),
	})

	check := func(radius string) []utility.Declaration {
		return []utility.Declaration{
			{Property: "appearance", Value: "none"},
			{Property: "padding", Value: "0"},
			{Property: "print-color-adjust", Value: "exact"},
			{Property: "display", Value: "inline-block"},
			{Property: "vertical-align", Value: "middle"},
			{Property: "flex-shrink", Value: "0"},
			{Property: "height", Value: "1rem"},
			{Property: "width", Value: "1rem"},
			{Property: "color", Value: accent},
			{Property: "background-color", Value: white},
			{Property: "border-color", Value: border},
			{Property: "border-width", Value: "1px"},
			{Property: "border-radius", Value: radius},
		}
	}
	api.AddUtilities(
		utility.Rule{Class: "form-checkbox", Declarations: check("0px")},
		utility.Rule{Class: "form-radio", Declarations: check("100%")},
	)
	return nil
}

func color(t *theme.Table, key, fallback string) string {
	if v, ok := t.Lookup(theme.Colors, key); ok {
		return v
	}
	return fallback
}
