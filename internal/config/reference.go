package config

// Reference returns the configuration the project ships with: markup, SVG and
// SQL-embedded markup are scanned, six semantic colors point at CSS custom
// properties so the palette can be switched at runtime, and the three
// first-party plugins are enabled.
func Reference() *Model {
	m := &Model{
		Content: []string{"./**/*.{html,svg,sql}", "./static/markdown.html"},
		Theme: Theme{Extend: Extension{
			Colors: map[string]string{
				"default": "var(--color-default)",
				"other":   "var(--color-secondary)",
				"accent":  "var(--color-accent)",
				"primary": "var(--color-primary)",
				"success": "var(--color-success)",
				"danger":  "var(--color-danger)",
			},
			LetterSpacing: map[string]string{
				"tighterer": "-0.1em",
			},
		}},
		Plugins: []string{
			"@tailwindcss/typography",
			"@tailwindcss/forms",
			"@tailwindcss/aspect-ratio",
		},
	}
	m.Normalize()
	return m
}
