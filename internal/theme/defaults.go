package theme

// Defaults returns the base token table: the color palette subset shipped
// with the tool, the default letter-spacing scale, and an empty aspect-ratio
// section for the aspect-ratio plugin to fill.
func Defaults() *Table {
	t := NewTable()

	for k, v := range map[string]string{
		"inherit":     "inherit",
		"current":     "currentColor",
		"transparent": "transparent",
		"black":       "#000",
		"white":       "#fff",
	} {
		t.Set(Colors, k, v)
	}

	shades := []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}
	palettes := map[string][]string{
		"slate": {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"},
		"gray":  {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"},
		"red":   {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"},
		"green": {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"},
		"blue":  {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"},
	}
	for name, palette := range palettes {
		for i, shade := range shades {
			t.Set(Colors, name+"-"+shade, palette[i])
		}
	}

	for k, v := range map[string]string{
		"tighter": "-0.05em",
		"tight":   "-0.025em",
		"normal":  "0em",
		"wide":    "0.025em",
		"wider":   "0.05em",
		"widest":  "0.1em",
	} {
		t.Set(LetterSpacing, k, v)
	}

	t.sections[AspectRatio] = make(map[string]string)
	return t
}
