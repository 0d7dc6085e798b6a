package config

import (
	"maps"
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Model is the unified representation of one configuration record.
type Model struct {
	// Content holds the glob patterns of files scanned for class usage.
	Content []string
	Theme   Theme
	// Plugins lists plugin references in application order.
	Plugins []string
}

// Theme groups the theme customisations. Only extensions are supported;
// replacing the default token table wholesale is not.
type Theme struct {
	Extend Extension
}

// Extension holds tokens merged on top of the default token table.
type Extension struct {
	Colors        map[string]string
	LetterSpacing map[string]string
}

// New returns an empty record in normal form.
func New() *Model {
	m := &Model{}
	m.Normalize()
	return m
}

// Normalize puts m into normal form: maps are never nil and empty slices
// are nil. Loaders call it before returning.
func (m *Model) Normalize() {
	if m.Theme.Extend.Colors == nil {
		m.Theme.Extend.Colors = make(map[string]string)
	}
	if m.Theme.Extend.LetterSpacing == nil {
		m.Theme.Extend.LetterSpacing = make(map[string]string)
	}
	if len(m.Content) == 0 {
		m.Content = nil
	}
	if len(m.Plugins) == 0 {
		m.Plugins = nil
	}
}

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	c := &Model{
		Content: slices.Clone(m.Content),
		Plugins: slices.Clone(m.Plugins),
		Theme: Theme{Extend: Extension{
			Colors:        maps.Clone(m.Theme.Extend.Colors),
			LetterSpacing: maps.Clone(m.Theme.Extend.LetterSpacing),
		}},
	}
	c.Normalize()
	return c
}

// Equal reports whether two records declare the same configuration.
func Equal(a, b *Model) bool {
	return Diff(a, b) == ""
}

// Diff returns a human-readable (-a +b) diff, or "" when the records match.
// Nil and empty collections compare equal.
func Diff(a, b *Model) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty())
}
