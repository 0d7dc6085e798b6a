// Package theme holds the design-token table that utility classes resolve
// against. The table starts from built-in defaults, then the configuration's
// extensions are merged in, then plugins may add sections of their own.
package theme

import (
	"maps"
	"slices"

	"github.com/specialistvlad/tailgrid/internal/config"
)

// Section names used by the core and by the bundled plugins.
const (
	Colors        = "colors"
	LetterSpacing = "letterSpacing"
	AspectRatio   = "aspectRatio"
	Typography    = "typography"
)

// Table maps section -> token name -> value. It is not safe for concurrent
// mutation; a build owns its table.
type Table struct {
	sections map[string]map[string]string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{sections: make(map[string]map[string]string)}
}

// Set adds or replaces a single token.
func (t *Table) Set(section, key, value string) {
	s, ok := t.sections[section]
	if !ok {
		s = make(map[string]string)
		t.sections[section] = s
	}
	s[key] = value
}

// Lookup returns the value of a token.
func (t *Table) Lookup(section, key string) (string, bool) {
	v, ok := t.sections[section][key]
	return v, ok
}

// Section returns a copy of one section, or an empty map.
func (t *Table) Section(name string) map[string]string {
	out := maps.Clone(t.sections[name])
	if out == nil {
		out = make(map[string]string)
	}
	return out
}

// Sections returns the section names in sorted order.
func (t *Table) Sections() []string {
	return slices.Sorted(maps.Keys(t.sections))
}

// Len returns the number of tokens across all sections.
func (t *Table) Len() int {
	n := 0
	for _, s := range t.sections {
		n += len(s)
	}
	return n
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	c := NewTable()
	for name, s := range t.sections {
		c.sections[name] = maps.Clone(s)
	}
	return c
}

// Extend merges the configuration's theme extensions into t. Declared
// tokens are added or replace defaults of the same name; every other
// default stays in place.
func (t *Table) Extend(ext config.Extension) {
	for k, v := range ext.Colors {
		t.Set(Colors, k, v)
	}
	for k, v := range ext.LetterSpacing {
		t.Set(LetterSpacing, k, v)
	}
}

// Build returns the defaults with ext merged on top.
func Build(ext config.Extension) *Table {
	t := Defaults()
	t.Extend(ext)
	return t
}
