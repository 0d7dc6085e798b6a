package utility

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/tailgrid/internal/theme"
)

// corePrefix binds a class prefix to a token section and the property the
// token is written to.
type corePrefix struct {
	prefix   string
	section  string
	property string
}

var corePrefixes = []corePrefix{
	{"text-", theme.Colors, "color"},
	{"bg-", theme.Colors, "background-color"},
	{"border-", theme.Colors, "border-color"},
	{"tracking-", theme.LetterSpacing, "letter-spacing"},
}

// Resolver resolves class names against an applied table and the rules
// added by plugins.
type Resolver struct {
	table   *theme.Table
	plugins *Set
}

// NewResolver returns a resolver. plugins may be nil.
func NewResolver(table *theme.Table, plugins *Set) *Resolver {
	if plugins == nil {
		plugins = NewSet()
	}
	return &Resolver{table: table, plugins: plugins}
}

// Resolve returns the rule for class. Plugin rules take precedence over
// core prefixes.
func (r *Resolver) Resolve(class string) (Rule, error) {
	if rule, ok := r.plugins.Lookup(class); ok {
		return rule, nil
	}
	for _, p := range corePrefixes {
		key, ok := strings.CutPrefix(class, p.prefix)
		if !ok || key == "" {
			continue
		}
		if value, ok := r.table.Lookup(p.section, key); ok {
			return Rule{
				Class:        class,
				Declarations: []Declaration{{Property: p.property, Value: value}},
				Source:       SourceCore,
			}, nil
		}
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrUnknownClass, class)
}
