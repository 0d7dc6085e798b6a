// Package utility models utility-class rules and resolves a single class
// name against the applied token table. It answers "what does text-primary
// mean under this configuration"; scanning markup for class names and
// writing stylesheets belong to the consuming build tool.
package utility

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownClass is returned when a class matches neither a plugin utility
// nor a core prefix backed by a token.
var ErrUnknownClass = errors.New("unknown utility class")

// SourceCore marks rules derived from the core prefixes.
const SourceCore = "core"

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is the style a utility class stands for.
type Rule struct {
	Class        string
	Declarations []Declaration
	// Source is SourceCore or the name of the plugin that added the rule.
	Source string
}

// Selector returns the class selector with CSS-significant characters
// escaped, e.g. ".w-1\/2".
func (r Rule) Selector() string {
	var b strings.Builder
	b.WriteByte('.')
	for _, c := range r.Class {
		if !(c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c > 0x7f) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// String renders the rule on one line, e.g.
// ".text-primary { color: var(--color-primary); }".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector())
	b.WriteString(" {")
	for _, d := range r.Declarations {
		fmt.Fprintf(&b, " %s: %s;", d.Property, d.Value)
	}
	b.WriteString(" }")
	return b.String()
}

// Set holds plugin-provided rules keyed by class, remembering the order in
// which classes were first added.
type Set struct {
	rules map[string]Rule
	order []string
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{rules: make(map[string]Rule)}
}

// Add stores r. When the class was already present the previous rule is
// returned and r takes its place, keeping the original position.
func (s *Set) Add(r Rule) (Rule, bool) {
	prev, exists := s.rules[r.Class]
	if !exists {
		s.order = append(s.order, r.Class)
	}
	s.rules[r.Class] = r
	return prev, exists
}

// Lookup returns the rule for class.
func (s *Set) Lookup(class string) (Rule, bool) {
	r, ok := s.rules[class]
	return r, ok
}

// Classes returns the classes in first-added order.
func (s *Set) Classes() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of rules.
func (s *Set) Len() int { return len(s.rules) }
