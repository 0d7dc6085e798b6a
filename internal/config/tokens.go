package config

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	tokenKeyRegex   = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_./-]*$`)
	propertyRegex   = regexp.MustCompile(`^--[A-Za-z0-9_-]+$`)
	cssLengthRegex  = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)(em|rem|px|ex|ch|vw|vh|vmin|vmax|%|pt|pc|cm|mm|in)$`)
	zeroLengthRegex = regexp.MustCompile(`^[+-]?0+(\.0+)?$`)
)

// CheckTokenKey reports whether key can name a theme token. Keys end up in
// class names, so whitespace and a leading dash are rejected.
func CheckTokenKey(key string) error {
	if key == "" {
		return fmt.Errorf("token name cannot be empty")
	}
	if !tokenKeyRegex.MatchString(key) {
		return fmt.Errorf("invalid token name %q", key)
	}
	return nil
}

// CheckPropertyReference reports whether value is a custom-property
// reference such as var(--color-primary) or var(--color-primary, #000).
func CheckPropertyReference(value string) error {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "var(") || !strings.HasSuffix(v, ")") {
		return fmt.Errorf("%q is not a custom-property reference, expected var(--name)", value)
	}
	inner := strings.TrimSpace(v[len("var(") : len(v)-1])
	name, fallback, hasFallback := strings.Cut(inner, ",")
	name = strings.TrimSpace(name)
	if !propertyRegex.MatchString(name) {
		return fmt.Errorf("%q references invalid custom property %q", value, name)
	}
	if hasFallback && strings.TrimSpace(fallback) == "" {
		return fmt.Errorf("%q has an empty fallback", value)
	}
	return nil
}

// PropertyName returns the custom property referenced by a var() token,
// e.g. "--color-primary". It returns "" when value is not a reference.
func PropertyName(value string) string {
	if CheckPropertyReference(value) != nil {
		return ""
	}
	inner := strings.TrimSpace(value)
	inner = inner[len("var(") : len(inner)-1]
	name, _, _ := strings.Cut(inner, ",")
	return strings.TrimSpace(name)
}

// CheckLength reports whether value is a CSS length literal. Unitless zero
// is the only unitless value accepted.
func CheckLength(value string) error {
	if zeroLengthRegex.MatchString(value) || cssLengthRegex.MatchString(value) {
		return nil
	}
	return fmt.Errorf("%q is not a valid length", value)
}
