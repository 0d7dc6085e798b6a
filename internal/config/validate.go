package config

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks the record's structure: every content pattern is a valid
// glob, every token is well formed, and no list repeats an entry. Plugin
// references are only checked for presence here; whether they resolve to an
// installed plugin is decided by the registry.
func Validate(m *Model) error {
	var errs []string

	if len(m.Content) == 0 {
		errs = append(errs, "content: at least one pattern is required")
	}
	seen := make(map[string]int)
	for i, pattern := range m.Content {
		switch {
		case pattern == "":
			errs = append(errs, fmt.Sprintf("content[%d]: pattern cannot be empty", i))
		case !doublestar.ValidatePattern(pattern):
			errs = append(errs, fmt.Sprintf("content[%d]: %q is not a valid glob pattern", i, pattern))
		}
		if first, dup := seen[pattern]; dup {
			errs = append(errs, fmt.Sprintf("content[%d]: %q repeats content[%d]", i, pattern, first))
			continue
		}
		seen[pattern] = i
	}

	errs = append(errs, validateTokens("theme.extend.colors", m.Theme.Extend.Colors, CheckPropertyReference)...)
	errs = append(errs, validateTokens("theme.extend.letterSpacing", m.Theme.Extend.LetterSpacing, CheckLength)...)

	clear(seen)
	for i, ref := range m.Plugins {
		if ref == "" {
			errs = append(errs, fmt.Sprintf("plugins[%d]: reference cannot be empty", i))
			continue
		}
		if first, dup := seen[ref]; dup {
			errs = append(errs, fmt.Sprintf("plugins[%d]: %q repeats plugins[%d]", i, ref, first))
			continue
		}
		seen[ref] = i
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

func validateTokens(mapping string, tokens map[string]string, check func(string) error) []string {
	var errs []string
	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := CheckTokenKey(k); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", mapping, err))
			continue
		}
		if err := check(tokens[k]); err != nil {
			errs = append(errs, fmt.Sprintf("%s.%s: %v", mapping, k, err))
		}
	}
	return errs
}
