// Package config defines the format-agnostic configuration record for a
// utility-CSS build: which files to scan, which theme tokens to extend, and
// which plugins to apply, along with the Loader and Encoder interfaces that
// concrete formats (HCL, YAML) implement.
//
// The Model is the single source of truth for the theme, fsutil and registry
// packages. Loaders always return it in normal form, so two records can be
// compared directly.
package config
