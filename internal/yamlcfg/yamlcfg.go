// Package yamlcfg implements config.Loader and config.Encoder for YAML files.
// Decoding is strict: unknown fields and repeated mapping keys are errors.
package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/specialistvlad/tailgrid/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// document mirrors the on-disk layout. Keys follow the camelCase spelling
// used by the utility-CSS ecosystem.
type document struct {
	Content []string  `yaml:"content,omitempty"`
	Theme   *themeDoc `yaml:"theme,omitempty"`
	Plugins []string  `yaml:"plugins,omitempty"`
}

type themeDoc struct {
	Extend *extendDoc `yaml:"extend,omitempty"`
}

type extendDoc struct {
	Colors        map[string]string `yaml:"colors,omitempty"`
	LetterSpacing map[string]string `yaml:"letterSpacing,omitempty"`
}

// Loader is the YAML configuration format.
type Loader struct{}

// NewLoader returns a YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Name implements config.Format.
func (l *Loader) Name() string { return "yaml" }

// Load reads and decodes a YAML configuration file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	ctxlog.FromContext(ctx).Debug("YAML loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return l.Decode(ctx, src, path)
}

// Decode parses src as if it had been read from filename.
func (l *Loader) Decode(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, classify(err))
	}

	// A second document in the same file is almost certainly a mistake.
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode %s: only one YAML document is allowed", filename)
	}

	m := &config.Model{Content: doc.Content, Plugins: doc.Plugins}
	if doc.Theme != nil && doc.Theme.Extend != nil {
		m.Theme.Extend.Colors = doc.Theme.Extend.Colors
		m.Theme.Extend.LetterSpacing = doc.Theme.Extend.LetterSpacing
	}
	m.Normalize()

	logger.Debug("YAML loading complete.",
		"path", filename,
		"content_patterns", len(m.Content),
		"colors", len(m.Theme.Extend.Colors),
		"letter_spacing", len(m.Theme.Extend.LetterSpacing),
		"plugins", len(m.Plugins),
	)
	return m, nil
}

// Encode renders m as YAML with sorted map keys and two-space indentation.
func (l *Loader) Encode(m *config.Model) ([]byte, error) {
	doc := document{Content: m.Content, Plugins: m.Plugins}
	ext := m.Theme.Extend
	if len(ext.Colors) > 0 || len(ext.LetterSpacing) > 0 {
		doc.Theme = &themeDoc{Extend: &extendDoc{
			Colors:        ext.Colors,
			LetterSpacing: ext.LetterSpacing,
		}}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// classify marks yaml.v3's repeated-key failures with config.ErrDuplicateKey
// so callers can use errors.Is regardless of format.
func classify(err error) error {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		for _, msg := range typeErr.Errors {
			if strings.Contains(msg, "already defined") {
				return fmt.Errorf("%w: %w", config.ErrDuplicateKey, err)
			}
		}
		return err
	}
	if strings.Contains(err.Error(), "already defined") {
		return fmt.Errorf("%w: %w", config.ErrDuplicateKey, err)
	}
	return err
}
