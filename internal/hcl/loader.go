package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/specialistvlad/tailgrid/internal/ctxlog"
)

// Loader is the HCL implementation of config.Loader and config.Encoder.
// Files ending in .json are read with HCL's JSON syntax.
type Loader struct {
	json bool
}

// NewLoader returns a loader for native HCL syntax.
func NewLoader() *Loader {
	return &Loader{}
}

// NewJSONLoader returns a loader for HCL's JSON syntax.
func NewJSONLoader() *Loader {
	return &Loader{json: true}
}

// Name implements config.Format.
func (l *Loader) Name() string {
	if l.json {
		return "json"
	}
	return "hcl"
}

// Load reads and translates a single configuration file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path, "syntax", l.Name())

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return l.Decode(ctx, src, path)
}

// Decode parses src as if it had been read from filename.
func (l *Loader) Decode(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if l.json || strings.EqualFold(filepath.Ext(filename), ".json") {
		file, diags = parser.ParseJSON(src, filename)
	} else {
		file, diags = parser.ParseHCL(src, filename)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, diags)
	}

	m, err := l.translate(ctx, &root)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	logger.Debug("HCL loading complete.",
		"path", filename,
		"content_patterns", len(m.Content),
		"colors", len(m.Theme.Extend.Colors),
		"letter_spacing", len(m.Theme.Extend.LetterSpacing),
		"plugins", len(m.Plugins),
	)
	return m, nil
}
