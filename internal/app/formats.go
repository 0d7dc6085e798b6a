package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/specialistvlad/tailgrid/internal/hcl"
	"github.com/specialistvlad/tailgrid/internal/yamlcfg"
)

// extensions maps file extensions to the syntax they are read with.
var extensions = map[string]func() config.Format{
	".hcl":  func() config.Format { return hcl.NewLoader() },
	".json": func() config.Format { return hcl.NewJSONLoader() },
	".yaml": func() config.Format { return yamlcfg.NewLoader() },
	".yml":  func() config.Format { return yamlcfg.NewLoader() },
}

// FormatFor picks the format of a configuration file by its extension.
func FormatFor(path string) (config.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	newFormat, ok := extensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want .hcl, .json, .yaml or .yml)", config.ErrUnsupportedFormat, path)
	}
	return newFormat(), nil
}

// FormatByName returns the format registered under name ("hcl", "json",
// "yaml").
func FormatByName(name string) (config.Format, error) {
	for _, newFormat := range extensions {
		if f := newFormat(); f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedFormat, name)
}
