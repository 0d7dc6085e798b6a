package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFiles creates every file in files below root. Keys are slash-separated
// relative paths; parent directories are created as needed.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// ReferenceHCL is the project's configuration written in HCL.
const ReferenceHCL = `
content = ["./**/*.{html,svg,sql}", "./static/markdown.html"]

theme {
  extend {
    colors = {
      default = "var(--color-default)"
      other   = "var(--color-secondary)"
      accent  = "var(--color-accent)"
      primary = "var(--color-primary)"
      success = "var(--color-success)"
      danger  = "var(--color-danger)"
    }
    letter_spacing = {
      tighterer = "-0.1em"
    }
  }
}

plugins = [
  "@tailwindcss/typography",
  "@tailwindcss/forms",
  "@tailwindcss/aspect-ratio",
]
`

// ReferenceYAML is the project's configuration written in YAML.
const ReferenceYAML = `
content:
  - "./**/*.{html,svg,sql}"
  - ./static/markdown.html
theme:
  extend:
    colors:
      default: var(--color-default)
      other: var(--color-secondary)
      accent: var(--color-accent)
      primary: var(--color-primary)
      success: var(--color-success)
      danger: var(--color-danger)
    letterSpacing:
      tighterer: -0.1em
plugins:
  - "@tailwindcss/typography"
  - "@tailwindcss/forms"
  - "@tailwindcss/aspect-ratio"
`
