package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/specialistvlad/tailgrid/internal/fsutil"
	"github.com/specialistvlad/tailgrid/internal/registry"
	"github.com/specialistvlad/tailgrid/internal/testutil"
	"github.com/specialistvlad/tailgrid/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ReferenceProject(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := SetupProject(t, "tailgrid.hcl", testutil.ReferenceHCL)
	a, _, _ := SetupAppTest(t, Config{ConfigPath: path})
	root := filepath.Dir(path)

	// --- Act ---
	b, err := a.Build(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "db", "report.sql"),
		filepath.Join(root, "index.html"),
		filepath.Join(root, "static", "icon.svg"),
		filepath.Join(root, "static", "markdown.html"),
	}, b.Files)
	assert.Equal(t, config.Reference().Plugins, b.Plugins)
	assert.True(t, config.Equal(config.Reference(), b.Config), config.Diff(config.Reference(), b.Config))

	rule, err := b.Resolver.Resolve("text-primary")
	require.NoError(t, err)
	assert.Equal(t, ".text-primary { color: var(--color-primary); }", rule.String())

	rule, err = b.Resolver.Resolve("tracking-tighterer")
	require.NoError(t, err)
	assert.Equal(t, ".tracking-tighterer { letter-spacing: -0.1em; }", rule.String())

	// Extending keeps the defaults.
	_, ok := b.Theme.Lookup(theme.LetterSpacing, "tight")
	assert.True(t, ok)
	_, err = b.Resolver.Resolve("bg-blue-500")
	assert.NoError(t, err)

	for _, class := range []string{"prose", "form-input", "aspect-w-16"} {
		_, err := b.Resolver.Resolve(class)
		assert.NoError(t, err, class)
	}

	assert.Same(t, b, a.Current())
	assert.NoError(t, a.LastError())
}

func TestBuild_FormatsAgree(t *testing.T) {
	t.Parallel()

	hclPath := SetupProject(t, "tailgrid.hcl", testutil.ReferenceHCL)
	yamlPath := SetupProject(t, "tailgrid.yaml", testutil.ReferenceYAML)

	hclApp, _, _ := SetupAppTest(t, Config{ConfigPath: hclPath})
	yamlApp, _, _ := SetupAppTest(t, Config{ConfigPath: yamlPath})

	fromHCL, err := hclApp.Load(context.Background())
	require.NoError(t, err)
	fromYAML, err := yamlApp.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, config.Diff(fromHCL, fromYAML))
}

func TestBuild_UnresolvedPlugin(t *testing.T) {
	t.Parallel()

	path := SetupProject(t, "tailgrid.yaml", `
content: ["./*.html"]
plugins: ["@tailwindcss/typography", "@tailwindcss/line-clamp"]
`)
	a, _, _ := SetupAppTest(t, Config{ConfigPath: path})

	_, err := a.Build(context.Background())

	require.ErrorIs(t, err, registry.ErrUnresolvedPlugin)
	assert.Contains(t, err.Error(), `plugins[1]: "@tailwindcss/line-clamp" is not installed`)
	assert.Nil(t, a.Current())
	assert.Error(t, a.LastError())
}

func TestBuild_InvalidRecord(t *testing.T) {
	t.Parallel()

	path := SetupProject(t, "tailgrid.yaml", `
content: ["./*.html"]
theme:
  extend:
    colors:
      primary: "#ff0000"
`)
	a, _, _ := SetupAppTest(t, Config{ConfigPath: path})

	_, err := a.Build(context.Background())

	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 1)
}

func TestBuild_FailureKeepsPreviousBuild(t *testing.T) {
	t.Parallel()

	path := SetupProject(t, "tailgrid.hcl", testutil.ReferenceHCL)
	a, _, _ := SetupAppTest(t, Config{ConfigPath: path})

	first, err := a.Build(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`content = [`), 0o644))
	_, err = a.Build(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Same(t, first, a.Current())
	assert.Equal(t, err, a.LastError())
}

func TestCheck_DoesNotScanContent(t *testing.T) {
	t.Parallel()

	path := SetupProject(t, "tailgrid.hcl", `content = ["./templates/**/*.tmpl"]`)
	a, _, _ := SetupAppTest(t, Config{ConfigPath: path, Strict: true})

	m, err := a.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"./templates/**/*.tmpl"}, m.Content)

	_, err = a.Build(context.Background())
	require.ErrorIs(t, err, fsutil.ErrNoMatches)
}

func TestBuild_BaseDirOverride(t *testing.T) {
	t.Parallel()

	path := SetupProject(t, "tailgrid.hcl", `content = ["./*.html"]`)
	site := t.TempDir()
	testutil.WriteFiles(t, site, map[string]string{"page.html": "<p></p>"})

	a, _, _ := SetupAppTest(t, Config{ConfigPath: path, BaseDir: site})
	b, err := a.Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(site, "page.html")}, b.Files)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := SetupProject(t, "tailwind.config.js", `module.exports = {}`)
	a, _, _ := SetupAppTest(t, Config{ConfigPath: path})

	_, err := a.Load(context.Background())
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestBuild_ContentScenario(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	testutil.WriteFiles(t, root, map[string]string{
		"tailgrid.yaml": `
content: ["./**/*.html"]
theme:
  extend:
    colors:
      primary: var(--color-primary)
`,
		"index.html": `<p class="text-primary">hi</p>`,
	})
	a, _, _ := SetupAppTest(t, Config{ConfigPath: filepath.Join(root, "tailgrid.yaml")})

	// --- Act ---
	b, err := a.Build(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "index.html")}, b.Files)
	rule, err := b.Resolver.Resolve("text-primary")
	require.NoError(t, err)
	assert.Equal(t, "var(--color-primary)", rule.Declarations[0].Value)
}
