package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/tailgrid/internal/registry"
	"github.com/specialistvlad/tailgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// SetupAppTest creates a new app instance for system testing. It returns
// the app together with the buffers receiving its output and its logs.
func SetupAppTest(t *testing.T, cfg Config, modules ...registry.Module) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err, "test configuration must be valid")

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	testApp := NewApp(outBuffer, logBuffer, appConfig, modules...)

	t.Cleanup(func() {
		if os.Getenv("TAILGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}

// SetupProject writes a configuration file named name with the given body
// plus a small set of content files into a temporary directory and returns
// the configuration path.
func SetupProject(t *testing.T, name, body string) string {
	t.Helper()

	root := t.TempDir()
	testutil.WriteFiles(t, root, map[string]string{
		name:                   body,
		"index.html":           `<h1 class="text-primary tracking-tighterer">Hello</h1>`,
		"static/markdown.html": `<article class="prose"></article>`,
		"static/icon.svg":      `<svg class="text-accent"></svg>`,
		"db/report.sql":        `SELECT 'bg-danger';`,
		"README.md":            `not content`,
	})
	return filepath.Join(root, name)
}
