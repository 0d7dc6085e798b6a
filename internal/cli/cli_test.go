package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalPathAndFlags(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	args := []string{
		"-check", "-print", "YAML", "-strict",
		"-workers", "3", "-log-level", "DEBUG", "-log-format", "json",
		filepath.Join("site", "tailgrid.hcl"),
	}

	// --- Act ---
	cfg, shouldExit, err := Parse(args, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, filepath.Join("site", "tailgrid.hcl"), cfg.ConfigPath)
	assert.True(t, filepath.IsAbs(cfg.BaseDir))
	assert.Equal(t, "site", filepath.Base(cfg.BaseDir))
	assert.True(t, cfg.Check)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "yaml", cfg.Print)
	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_ConfigFlagWins(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"-c", "short.yaml", "-config", "long.yaml", "positional.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "long.yaml", cfg.ConfigPath)

	cfg, _, err = Parse([]string{"-c", "short.yaml", "positional.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "short.yaml", cfg.ConfigPath)
}

func TestParse_ResolveList(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"-resolve", "text-primary, prose,,bg-danger", "a.hcl"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, []string{"text-primary", "prose", "bg-danger"}, cfg.Resolve)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-nope", "a.hcl"}, "flag provided but not defined"},
		{"log format", []string{"-log-format", "xml", "a.hcl"}, "invalid log-format"},
		{"log level", []string{"-log-level", "trace", "a.hcl"}, "invalid log-level"},
		{"print format", []string{"-print", "toml", "a.hcl"}, "Print must be"},
		{"watch with print", []string{"-watch", "-print", "hcl", "a.hcl"}, "Watch cannot be combined"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
