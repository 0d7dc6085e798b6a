package app

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{ConfigPath: filepath.Join("site", "tailgrid.hcl")})

	require.NoError(t, err)
	wantBase, err := filepath.Abs("site")
	require.NoError(t, err)
	assert.Equal(t, wantBase, cfg.BaseDir)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.WorkerCount)
}

func TestNewConfig_Rejects(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"missing path", Config{}, "ConfigPath is a required"},
		{"bad print", Config{ConfigPath: "a.hcl", Print: "toml"}, "Print must be"},
		{"check and resolve", Config{ConfigPath: "a.hcl", Check: true, Resolve: []string{"prose"}}, "cannot be combined with Check"},
		{"watch and print", Config{ConfigPath: "a.hcl", Watch: true, Print: "hcl"}, "Watch cannot be combined"},
		{"negative workers", Config{ConfigPath: "a.hcl", WorkerCount: -1}, "WorkerCount"},
		{"port", Config{ConfigPath: "a.hcl", HealthcheckPort: 70000}, "HealthcheckPort"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewConfig(tc.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]string{
		"a.hcl":  "hcl",
		"a.HCL":  "hcl",
		"a.json": "json",
		"a.yaml": "yaml",
		"a.yml":  "yaml",
	} {
		f, err := FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, f.Name(), path)
	}

	_, err := FormatFor("tailwind.config.js")
	assert.Error(t, err)

	f, err := FormatByName("yaml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", f.Name())
}
