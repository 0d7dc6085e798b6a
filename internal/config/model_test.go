package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	m := &Model{Content: []string{}, Plugins: []string{}}
	m.Normalize()

	assert.Nil(t, m.Content)
	assert.Nil(t, m.Plugins)
	assert.NotNil(t, m.Theme.Extend.Colors)
	assert.NotNil(t, m.Theme.Extend.LetterSpacing)
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	orig := Reference()
	c := orig.Clone()
	require.True(t, Equal(orig, c))

	c.Content[0] = "changed"
	c.Theme.Extend.Colors["primary"] = "var(--changed)"
	c.Plugins = c.Plugins[:1]

	assert.Equal(t, "./**/*.{html,svg,sql}", orig.Content[0])
	assert.Equal(t, "var(--color-primary)", orig.Theme.Extend.Colors["primary"])
	assert.Len(t, orig.Plugins, 3)
	assert.False(t, Equal(orig, c))
	assert.Contains(t, Diff(orig, c), "var(--changed)")
}

func TestReference_Contents(t *testing.T) {
	t.Parallel()

	m := Reference()
	assert.Equal(t, "var(--color-secondary)", m.Theme.Extend.Colors["other"])
	assert.Len(t, m.Theme.Extend.Colors, 6)
	assert.Equal(t, map[string]string{"tighterer": "-0.1em"}, m.Theme.Extend.LetterSpacing)
	assert.Equal(t, []string{
		"@tailwindcss/typography",
		"@tailwindcss/forms",
		"@tailwindcss/aspect-ratio",
	}, m.Plugins)
}

func TestDuplicateKeyError_Is(t *testing.T) {
	t.Parallel()

	err := error(&DuplicateKeyError{Mapping: "theme.extend.colors", Key: "primary", First: "a:1", Second: "a:2"})
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Equal(t, `theme.extend.colors: key "primary" declared at a:1 is declared again at a:2`, err.Error())
}
