package theme

import (
	"testing"

	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	d := Defaults()

	v, ok := d.Lookup(Colors, "blue-500")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", v)

	v, ok = d.Lookup(LetterSpacing, "widest")
	require.True(t, ok)
	assert.Equal(t, "0.1em", v)

	assert.Equal(t, []string{AspectRatio, Colors, LetterSpacing}, d.Sections())
	assert.Empty(t, d.Section(AspectRatio))
}

func TestBuild_MergesReferenceExtensions(t *testing.T) {
	t.Parallel()

	table := Build(config.Reference().Theme.Extend)

	v, ok := table.Lookup(Colors, "primary")
	require.True(t, ok)
	assert.Equal(t, "var(--color-primary)", v)

	v, ok = table.Lookup(Colors, "other")
	require.True(t, ok)
	assert.Equal(t, "var(--color-secondary)", v)

	v, ok = table.Lookup(LetterSpacing, "tighterer")
	require.True(t, ok)
	assert.Equal(t, "-0.1em", v)

	// Defaults survive an extension.
	_, ok = table.Lookup(LetterSpacing, "tighter")
	assert.True(t, ok)
	_, ok = table.Lookup(Colors, "white")
	assert.True(t, ok)

	assert.Equal(t, Defaults().Len()+7, table.Len())
}

func TestExtend_ReplacesDefaultOfSameName(t *testing.T) {
	t.Parallel()

	table := Defaults()
	table.Extend(config.Extension{Colors: map[string]string{"white": "var(--white)"}})

	v, _ := table.Lookup(Colors, "white")
	assert.Equal(t, "var(--white)", v)
}

func TestSectionAndClone_AreCopies(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Set("custom", "a", "1")

	s := table.Section("custom")
	s["a"] = "changed"
	c := table.Clone()
	c.Set("custom", "a", "cloned")

	v, _ := table.Lookup("custom", "a")
	assert.Equal(t, "1", v)
	assert.NotNil(t, table.Section("missing"))
}
