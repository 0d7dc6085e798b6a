package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/tailgrid/internal/testutil"
	"github.com/specialistvlad/tailgrid/internal/theme"
	"github.com/specialistvlad/tailgrid/internal/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPlugin adds one utility per call and records the order in which
// plugins ran.
type recordingPlugin struct {
	name  string
	order *[]string
	class string
	err   error
}

func (p *recordingPlugin) Name() string { return p.name }

func (p *recordingPlugin) Apply(ctx context.Context, api *API) error {
	*p.order = append(*p.order, p.name)
	if p.err != nil {
		return p.err
	}
	api.Theme.Set("seen", p.name, "yes")
	api.AddUtilities(utility.Rule{
		Class:        p.class,
		Declarations: []utility.Declaration{{Property: "content", Value: p.name}},
	})
	return nil
}

type testModule struct{ plugins []Plugin }

func (m *testModule) Register(r *Registry) {
	for _, p := range m.plugins {
		r.RegisterPlugin(p)
	}
}

func TestRegisterPlugin_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	var order []string
	r := New()
	r.RegisterPlugin(&recordingPlugin{name: "a", order: &order})

	require.PanicsWithValue(t, "plugin 'a' already registered", func() {
		r.RegisterPlugin(&recordingPlugin{name: "a", order: &order})
	})
	require.Panics(t, func() {
		r.RegisterPlugin(&recordingPlugin{name: "", order: &order})
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	var order []string
	r := NewWithModules(&testModule{plugins: []Plugin{
		&recordingPlugin{name: "b", order: &order},
		&recordingPlugin{name: "a", order: &order},
	}})
	assert.Equal(t, []string{"a", "b"}, r.Names())

	plugins, err := r.Resolve([]string{"b", "a"})
	require.NoError(t, err)
	require.Len(t, plugins, 2)
	assert.Equal(t, "b", plugins[0].Name())
	assert.Equal(t, "a", plugins[1].Name())

	_, err = r.Resolve([]string{"a", "@missing/one", "b", "@missing/two"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolvedPlugin))
	assert.Equal(t, "unresolved plugin reference (installed: a, b):\n"+
		"- plugins[1]: \"@missing/one\" is not installed\n"+
		"- plugins[3]: \"@missing/two\" is not installed", err.Error())
}

func TestApply_RunsInOrderAndLaterPluginsWin(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, logs := testutil.NewContext(t)
	var order []string
	first := &recordingPlugin{name: "first", order: &order, class: "shared"}
	second := &recordingPlugin{name: "second", order: &order, class: "shared"}
	third := &recordingPlugin{name: "third", order: &order, class: "own"}
	table := theme.NewTable()

	// --- Act ---
	set, err := New().Apply(ctx, []Plugin{first, second, third}, table)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, []string{"shared", "own"}, set.Classes())

	rule, ok := set.Lookup("shared")
	require.True(t, ok)
	assert.Equal(t, "second", rule.Source)
	assert.Len(t, table.Section("seen"), 3)
	assert.Contains(t, logs.String(), "Utility redefined.")
}

func TestApply_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewContext(t)
	var order []string
	boom := errors.New("boom")
	plugins := []Plugin{
		&recordingPlugin{name: "ok", order: &order, class: "x"},
		&recordingPlugin{name: "bad", order: &order, err: boom},
		&recordingPlugin{name: "never", order: &order, class: "y"},
	}

	_, err := New().Apply(ctx, plugins, theme.NewTable())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `plugin "bad" failed`)
	assert.Equal(t, []string{"ok", "bad"}, order)
}
