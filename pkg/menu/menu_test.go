package menu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usires/basix/pkg/catalog"
	"github.com/usires/basix/pkg/state"
)

func TestNew(t *testing.T) {
	m := New()

	assert.Equal(t, 1, m.Highlight())
	assert.Equal(t, catalog.MenuRows, m.Rows())
	assert.Equal(t, catalog.MainMenuOptions(), m.Labels())
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"q", CmdQuit},
		{"Q", CmdQuit},
		{"w", CmdUp},
		{"s", CmdDown},
		{"", CmdConfirm},
		{"  \n", CmdConfirm},
		{" s ", CmdDown},
		{"W", CmdInvalid},
		{"abc", CmdInvalid},
		{"1", CmdInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.line))
		})
	}
}

func TestWrapAround(t *testing.T) {
	m := New()

	m.Up()
	assert.Equal(t, catalog.MenuRows, m.Highlight())

	m.Down()
	assert.Equal(t, 1, m.Highlight())
}

func TestTrace(t *testing.T) {
	m := New()
	var trace []int

	for range 3 {
		m.Down()
		trace = append(trace, m.Highlight())
	}
	assert.Equal(t, []int{2, 3, 4}, trace)

	trace = nil
	for range 4 {
		m.Up()
		trace = append(trace, m.Highlight())
	}
	assert.Equal(t, []int{3, 2, 1, 9}, trace)
}

func TestHighlightStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := New()

	for range 1000 {
		if rng.Intn(2) == 0 {
			m.Up()
		} else {
			m.Down()
		}
		require.GreaterOrEqual(t, m.Highlight(), 1)
		require.LessOrEqual(t, m.Highlight(), m.Rows())
	}
}

func TestResolve_Defaults(t *testing.T) {
	m := New()

	assert.Equal(t, TargetSelectApt, m.Resolve(catalog.RowSelectApt))
	assert.Equal(t, TargetSelectFlatpak, m.Resolve(catalog.RowSelectFlatpak))
	assert.Equal(t, TargetSelectManager, m.Resolve(catalog.RowPackageManager))
	assert.Equal(t, TargetQuit, m.Resolve(catalog.RowExit))

	for _, row := range []int{2, 4, 5, 6, 8} {
		assert.Equal(t, TargetNotImplemented, m.Resolve(row), "row %d", row)
	}
}

func TestBind(t *testing.T) {
	m := New()
	called := false
	action := func(*state.ProgramState) error {
		called = true
		return nil
	}

	assert.True(t, m.Bind(catalog.RowFonts, action))
	assert.Equal(t, TargetAction, m.Resolve(catalog.RowFonts))

	require.NotNil(t, m.Action(catalog.RowFonts))
	require.NoError(t, m.Action(catalog.RowFonts)(state.New()))
	assert.True(t, called)
}

func TestBind_Rejected(t *testing.T) {
	m := New()
	action := func(*state.ProgramState) error { return nil }

	for _, row := range []int{0, catalog.RowSelectApt, catalog.RowSelectFlatpak, catalog.RowPackageManager, catalog.RowExit, 10} {
		assert.False(t, m.Bind(row, action), "row %d", row)
	}
	assert.False(t, m.Bind(catalog.RowFonts, nil))
	assert.Equal(t, TargetSelectApt, m.Resolve(catalog.RowSelectApt))
}
