package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func defaultKeyMap(t *testing.T) KeyMap {
	t.Helper()
	bindings, err := config.Default().Bindings()
	require.NoError(t, err)
	return NewKeyMap(bindings)
}

func TestMapKeyDefaults(t *testing.T) {
	km := defaultKeyMap(t)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"a", runeKey('a'), core.ActionMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"c", runeKey('c'), core.ActionHold},
		{"C", runeKey('C'), core.ActionHold},
		{"p", runeKey('p'), core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKey(tt.msg))
		})
	}
}

func TestMapKeyCustomBindings(t *testing.T) {
	km := NewKeyMap(map[core.Action][]string{
		core.ActionHardDrop: {"x"},
		core.ActionRotate:   {"space"},
	})

	assert.Equal(t, core.ActionHardDrop, km.MapKey(runeKey('x')))
	assert.Equal(t, core.ActionRotate, km.MapKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	assert.Equal(t, core.ActionNone, km.MapKey(tea.KeyMsg{Type: tea.KeyLeft}), "unbound action")
	assert.Len(t, km.ShortHelp(), 2, "unbound actions are left out of help")
}

func TestKeyMapHelp(t *testing.T) {
	km := defaultKeyMap(t)

	short := km.ShortHelp()
	require.NotEmpty(t, short)
	assert.Equal(t, "left/a", short[0].Help().Key)
	assert.Equal(t, "left", short[0].Help().Desc)

	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	assert.Equal(t, len(core.Actions()), total, "full help lists every action")

	hardDrop := short[3]
	assert.Equal(t, "space", hardDrop.Help().Key)
	assert.Equal(t, "hard drop", hardDrop.Help().Desc)
}

func TestMapKeyRebindFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("controls:\n  hard_drop: [up]\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	bindings, err := cfg.Bindings()
	require.NoError(t, err)
	km := NewKeyMap(bindings)

	assert.Equal(t, core.ActionHardDrop, km.MapKey(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, core.ActionRotate, km.MapKey(runeKey('w')))
	assert.Equal(t, core.ActionNone, km.MapKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
}
