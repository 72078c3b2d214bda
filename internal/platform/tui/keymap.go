package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// keyAliases translates config spellings to Bubble Tea key strings.
var keyAliases = map[string]string{
	"space":  " ",
	"return": "enter",
}

// helpText is the short description shown in the help footer.
var helpText = map[core.Action]string{
	core.ActionMoveLeft:  "left",
	core.ActionMoveRight: "right",
	core.ActionSoftDrop:  "soft drop",
	core.ActionRotate:    "rotate",
	core.ActionHardDrop:  "hard drop",
	core.ActionHold:      "hold",
	core.ActionPause:     "pause",
	core.ActionStart:     "start",
	core.ActionScores:    "scores",
	core.ActionQuit:      "quit",
}

// KeyMap translates Bubble Tea key messages to actions.
// It also serves as the help.KeyMap for the footer.
type KeyMap struct {
	bindings map[core.Action]key.Binding
}

// NewKeyMap builds key bindings from action -> key names, as produced by
// config.Config.Bindings.
func NewKeyMap(keys map[core.Action][]string) KeyMap {
	km := KeyMap{bindings: make(map[core.Action]key.Binding, len(keys))}
	for _, a := range core.Actions() {
		names := keys[a]
		if len(names) == 0 {
			continue
		}

		teaKeys := make([]string, len(names))
		for i, n := range names {
			teaKeys[i] = teaKey(n)
		}
		km.bindings[a] = key.NewBinding(
			key.WithKeys(teaKeys...),
			key.WithHelp(strings.Join(names, "/"), helpText[a]),
		)
	}
	return km
}

// teaKey returns the Bubble Tea spelling of a configured key name.
func teaKey(name string) string {
	if alias, ok := keyAliases[strings.ToLower(name)]; ok {
		return alias
	}
	return name
}

// MapKey returns the action bound to msg, or ActionNone.
func (km KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	for _, a := range core.Actions() {
		b, ok := km.bindings[a]
		if ok && key.Matches(msg, b) {
			return a
		}
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return km.collect(
		core.ActionMoveLeft, core.ActionMoveRight, core.ActionRotate,
		core.ActionHardDrop, core.ActionHold, core.ActionPause, core.ActionQuit,
	)
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.collect(core.ActionMoveLeft, core.ActionMoveRight, core.ActionSoftDrop, core.ActionRotate),
		km.collect(core.ActionHardDrop, core.ActionHold),
		km.collect(core.ActionPause, core.ActionStart, core.ActionScores, core.ActionQuit),
	}
}

func (km KeyMap) collect(actions ...core.Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := km.bindings[a]; ok {
			out = append(out, b)
		}
	}
	return out
}
