package core

import "strings"

// Action is a semantic player command, abstracted from physical key presses.
// Each game action maps 1:1 to an engine entry point.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left, a
	ActionMoveRight        // Right, d
	ActionSoftDrop         // Down, s
	ActionRotate           // Up, w
	ActionHardDrop         // Space
	ActionHold             // c
	ActionPause            // p
	ActionStart            // Enter, r - start or restart
	ActionScores           // Tab - session scoreboard (platform only)
	ActionQuit             // q, Ctrl+C (platform only)
)

// actionNames holds the config-file spelling of every action.
var actionNames = map[Action]string{
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionSoftDrop:  "soft_drop",
	ActionRotate:    "rotate",
	ActionHardDrop:  "hard_drop",
	ActionHold:      "hold",
	ActionPause:     "pause",
	ActionStart:     "start",
	ActionScores:    "scores",
	ActionQuit:      "quit",
}

// String returns the config name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	if a == ActionNone {
		return "none"
	}
	return "unknown"
}

// Actions returns every bindable action in display order.
func Actions() []Action {
	return []Action{
		ActionMoveLeft,
		ActionMoveRight,
		ActionSoftDrop,
		ActionRotate,
		ActionHardDrop,
		ActionHold,
		ActionPause,
		ActionStart,
		ActionScores,
		ActionQuit,
	}
}

// ParseAction looks up an action by its config name (case-insensitive).
// Returns ActionNone and false for unknown names.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}
