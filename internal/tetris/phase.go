package tetris

// Phase is the game phase.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first Start
	PhaseRunning               // Gravity ticking, input accepted
	PhasePaused                // Frozen until un-paused
	PhaseGameOver              // Topped out; terminal until Start
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind classifies an Event.
type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventResumed
	EventLanded
	EventLinesCleared
	EventLevelUp
	EventHold
	EventHardDrop
	EventGameOver
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventLanded:
		return "landed"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventHold:
		return "hold"
	case EventHardDrop:
		return "hard_drop"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records something notable that happened inside an engine call.
// Events are informational only; nothing feeds them back into the engine.
type Event struct {
	Kind   EventKind
	Piece  PieceType // Piece involved, if any
	Count  int       // Lines cleared or rows hard-dropped
	Points int       // Points awarded by this event
	Level  int       // Level after the event
	Score  int       // Score after the event
}
