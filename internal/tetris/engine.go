package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Engine owns the complete state of one game session. Every mutation goes
// through its methods. It is not safe for concurrent use: the platform must
// serialise input and gravity calls.
type Engine struct {
	rng   *rand.Rand
	sched Scheduler

	grid       Grid
	current    Piece
	hasCurrent bool
	next       PieceType
	hold       PieceType
	canHold    bool

	score    int
	lines    int
	level    int
	interval time.Duration
	phase    Phase

	events []Event
}

// New creates an idle engine. The scheduler receives Start/Stop calls as
// the phase and level change; nil means gravity is never armed externally.
func New(sched Scheduler, seed int64) *Engine {
	if sched == nil {
		sched = &ManualScheduler{}
	}
	e := &Engine{
		rng:      rand.New(rand.NewSource(seed)),
		sched:    sched,
		canHold:  true,
		level:    1,
		interval: DropInterval(1),
		phase:    PhaseIdle,
	}
	e.next = e.randomType()
	return e
}

// Apply dispatches a player action to its entry point.
// Platform-only actions are ignored.
func (e *Engine) Apply(a core.Action) {
	switch a {
	case core.ActionMoveLeft:
		e.MoveLeft()
	case core.ActionMoveRight:
		e.MoveRight()
	case core.ActionSoftDrop:
		e.SoftDrop()
	case core.ActionRotate:
		e.Rotate()
	case core.ActionHardDrop:
		e.HardDrop()
	case core.ActionHold:
		e.Hold()
	case core.ActionPause:
		e.TogglePause()
	case core.ActionStart:
		e.Start()
	}
}

// Start resets the session and begins a new game. Valid in any phase.
func (e *Engine) Start() {
	e.grid = Grid{}
	e.score = 0
	e.lines = 0
	e.level = 1
	e.interval = DropInterval(1)
	e.hold = PieceNone
	e.canHold = true
	e.hasCurrent = false
	e.phase = PhaseRunning
	e.emit(EventStarted, PieceNone, 0, 0)

	e.next = e.randomType()
	e.spawn()

	if e.phase == PhaseRunning {
		e.sched.Start(e.interval)
	}
}

// TogglePause freezes or resumes a running game.
// It does nothing in the idle and game-over phases.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhaseRunning:
		e.phase = PhasePaused
		e.sched.Stop()
		e.emit(EventPaused, PieceNone, 0, 0)
	case PhasePaused:
		e.phase = PhaseRunning
		e.sched.Start(e.interval)
		e.emit(EventResumed, PieceNone, 0, 0)
	}
}

// Tick performs one gravity step. Ignored unless running.
func (e *Engine) Tick() {
	if e.phase != PhaseRunning {
		return
	}
	e.step()
}

// MoveLeft shifts the current piece one column left if it fits.
func (e *Engine) MoveLeft() {
	e.move(-1)
}

// MoveRight shifts the current piece one column right if it fits.
func (e *Engine) MoveRight() {
	e.move(1)
}

func (e *Engine) move(dx int) {
	if e.phase != PhaseRunning {
		return
	}
	if !Collides(&e.grid, &e.current, dx, 0) {
		e.current.X += dx
	}
}

// SoftDrop is a player-requested gravity step worth SoftDropPoints.
// A step that tops out the game scores nothing.
func (e *Engine) SoftDrop() {
	if e.phase != PhaseRunning {
		return
	}
	e.step()
	if e.phase == PhaseRunning {
		e.score += SoftDropPoints
	}
}

// Rotate turns the current piece clockwise. If the turned shape collides,
// one horizontal wall kick is tried: back inside the right edge when the
// matrix overhangs it, or to column 0 when it overhangs the left edge.
// Otherwise the rotation is discarded.
func (e *Engine) Rotate() {
	if e.phase != PhaseRunning {
		return
	}

	rotated := e.current
	rotated.Shape = e.current.Shape.RotateCW()
	if !Collides(&e.grid, &rotated, 0, 0) {
		e.current = rotated
		return
	}

	var kick int
	switch size := rotated.Size(); {
	case rotated.X+size > GridWidth:
		kick = GridWidth - (rotated.X + size)
	case rotated.X < 0:
		kick = -rotated.X
	default:
		return
	}

	if Collides(&e.grid, &rotated, kick, 0) {
		return
	}
	rotated.X += kick
	e.current = rotated
}

// HardDrop drops the current piece to its landing row, awards
// HardDropPointsPerRow per row fallen and locks it.
func (e *Engine) HardDrop() {
	if e.phase != PhaseRunning {
		return
	}

	d := e.dropDistance()
	e.current.Y += d
	points := d * HardDropPointsPerRow
	e.score += points
	e.emit(EventHardDrop, e.current.Type, d, points)

	e.land()
}

// Hold parks the current piece, once per spawned piece. An empty slot takes
// the piece and the queue supplies the next one; a full slot swaps.
func (e *Engine) Hold() {
	if e.phase != PhaseRunning || !e.canHold {
		return
	}

	parked := e.current.Type
	if e.hold == PieceNone {
		e.hold = parked
		e.canHold = false
		e.emit(EventHold, parked, 0, 0)
		e.spawn()
		return
	}

	swapped := e.hold
	e.hold = parked
	e.canHold = false
	e.emit(EventHold, parked, 0, 0)
	e.place(swapped)
}

// step moves the piece down one row or lands it.
func (e *Engine) step() {
	if !Collides(&e.grid, &e.current, 0, 1) {
		e.current.Y++
		return
	}
	e.land()
}

// land locks the piece, clears rows, spawns the next piece and re-enables hold.
func (e *Engine) land() {
	e.grid.Merge(&e.current)
	e.emit(EventLanded, e.current.Type, 0, 0)
	e.clearLines()
	e.spawn()
	e.canHold = true
}

// clearLines removes full rows and applies score, level and speed changes.
func (e *Engine) clearLines() {
	n := e.grid.ClearLines()
	if n == 0 {
		return
	}

	points := LineClearScore(n, e.level)
	e.score += points
	e.lines += n

	prev := e.level
	e.level = LevelForLines(e.lines)
	e.interval = DropInterval(e.level)
	e.emit(EventLinesCleared, PieceNone, n, points)

	if e.level != prev {
		e.emit(EventLevelUp, PieceNone, 0, 0)
		e.sched.Start(e.interval)
	}
}

// spawn takes the queued piece and refills the queue.
func (e *Engine) spawn() {
	t := e.next
	e.next = e.randomType()
	e.place(t)
}

// place puts a canonical piece at the spawn position, ending the game if
// it does not fit there.
func (e *Engine) place(t PieceType) {
	e.current = NewPiece(t)
	e.current.X = (GridWidth - e.current.Size()) / 2
	e.current.Y = 0
	e.hasCurrent = true

	if Collides(&e.grid, &e.current, 0, 0) {
		e.phase = PhaseGameOver
		e.sched.Stop()
		e.emit(EventGameOver, t, 0, 0)
	}
}

// dropDistance returns how many rows the current piece can fall.
func (e *Engine) dropDistance() int {
	d := 0
	for !Collides(&e.grid, &e.current, 0, d+1) {
		d++
	}
	return d
}

func (e *Engine) randomType() PieceType {
	return PieceType(e.rng.Intn(PieceCount) + 1)
}

func (e *Engine) emit(kind EventKind, piece PieceType, count, points int) {
	e.events = append(e.events, Event{
		Kind:   kind,
		Piece:  piece,
		Count:  count,
		Points: points,
		Level:  e.level,
		Score:  e.score,
	})
}

// Events returns and clears the events recorded since the last call.
func (e *Engine) Events() []Event {
	out := e.events
	e.events = nil
	return out
}

// Phase returns the current game phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total lines cleared this game.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Interval returns the current gravity interval.
func (e *Engine) Interval() time.Duration { return e.interval }

// GhostY returns the row the current piece would land on.
func (e *Engine) GhostY() int {
	if !e.hasCurrent {
		return 0
	}
	return e.current.Y + e.dropDistance()
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Grid       Grid
	Current    Piece
	HasCurrent bool
	GhostY     int
	Next       PieceType
	Hold       PieceType
	CanHold    bool
	Score      int
	Lines      int
	Level      int
	Interval   time.Duration
	Phase      Phase
}

// Snapshot returns the current engine state by value.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:       e.grid,
		Current:    e.current,
		HasCurrent: e.hasCurrent,
		GhostY:     e.GhostY(),
		Next:       e.next,
		Hold:       e.hold,
		CanHold:    e.canHold,
		Score:      e.score,
		Lines:      e.lines,
		Level:      e.level,
		Interval:   e.interval,
		Phase:      e.phase,
	}
}
