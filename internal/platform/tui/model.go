package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// footerHeight is the number of rows reserved below the game screen.
const footerHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures the interactive front end.
type Options struct {
	Keys   map[core.Action][]string // Action -> key names
	Ghost  bool                     // Draw the landing preview
	Theme  string                   // Display theme name
	Logger *log.Logger              // nil discards log output
	Store  *storage.Store           // Session scoreboard; nil disables it
}

// Model is the Bubble Tea model for a blockfall session.
type Model struct {
	engine   *tetris.Engine
	sched    *Scheduler
	screen   *core.Screen
	renderer tetris.Renderer
	theme    Theme
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	store    *storage.Store
	scores   Scoreboard
	config   core.RuntimeConfig

	showScores bool
	pieces     int // Pieces locked in the current game
	quitting   bool
}

// NewModel creates a new Bubble Tea model with an idle engine.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := NewScheduler()
	keys := NewKeyMap(opts.Keys)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:   tetris.New(sched, cfg.Seed),
		sched:    sched,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		renderer: tetris.Renderer{Ghost: opts.Ghost},
		theme:    ThemeFor(opts.Theme),
		keys:     keys,
		help:     h,
		logger:   logger,
		store:    opts.Store,
		scores:   NewScoreboard(opts.Store, cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
	}
}

// Engine returns the game engine driven by the model.
func (m Model) Engine() *tetris.Engine {
	return m.engine
}

// Init implements tea.Model. The engine waits for the start key.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case GravityMsg:
		return m.handleGravity(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	// ctrl+c always quits, even if rebound
	if action == core.ActionQuit || msg.String() == "ctrl+c" {
		m.quitting = true
		m.logger.Info("quit", "phase", m.engine.Phase(), "score", m.engine.Score())
		return m, tea.Quit
	}

	if action == core.ActionScores {
		return m.toggleScores()
	}

	if m.showScores {
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg)
		return m, cmd
	}

	if action == core.ActionNone {
		return m, nil
	}

	m.engine.Apply(action)
	m.drainEvents()
	return m, m.sched.Cmd()
}

// toggleScores opens or closes the scoreboard. A running game is paused
// while the board is hidden.
func (m Model) toggleScores() (tea.Model, tea.Cmd) {
	m.showScores = !m.showScores
	if m.showScores {
		if m.engine.Phase() == tetris.PhaseRunning {
			m.engine.TogglePause()
			m.drainEvents()
		}
		if err := m.scores.Refresh(); err != nil {
			m.logger.Warn("could not load scores", "error", err)
		}
	}
	return m, m.sched.Cmd()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
	m.scores.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleGravity applies one gravity step if the tick is current.
func (m Model) handleGravity(msg GravityMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Accept(msg) {
		return m, nil
	}
	m.engine.Tick()
	m.drainEvents()
	return m, m.sched.Cmd()
}

// drainEvents logs engine events and records finished games.
func (m *Model) drainEvents() {
	for _, ev := range m.engine.Events() {
		switch ev.Kind {
		case tetris.EventStarted:
			m.pieces = 0
			m.logger.Info("game started")
		case tetris.EventLanded:
			m.pieces++
			m.logger.Debug("piece landed", "piece", ev.Piece)
		case tetris.EventHardDrop:
			m.logger.Debug("hard drop", "piece", ev.Piece, "rows", ev.Count, "points", ev.Points)
		case tetris.EventHold:
			m.logger.Debug("hold", "piece", ev.Piece)
		case tetris.EventLinesCleared:
			m.logger.Debug("lines cleared", "count", ev.Count, "points", ev.Points, "score", ev.Score)
		case tetris.EventLevelUp:
			m.logger.Info("level up", "level", ev.Level, "interval", m.engine.Interval())
		case tetris.EventPaused, tetris.EventResumed:
			m.logger.Debug(ev.Kind.String())
		case tetris.EventGameOver:
			m.logger.Info("game over", "score", ev.Score, "lines", m.engine.Lines(), "level", ev.Level, "pieces", m.pieces)
			m.saveResult()
		}
	}
}

// saveResult stores the finished game in the session scoreboard.
// Failures are logged; the game continues regardless.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}

	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
	} else if m.engine.Score() > best {
		m.logger.Info("new session best", "score", m.engine.Score(), "previous", best)
	}

	_, err = m.store.SaveGame(storage.GameResult{
		Seed:   m.config.Seed,
		Score:  m.engine.Score(),
		Lines:  m.engine.Lines(),
		Level:  m.engine.Level(),
		Pieces: m.pieces,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.showScores {
		return m.scores.View() + "\n" + footer
	}

	m.renderer.Render(m.screen, m.engine.Snapshot())
	return RenderScreen(m.screen, m.theme) + "\n" + footer
}

// Run starts the Bubble Tea program.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
