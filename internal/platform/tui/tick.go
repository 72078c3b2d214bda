// Package tui provides the Bubble Tea front end for blockfall.
// It handles the terminal UI loop, input mapping and gravity scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// GravityMsg is sent when a gravity interval elapses.
type GravityMsg struct {
	gen uint64
}

// Scheduler drives engine gravity with tea.Tick commands.
// It implements tetris.Scheduler.
//
// Bubble Tea commands cannot be cancelled, so every Start and Stop bumps a
// generation counter and ticks from an older generation are dropped on
// arrival. At most one tick of the current generation is in flight.
type Scheduler struct {
	gen      uint64
	running  bool
	interval time.Duration
	pending  bool // Next tick must be issued by Cmd
}

// NewScheduler creates a stopped scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start implements tetris.Scheduler.
func (s *Scheduler) Start(interval time.Duration) {
	s.gen++
	s.running = true
	s.interval = interval
	s.pending = true
}

// Stop implements tetris.Scheduler.
func (s *Scheduler) Stop() {
	s.gen++
	s.running = false
	s.pending = false
}

// Running returns whether gravity is armed.
func (s *Scheduler) Running() bool {
	return s.running
}

// Interval returns the current gravity interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Accept reports whether msg belongs to the current schedule.
// An accepted tick re-arms the timer for the following interval.
func (s *Scheduler) Accept(msg GravityMsg) bool {
	if !s.running || msg.gen != s.gen {
		return false
	}
	s.pending = true
	return true
}

// Cmd returns the tick command owed after an update, or nil.
func (s *Scheduler) Cmd() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return gravityCmd(s.gen, s.interval)
}

// gravityCmd returns a command that delivers one GravityMsg after interval.
func gravityCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return GravityMsg{gen: gen}
	})
}
