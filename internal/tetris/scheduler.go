package tetris

import "time"

// Scheduler is the gravity timer the engine configures.
// The owner calls Engine.Tick once per elapsed interval while it is running.
type Scheduler interface {
	// Start arms (or re-arms) the timer at the given interval,
	// replacing any previous schedule.
	Start(interval time.Duration)

	// Stop cancels the timer. Ticks already due must not be delivered.
	Stop()
}

// ManualScheduler is a Scheduler driven by explicit time advances.
// It is used by the headless simulator and by tests.
type ManualScheduler struct {
	running  bool
	interval time.Duration
	elapsed  time.Duration
	starts   int
	stops    int
}

// Start implements Scheduler.
func (m *ManualScheduler) Start(interval time.Duration) {
	m.running = true
	m.interval = interval
	m.elapsed = 0
	m.starts++
}

// Stop implements Scheduler.
func (m *ManualScheduler) Stop() {
	m.running = false
	m.elapsed = 0
	m.stops++
}

// Running returns whether the timer is armed.
func (m *ManualScheduler) Running() bool {
	return m.running
}

// Interval returns the interval of the most recent Start.
func (m *ManualScheduler) Interval() time.Duration {
	return m.interval
}

// Starts returns how many times Start has been called.
func (m *ManualScheduler) Starts() int {
	return m.starts
}

// Stops returns how many times Stop has been called.
func (m *ManualScheduler) Stops() int {
	return m.stops
}

// Advance moves the clock forward by d and calls tick for each interval that
// elapses. A tick that stops or re-arms the scheduler ends the loop.
// Returns the number of ticks delivered.
func (m *ManualScheduler) Advance(d time.Duration, tick func()) int {
	if !m.running || m.interval <= 0 {
		return 0
	}
	m.elapsed += d

	fired := 0
	for m.running && m.elapsed >= m.interval {
		m.elapsed -= m.interval
		starts := m.starts
		tick()
		fired++
		if m.starts != starts {
			break
		}
	}
	return fired
}
