package main

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func testSimulation() simulation {
	return simulation{
		maxSteps: 100000,
		step:     250 * time.Millisecond,
		logger:   log.New(io.Discard),
	}
}

func TestSimulationReachesGameOver(t *testing.T) {
	result, finished := testSimulation().play(3)

	if !finished {
		t.Fatal("expected the game to end before the step limit")
	}
	if result.Pieces == 0 {
		t.Fatal("expected the bot to lock at least one piece")
	}
	if result.Level < 1 {
		t.Errorf("level = %d, want >= 1", result.Level)
	}
	if result.Seed != 3 {
		t.Errorf("seed = %d, want 3", result.Seed)
	}
}

func TestSimulationIsDeterministic(t *testing.T) {
	a, aDone := testSimulation().play(11)
	b, bDone := testSimulation().play(11)

	if a != b || aDone != bDone {
		t.Errorf("same seed produced different games: %+v (%v) vs %+v (%v)", a, aDone, b, bDone)
	}
}

func TestSimulationStepLimit(t *testing.T) {
	sim := testSimulation()
	sim.maxSteps = 1

	result, finished := sim.play(5)
	if finished {
		t.Error("one step should not end the game")
	}
	if result.Pieces > 1 {
		t.Errorf("one step locked %d pieces", result.Pieces)
	}
}
