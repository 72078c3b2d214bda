package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

var _ tetris.Scheduler = (*Scheduler)(nil)

func TestSchedulerStoppedIssuesNothing(t *testing.T) {
	s := NewScheduler()

	assert.False(t, s.Running())
	assert.Nil(t, s.Cmd())
	assert.False(t, s.Accept(GravityMsg{}))
}

func TestSchedulerStartIssuesOneTick(t *testing.T) {
	s := NewScheduler()
	s.Start(time.Second)

	require.NotNil(t, s.Cmd())
	assert.Nil(t, s.Cmd(), "only one tick in flight")
	assert.Equal(t, time.Second, s.Interval())
}

func TestSchedulerAcceptRearms(t *testing.T) {
	s := NewScheduler()
	s.Start(time.Second)
	s.Cmd()

	assert.True(t, s.Accept(GravityMsg{gen: s.gen}))
	assert.NotNil(t, s.Cmd())
}

func TestSchedulerDropsStaleTicks(t *testing.T) {
	s := NewScheduler()
	s.Start(time.Second)
	s.Cmd()
	old := GravityMsg{gen: s.gen}

	s.Start(900 * time.Millisecond)
	assert.False(t, s.Accept(old), "tick from the previous schedule")
	assert.NotNil(t, s.Cmd())

	current := GravityMsg{gen: s.gen}
	s.Stop()
	assert.False(t, s.Accept(current), "tick after stop")
	assert.Nil(t, s.Cmd())
}

func TestSchedulerRestartAfterStop(t *testing.T) {
	s := NewScheduler()
	s.Start(time.Second)
	s.Stop()
	s.Start(time.Second)

	assert.True(t, s.Running())
	assert.True(t, s.Accept(GravityMsg{gen: s.gen}))
}
