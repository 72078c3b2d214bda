package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLineClearScore(t *testing.T) {
	tests := []struct {
		lines, level, want int
	}{
		{0, 1, 0},
		{1, 1, 100},
		{2, 1, 300},
		{3, 1, 500},
		{4, 1, 800},
		{1, 3, 300},
		{4, 5, 4000},
		{5, 1, 0},
		{-1, 1, 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, LineClearScore(tc.lines, tc.level), "lines=%d level=%d", tc.lines, tc.level)
	}
}

func TestLevelForLines(t *testing.T) {
	assert.Equal(t, 1, LevelForLines(0))
	assert.Equal(t, 1, LevelForLines(9))
	assert.Equal(t, 2, LevelForLines(10))
	assert.Equal(t, 3, LevelForLines(25))
}

func TestDropInterval(t *testing.T) {
	assert.Equal(t, 1000*time.Millisecond, DropInterval(1))
	assert.Equal(t, 600*time.Millisecond, DropInterval(5))
	assert.Equal(t, 100*time.Millisecond, DropInterval(10))
	assert.Equal(t, 100*time.Millisecond, DropInterval(15), "interval has a floor")
}
