package tetris

import "time"

// Scoring constants.
const (
	SoftDropPoints       = 1  // Per player soft drop
	HardDropPointsPerRow = 2  // Per row fallen in a hard drop
	LinesPerLevel        = 10 // Lines needed to advance a level
)

// Speed curve bounds.
const (
	BaseInterval = 1000 * time.Millisecond
	IntervalStep = 100 * time.Millisecond
	MinInterval  = 100 * time.Millisecond
)

// linePoints is the base award by number of rows cleared in one landing.
var linePoints = [...]int{0, 100, 300, 500, 800}

// LineClearScore returns the points for clearing n rows at the given level.
func LineClearScore(n, level int) int {
	if n <= 0 || n >= len(linePoints) {
		return 0
	}
	return linePoints[n] * level
}

// LevelForLines returns the level reached after the given total of cleared lines.
func LevelForLines(lines int) int {
	return lines/LinesPerLevel + 1
}

// DropInterval returns the gravity interval for a level.
func DropInterval(level int) time.Duration {
	d := BaseInterval - time.Duration(level-1)*IntervalStep
	if d < MinInterval {
		return MinInterval
	}
	return d
}
