package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func renderSnapshot(t *testing.T, r Renderer, s Snapshot) string {
	t.Helper()
	w, h := MinScreenSize()
	scr := core.NewScreen(w, h)
	r.Render(scr, s)
	return scr.String()
}

func TestRenderTooSmall(t *testing.T) {
	scr := core.NewScreen(20, 10)
	Renderer{}.Render(scr, New(nil, 1).Snapshot())

	out := scr.String()
	assert.Contains(t, out, "Window too small")
	assert.NotContains(t, out, "SCORE")
}

func TestRenderIdle(t *testing.T) {
	out := renderSnapshot(t, Renderer{}, New(nil, 1).Snapshot())

	assert.Contains(t, out, "BLOCKFALL")
	assert.Contains(t, out, "press start")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "HOLD")
}

func TestRenderRunning(t *testing.T) {
	e, _ := startedEngine(t, PieceO)
	e.score = 1234
	e.lines = 17
	e.level = 2

	out := renderSnapshot(t, Renderer{}, e.Snapshot())

	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "1234")
	assert.Contains(t, out, "17")
	assert.Contains(t, out, string(blockGlyph))
	assert.NotContains(t, out, "PAUSED")
	assert.NotContains(t, out, string(ghostGlyph), "ghost disabled")
}

func TestRenderPieceCells(t *testing.T) {
	e, _ := startedEngine(t, PieceO)
	e.grid[GridHeight-1][0] = Cell(PieceZ)

	w, h := MinScreenSize()
	scr := core.NewScreen(w, h)
	Renderer{}.Render(scr, e.Snapshot())

	// Board frame sits at the origin when the screen is exactly the layout size.
	c := scr.GetCell(1, GridHeight)
	assert.Equal(t, blockGlyph, c.Rune)
	assert.Equal(t, core.ColorOrange, c.Color)

	// O spawns on columns 4-5 of row 0.
	c = scr.GetCell(1+4*cellW, 1)
	assert.Equal(t, blockGlyph, c.Rune)
	assert.Equal(t, core.ColorYellow, c.Color)
}

func TestRenderGhost(t *testing.T) {
	e, _ := startedEngine(t, PieceO)

	out := renderSnapshot(t, Renderer{Ghost: true}, e.Snapshot())
	assert.Contains(t, out, string(ghostGlyph))

	e.current.Y = e.GhostY()
	out = renderSnapshot(t, Renderer{Ghost: true}, e.Snapshot())
	assert.NotContains(t, out, string(ghostGlyph), "no ghost once resting")
}

func TestRenderPaused(t *testing.T) {
	e, _ := startedEngine(t, PieceT)
	e.TogglePause()

	out := renderSnapshot(t, Renderer{}, e.Snapshot())
	assert.Contains(t, out, "PAUSED")
}

func TestRenderGameOver(t *testing.T) {
	e, _ := startedEngine(t, PieceO)
	e.score = 420
	fillRow(&e.grid, 0, 9)
	fillRow(&e.grid, 1, 9)
	e.HardDrop()
	require.Equal(t, PhaseGameOver, e.Phase())

	out := renderSnapshot(t, Renderer{Ghost: true}, e.Snapshot())
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Score: 420")
	assert.Equal(t, 1, strings.Count(out, "GAME OVER"))
}
