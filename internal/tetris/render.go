package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Layout constants. Each grid cell is two characters wide so blocks look square.
const (
	cellW        = 2
	boardW       = GridWidth*cellW + 2 // +2 for borders
	boardH       = GridHeight + 2
	previewW     = maxShapeSize*cellW + 2
	previewH     = maxShapeSize + 2
	sidebarGap   = 2
	sidebarW     = previewW + 4
	layoutW      = boardW + sidebarGap + sidebarW
	layoutH      = boardH
	blockGlyph   = '█'
	ghostGlyph   = '░'
	emptyGlyph   = '·'
	frameColor   = core.ColorGray
	labelColor   = core.ColorWhite
	overlayColor = core.ColorWhite
)

// gridBounds is the board in grid coordinates.
var gridBounds = core.NewRect(0, 0, GridWidth, GridHeight)

// MinScreenSize returns the smallest screen that fits the layout.
func MinScreenSize() (w, h int) {
	return layoutW, layoutH
}

// Renderer draws a Snapshot into a core.Screen.
// It only reads the snapshot; rendering never touches the engine.
type Renderer struct {
	Ghost bool // Draw the landing preview
}

// Render draws the board, previews, HUD and phase overlay.
func (r Renderer) Render(dst *core.Screen, s Snapshot) {
	dst.Clear()

	if dst.Width() < layoutW || dst.Height() < layoutH {
		renderTooSmall(dst)
		return
	}

	originX := (dst.Width() - layoutW) / 2
	originY := (dst.Height() - layoutH) / 2
	board := core.NewRect(originX, originY, boardW, boardH)

	r.renderBoard(dst, board, s)

	sideX := board.Right() + sidebarGap
	next := core.NewRect(sideX, originY, previewW, previewH)
	hold := core.NewRect(sideX, next.Bottom(), previewW, previewH)
	renderPreview(dst, next, "NEXT", s.Next, true)
	renderPreview(dst, hold, "HOLD", s.Hold, s.CanHold)
	renderStats(dst, sideX, hold.Bottom()+1, s)

	renderOverlay(dst, board, s)
}

func renderTooSmall(dst *core.Screen) {
	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	y := dst.Height() / 2
	dst.DrawTextCentered(full, y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(full, y+1, "Please resize terminal", core.ColorDefault)
}

// renderBoard draws the frame, locked cells, ghost and the falling piece.
func (r Renderer) renderBoard(dst *core.Screen, board core.Rect, s Snapshot) {
	dst.DrawBox(board, frameColor)
	inner := board.Inset(1)

	for y := range GridHeight {
		for x := range GridWidth {
			c := s.Grid[y][x]
			if c == 0 {
				drawCell(dst, inner, x, y, emptyGlyph, ' ', core.ColorGray)
				continue
			}
			drawCell(dst, inner, x, y, blockGlyph, blockGlyph, ColorOf(c))
		}
	}

	if !s.HasCurrent || s.Phase == PhaseIdle {
		return
	}

	if r.Ghost && s.Phase != PhaseGameOver && s.GhostY > s.Current.Y {
		ghost := s.Current
		ghost.Y = s.GhostY
		drawPiece(dst, inner, &ghost, ghostGlyph)
	}
	drawPiece(dst, inner, &s.Current, blockGlyph)
}

// drawPiece draws the visible blocks of p; rows above the board are skipped.
func drawPiece(dst *core.Screen, inner core.Rect, p *Piece, glyph rune) {
	n := p.Size()
	for y := range n {
		for x := range n {
			if p.Shape.At(x, y) == 0 {
				continue
			}
			gx, gy := p.X+x, p.Y+y
			if !gridBounds.Contains(gx, gy) {
				continue
			}
			drawCell(dst, inner, gx, gy, glyph, glyph, p.Color)
		}
	}
}

func drawCell(dst *core.Screen, inner core.Rect, x, y int, left, right rune, c core.Color) {
	sx := inner.X + x*cellW
	sy := inner.Y + y
	dst.SetColored(sx, sy, left, c)
	dst.SetColored(sx+1, sy, right, c)
}

// renderPreview draws a boxed, centered canonical piece.
// Dimmed previews (hold already used) are drawn in gray.
func renderPreview(dst *core.Screen, box core.Rect, label string, t PieceType, active bool) {
	dst.DrawBox(box, frameColor)
	dst.DrawTextColored(box.X+2, box.Y, " "+label+" ", labelColor)
	if t == PieceNone {
		return
	}

	p := NewPiece(t)
	color := p.Color
	if !active {
		color = core.ColorGray
	}

	inner := box.Inset(1)
	n := p.Size()
	offX := (inner.W - n*cellW) / 2
	offY := (inner.H - n) / 2
	for y := range n {
		for x := range n {
			if p.Shape.At(x, y) == 0 {
				continue
			}
			sx := inner.X + offX + x*cellW
			sy := inner.Y + offY + y
			dst.SetColored(sx, sy, blockGlyph, color)
			dst.SetColored(sx+1, sy, blockGlyph, color)
		}
	}
}

func renderStats(dst *core.Screen, x, y int, s Snapshot) {
	rows := []struct {
		label string
		value int
	}{
		{"SCORE", s.Score},
		{"LINES", s.Lines},
		{"LEVEL", s.Level},
	}
	for i, row := range rows {
		dst.DrawTextColored(x, y+i*2, row.label, labelColor)
		dst.DrawText(x, y+i*2+1, fmt.Sprintf("%d", row.value))
	}
}

// renderOverlay prints the phase banner in the middle of the board.
func renderOverlay(dst *core.Screen, board core.Rect, s Snapshot) {
	var lines []string
	switch s.Phase {
	case PhaseIdle:
		lines = []string{"BLOCKFALL", "", "press start"}
	case PhasePaused:
		lines = []string{"PAUSED"}
	case PhaseGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", s.Score), "", "press start"}
	default:
		return
	}

	inner := board.Inset(1)
	top := inner.Y + (inner.H-len(lines))/2
	band := core.NewRect(inner.X, top-1, inner.W, len(lines)+2)
	dst.DrawRect(band, ' ')
	for i, line := range lines {
		dst.DrawTextCentered(inner, top+i, line, overlayColor)
	}
}
