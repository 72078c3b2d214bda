package tetris

// Board dimensions. They are fixed for the lifetime of every game.
const (
	GridWidth  = 10
	GridHeight = 20
)

// Cell is a grid value: 0 for empty, otherwise the PieceType of the locked block.
type Cell uint8

// Grid is the occupancy matrix, indexed [row][column] with row 0 at the top.
type Grid [GridHeight][GridWidth]Cell

// Collides reports whether p shifted by (dx, dy) would leave the board on the
// left, right or bottom, or overlap a locked cell. Rows above the board
// (negative y) never collide, so pieces may spawn partly hidden.
func Collides(g *Grid, p *Piece, dx, dy int) bool {
	n := p.Shape.Size()
	for y := range n {
		for x := range n {
			if p.Shape.At(x, y) == 0 {
				continue
			}
			gx := p.X + x + dx
			gy := p.Y + y + dy
			if gx < 0 || gx >= GridWidth || gy >= GridHeight {
				return true
			}
			if gy >= 0 && g[gy][gx] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge locks p into the grid. Blocks outside the board are dropped.
func (g *Grid) Merge(p *Piece) {
	n := p.Shape.Size()
	for y := range n {
		for x := range n {
			c := p.Shape.At(x, y)
			if c == 0 {
				continue
			}
			gx, gy := p.X+x, p.Y+y
			if gx < 0 || gx >= GridWidth || gy < 0 || gy >= GridHeight {
				continue
			}
			g[gy][gx] = Cell(p.Type)
		}
	}
}

// RowFull returns true if every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	for x := range GridWidth {
		if g[y][x] == 0 {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifting the rows above down and
// inserting empty rows at the top. Returns the number of rows removed.
func (g *Grid) ClearLines() int {
	cleared := 0
	for y := GridHeight - 1; y >= 0; {
		if !g.RowFull(y) {
			y--
			continue
		}
		for r := y; r > 0; r-- {
			g[r] = g[r-1]
		}
		g[0] = [GridWidth]Cell{}
		cleared++
		// Same y again: the row above has moved into it.
	}
	return cleared
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for y := range GridHeight {
		for x := range GridWidth {
			if g[y][x] != 0 {
				n++
			}
		}
	}
	return n
}
