// Package tetris implements the falling-block puzzle engine: the grid, the
// piece catalog, collision, line clearing, scoring and the game phase machine.
// Like every game in the arcade it is pure logic; the platform layer drives
// it through Engine methods and draws it from a Snapshot.
package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// PieceType identifies one of the seven tetrominoes.
// The numeric value doubles as the grid cell value of a locked block.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceCount is the number of tetromino types in the catalog.
const PieceCount = 7

// String returns the conventional one-letter name.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "-"
	}
}

// maxShapeSize bounds every shape matrix (the I piece is 4x4).
const maxShapeSize = 4

// Shape is a square piece matrix of size 2, 3 or 4.
// It is stored in a fixed array so assigning a Shape copies it.
type Shape struct {
	size  int
	cells [maxShapeSize][maxShapeSize]Cell
}

// newShape builds a shape from square row literals.
func newShape(rows ...[]Cell) Shape {
	s := Shape{size: len(rows)}
	for y, row := range rows {
		copy(s.cells[y][:], row)
	}
	return s
}

// Size returns the side length of the shape matrix.
func (s Shape) Size() int {
	return s.size
}

// At returns the cell at column x, row y of the matrix.
// Out-of-range coordinates read as empty.
func (s Shape) At(x, y int) Cell {
	if x < 0 || x >= s.size || y < 0 || y >= s.size {
		return 0
	}
	return s.cells[y][x]
}

// RotateCW returns the shape turned 90 degrees clockwise
// (transpose, then reverse each row).
func (s Shape) RotateCW() Shape {
	r := Shape{size: s.size}
	n := s.size
	for y := range n {
		for x := range n {
			r.cells[y][x] = s.cells[n-1-x][y]
		}
	}
	return r
}

// Definition is an immutable catalog entry: canonical shape plus color.
type Definition struct {
	Type  PieceType
	Shape Shape
	Color core.Color
}

// catalog is indexed by PieceType-1.
var catalog = buildCatalog()

func buildCatalog() [PieceCount]Definition {
	const (
		i = Cell(PieceI)
		j = Cell(PieceJ)
		l = Cell(PieceL)
		o = Cell(PieceO)
		s = Cell(PieceS)
		t = Cell(PieceT)
		z = Cell(PieceZ)
	)

	return [PieceCount]Definition{
		{PieceI, newShape(
			[]Cell{0, 0, 0, 0},
			[]Cell{i, i, i, i},
			[]Cell{0, 0, 0, 0},
			[]Cell{0, 0, 0, 0},
		), core.ColorRed},
		{PieceJ, newShape(
			[]Cell{j, 0, 0},
			[]Cell{j, j, j},
			[]Cell{0, 0, 0},
		), core.ColorGreen},
		{PieceL, newShape(
			[]Cell{0, 0, l},
			[]Cell{l, l, l},
			[]Cell{0, 0, 0},
		), core.ColorBlue},
		{PieceO, newShape(
			[]Cell{o, o},
			[]Cell{o, o},
		), core.ColorYellow},
		{PieceS, newShape(
			[]Cell{0, s, s},
			[]Cell{s, s, 0},
			[]Cell{0, 0, 0},
		), core.ColorMagenta},
		{PieceT, newShape(
			[]Cell{0, t, 0},
			[]Cell{t, t, t},
			[]Cell{0, 0, 0},
		), core.ColorCyan},
		{PieceZ, newShape(
			[]Cell{z, z, 0},
			[]Cell{0, z, z},
			[]Cell{0, 0, 0},
		), core.ColorOrange},
	}
}

// Lookup returns the catalog definition for t.
// PieceNone and unknown values yield the zero Definition.
func Lookup(t PieceType) Definition {
	if t == PieceNone || int(t) > PieceCount {
		return Definition{}
	}
	return catalog[t-1]
}

// ColorOf returns the display color of a grid cell value.
func ColorOf(c Cell) core.Color {
	return Lookup(PieceType(c)).Color
}

// Piece is a live piece instance: a private copy of a catalog shape that
// may be rotated, plus its anchor on the grid.
type Piece struct {
	Type  PieceType
	Shape Shape
	Color core.Color
	X, Y  int // Grid column/row of the shape matrix's top-left cell
}

// NewPiece instantiates a canonical (unrotated) piece at the origin.
func NewPiece(t PieceType) Piece {
	d := Lookup(t)
	return Piece{Type: d.Type, Shape: d.Shape, Color: d.Color}
}

// Size returns the side length of the piece's shape matrix.
func (p Piece) Size() int {
	return p.Shape.Size()
}
