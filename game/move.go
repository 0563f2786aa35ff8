package game

import "fmt"

// Position is a cell on the board. The zero value is the corner (0, 0).
type Position struct {
	x, y int
}

// NewPosition panics when x or y falls outside the board.
func NewPosition(x, y int) Position {
	if !onBoard(x, y) {
		panic(fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y))
	}
	return Position{x: x, y: y}
}

func onBoard(x, y int) bool {
	return 0 <= x && x < BoardSize && 0 <= y && y < BoardSize
}

func (p Position) X() int { return p.x }
func (p Position) Y() int { return p.y }

// Step moves one cell along d, reporting false if that leaves the board.
func (p Position) Step(d Direction) (Position, bool) {
	x, y := p.x+d.dx, p.y+d.dy
	if !onBoard(x, y) {
		return Position{}, false
	}
	return Position{x: x, y: y}, true
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}

type Direction struct {
	dx, dy int
}

// Directions lists the 8 compass directions in move generation order.
var Directions = [8]Direction{
	{0, -1},
	{-1, 0},
	{1, 0},
	{0, 1},
	{1, -1},
	{-1, -1},
	{-1, 1},
	{1, 1},
}

func (d Direction) DX() int { return d.dx }
func (d Direction) DY() int { return d.dy }

func (d Direction) String() string {
	return fmt.Sprintf("(%d,%d)", d.dx, d.dy)
}

// Move is a flanking move by Colour starting at Origin and walking along
// Direction. Moves are only produced by Board.
type Move struct {
	origin    Position
	direction Direction
	colour    Colour
}

func (m Move) Origin() Position     { return m.origin }
func (m Move) Direction() Direction { return m.direction }
func (m Move) Colour() Colour       { return m.colour }

func (m Move) String() string {
	return fmt.Sprintf("%s %s->%s", m.colour, m.origin, m.direction)
}
