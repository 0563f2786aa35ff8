package game

import (
	"fmt"
	"iter"
	"strings"
)

// cell is empty (0) or holds Colour+1.
type cell uint8

const empty cell = 0

func cellOf(c Colour) cell { return cell(c) + 1 }

func (c cell) colour() (Colour, bool) {
	if c == empty {
		return 0, false
	}
	return Colour(c - 1), true
}

// Board is a plain value; assigning it copies the whole grid.
type Board struct {
	grid [BoardSize][BoardSize]cell
}

// NewBoard returns the starting layout: two diagonal pairs in the centre.
func NewBoard() Board {
	var b Board
	centre := (BoardSize - 1) / 2
	b.Set(Position{centre, centre}, Light)
	b.Set(Position{centre + 1, centre}, Dark)
	b.Set(Position{centre, centre + 1}, Dark)
	b.Set(Position{centre + 1, centre + 1}, Light)
	return b
}

// ParseBoard reads the format written by String: BoardSize rows of 'D', 'L'
// or '.'. Blank lines and surrounding whitespace are ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	row := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row >= BoardSize {
			return Board{}, fmt.Errorf("too many rows: want %d", BoardSize)
		}
		if len(line) != BoardSize {
			return Board{}, fmt.Errorf("row %d has %d cells, want %d", row, len(line), BoardSize)
		}
		for col, r := range line {
			switch r {
			case 'D':
				b.grid[row][col] = cellOf(Dark)
			case 'L':
				b.grid[row][col] = cellOf(Light)
			case '.':
			default:
				return Board{}, fmt.Errorf("row %d: unexpected %q", row, r)
			}
		}
		row++
	}
	if row != BoardSize {
		return Board{}, fmt.Errorf("got %d rows, want %d", row, BoardSize)
	}
	return b, nil
}

func (b *Board) At(p Position) (Colour, bool) {
	return b.grid[p.x][p.y].colour()
}

func (b *Board) Set(p Position, c Colour) {
	b.grid[p.x][p.y] = cellOf(c)
}

func (b *Board) Clear(p Position) {
	b.grid[p.x][p.y] = empty
}

// Line yields every on-board position after origin along d, up to the edge.
// It ignores occupancy.
func Line(origin Position, d Direction) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		p, ok := origin.Step(d)
		for ok {
			if !yield(p) {
				return
			}
			p, ok = p.Step(d)
		}
	}
}

// Landing walks the line from origin along d and returns the empty cell that
// would close a capture for the colour standing on origin. It fails if origin
// is empty, if an own-colour cell comes before any opposing one, if an empty
// cell comes before any opposing one, or if the line runs out.
func (b *Board) Landing(origin Position, d Direction) (Position, bool) {
	colour, ok := b.At(origin)
	if !ok {
		return Position{}, false
	}
	capturing := false
	for p := range Line(origin, d) {
		c, occupied := b.At(p)
		switch {
		case occupied && c == colour:
			return Position{}, false
		case occupied:
			capturing = true
		case capturing:
			return p, true
		default:
			return Position{}, false
		}
	}
	return Position{}, false
}

// MovesFrom returns the moves colour can start at origin, in Directions order.
func (b *Board) MovesFrom(colour Colour, origin Position) []Move {
	if c, ok := b.At(origin); !ok || c != colour {
		return nil
	}
	var moves []Move
	for _, d := range Directions {
		if _, ok := b.Landing(origin, d); ok {
			moves = append(moves, Move{origin: origin, direction: d, colour: colour})
		}
	}
	return moves
}

// LegalMoves scans the board row-major and collects MovesFrom for every cell
// holding colour. Players see moves in exactly this order.
func (b *Board) LegalMoves(colour Colour) []Move {
	var moves []Move
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			moves = append(moves, b.MovesFrom(colour, Position{x, y})...)
		}
	}
	return moves
}

// Apply flips the opposing run along the move's line and claims the landing
// cell. It panics if it meets the mover's own colour (or the edge) before an
// empty cell, which only happens for a move that did not come from LegalMoves
// on this board. The board is left untouched in that case.
func (b *Board) Apply(m Move) {
	run, landed := 0, false
	for p := range Line(m.origin, m.direction) {
		c, occupied := b.At(p)
		if !occupied {
			landed = true
			break
		}
		if c == m.colour {
			panic(fmt.Errorf("%w: %s reached own cell %s", ErrInvalidMove, m, p))
		}
		run++
	}
	if !landed {
		panic(fmt.Errorf("%w: %s has no landing cell", ErrInvalidMove, m))
	}

	p := m.origin
	for i := 0; i <= run; i++ {
		p, _ = p.Step(m.direction)
		b.Set(p, m.colour)
	}
}

// Score returns the disc counts ordered (dark, light).
func (b *Board) Score() (dark, light int) {
	for x := range b.grid {
		for y := range b.grid[x] {
			switch b.grid[x][y] {
			case cellOf(Dark):
				dark++
			case cellOf(Light):
				light++
			}
		}
	}
	return dark, light
}

// Empty counts unoccupied cells.
func (b *Board) Empty() int {
	dark, light := b.Score()
	return BoardSize*BoardSize - dark - light
}

func (b Board) String() string {
	var sb strings.Builder
	for x := range b.grid {
		for y := range b.grid[x] {
			c, ok := b.grid[x][y].colour()
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(c.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
