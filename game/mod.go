package game

import "errors"

const BoardSize = 8

var (
	// ErrOutOfRange is raised when a position is built outside the board.
	ErrOutOfRange = errors.New("position out of range")
	// ErrInvalidMove is raised when a move that did not come from the move
	// generator is applied to a board.
	ErrInvalidMove = errors.New("invalid move applied")
)

type Colour uint8

const (
	Light Colour = iota
	Dark
)

func (c Colour) Opposite() Colour {
	if c == Light {
		return Dark
	}
	return Light
}

func (c Colour) String() string {
	if c == Light {
		return "light"
	}
	return "dark"
}

// Rune is the single character used for the colour in board text.
func (c Colour) Rune() rune {
	if c == Light {
		return 'L'
	}
	return 'D'
}
