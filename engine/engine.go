package engine

import (
	"errors"

	"reversi/game"
)

// ErrForeignMove is raised when a Player returns a move it was not offered.
var ErrForeignMove = errors.New("player chose a move outside the offered set")

// Player picks one of the offered moves, or declines by returning false.
// moves is never empty and every element is legal for the colour to play.
type Player interface {
	Choose(b *game.Board, moves []game.Move) (game.Move, bool)
}

// PlayerFunc adapts a plain function to Player.
type PlayerFunc func(b *game.Board, moves []game.Move) (game.Move, bool)

func (f PlayerFunc) Choose(b *game.Board, moves []game.Move) (game.Move, bool) {
	return f(b, moves)
}

// Result summarises a finished (or interrupted) game.
type Result struct {
	Dark     int
	Light    int
	Plies    int // turns taken, passes included
	Passes   int
	Declines int // turns where the player was offered moves but chose none
}

// Winner reports the colour with more discs; false on a tie.
func (r Result) Winner() (game.Colour, bool) {
	switch {
	case r.Dark > r.Light:
		return game.Dark, true
	case r.Light > r.Dark:
		return game.Light, true
	default:
		return 0, false
	}
}
