// Package player holds the move-choosing strategies the engine can seat.
package player

import (
	"golang.org/x/exp/rand"

	"reversi/game"
)

// Random picks uniformly among the offered moves.
type Random struct {
	rng *rand.Rand
}

// NewRandom shares rng; callers seed it for reproducible games.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Choose(_ *game.Board, moves []game.Move) (game.Move, bool) {
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}

// First always plays the first offered move, which makes games deterministic.
type First struct{}

func (First) Choose(_ *game.Board, moves []game.Move) (game.Move, bool) {
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[0], true
}
