package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"reversi/game"
)

// Engine alternates two players over a board until neither side has a move.
type Engine struct {
	players   [2]Player // indexed by game.Colour
	turn      game.Colour
	board     game.Board
	lightMove bool
	darkMove  bool
	result    Result
}

// NewEngine takes ownership of a copy of board. Dark moves first.
func NewEngine(dark, light Player, board game.Board) *Engine {
	if dark == nil || light == nil {
		panic("engine needs two players")
	}
	e := &Engine{
		turn:      game.Dark,
		board:     board,
		lightMove: true,
		darkMove:  true,
	}
	e.players[game.Dark] = dark
	e.players[game.Light] = light
	return e
}

func (e *Engine) Board() *game.Board { return &e.board }

func (e *Engine) Turn() game.Colour { return e.turn }

// Over reports whether both colours had no legal move on their latest turn.
func (e *Engine) Over() bool {
	return !e.lightMove && !e.darkMove
}

// Step plays a single turn for the colour to move and hands the turn over.
// A player that declines still counts as having had a move.
func (e *Engine) Step() {
	moves := e.board.LegalMoves(e.turn)
	hadMove := len(moves) > 0

	if hadMove {
		move, ok := e.players[e.turn].Choose(&e.board, moves)
		if ok {
			if !lo.Contains(moves, move) {
				panic(fmt.Errorf("%w: %s", ErrForeignMove, move))
			}
			e.board.Apply(move)
			log.Trace().Stringer("move", move).Msg("applied")
		} else {
			e.result.Declines++
			log.Debug().Str("colour", e.turn.String()).Int("offered", len(moves)).Msg("player declined")
		}
	} else {
		e.result.Passes++
		log.Trace().Str("colour", e.turn.String()).Msg("pass")
	}

	if e.turn == game.Light {
		e.lightMove = hadMove
	} else {
		e.darkMove = hadMove
	}
	e.turn = e.turn.Opposite()
	e.result.Plies++
}

// Run steps until the game is over and returns the final tally.
func (e *Engine) Run() Result {
	log.Debug().Msgf("%s is starting", e.turn)
	for {
		e.Step()
		if e.Over() {
			break
		}
	}
	return e.Result()
}

func (e *Engine) Result() Result {
	r := e.result
	r.Dark, r.Light = e.board.Score()
	return r
}
