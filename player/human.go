package player

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"reversi/game"
)

// Labels mark landing squares on the rendered board. D and L would clash with
// discs and Q quits.
const Labels = "123456789ABCEFGHIJKMNOPRSTUVWXYZ"

var labelRunes = []rune(Labels)

type lineReader interface {
	Readline() (string, error)
}

// Human asks a person at the terminal for each move.
type Human struct {
	in     lineReader
	out    io.Writer
	term   *termenv.Output
	closer io.Closer
	quit   func()
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewHuman() (*Human, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:              "move #: ",
		InterruptPrompt:     "^C",
		EOFPrompt:           "q",
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	out := l.Stdout()
	return &Human{
		in:     l,
		out:    out,
		term:   termenv.NewOutput(out),
		closer: l,
		quit: func() {
			log.Fatal().Msg("player quit")
		},
	}, nil
}

func (h *Human) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer.Close()
}

// Choose draws the board with a label on every reachable landing square and
// reads labels until one matches. q quits the whole process.
func (h *Human) Choose(b *game.Board, moves []game.Move) (game.Move, bool) {
	io.WriteString(h.out, h.render(b, moves))
	for {
		line, err := h.in.Readline()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, readline.ErrInterrupt) {
				log.Error().Err(err).Msg("reading move")
			}
			h.quit()
			return game.Move{}, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(line)
		r = unicode.ToUpper(r)
		if r == 'Q' {
			h.quit()
			return game.Move{}, false
		}
		if i := lo.IndexOf(labelRunes, r); i >= 0 && i < len(moves) {
			return moves[i], true
		}
		fmt.Fprintf(h.out, "Didn't understand %q\n", line)
	}
}

func (h *Human) render(b *game.Board, moves []game.Move) string {
	var cells [game.BoardSize][game.BoardSize]string
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			c, ok := b.At(game.NewPosition(x, y))
			switch {
			case !ok:
				cells[x][y] = "_"
			case c == game.Dark:
				cells[x][y] = h.term.String("D").Bold().String()
			default:
				cells[x][y] = h.term.String("L").Faint().String()
			}
		}
	}

	if len(moves) > len(labelRunes) {
		log.Warn().Int("moves", len(moves)).Msgf("only the first %d moves are labelled", len(labelRunes))
	}
	for i, m := range moves {
		if i >= len(labelRunes) {
			break
		}
		landing, ok := b.Landing(m.Origin(), m.Direction())
		if !ok {
			continue
		}
		cells[landing.X()][landing.Y()] = h.term.String(string(labelRunes[i])).
			Foreground(h.term.Color("3")).String()
	}

	var sb strings.Builder
	for x := range cells {
		for y := range cells[x] {
			sb.WriteString(cells[x][y])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
