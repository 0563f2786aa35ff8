package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestNewPosition(t *testing.T) {
	t.Run("on board", func(t *testing.T) {
		p := NewPosition(7, 0)
		require.Equal(t, 7, p.X())
		require.Equal(t, 0, p.Y())
	})

	t.Run("out of range panics", func(t *testing.T) {
		for _, xy := range [][2]int{{8, 0}, {0, 8}, {-1, 3}, {3, -1}} {
			require.Panics(t, func() { NewPosition(xy[0], xy[1]) }, "position %v", xy)
		}
	})
}

func TestColourOpposite(t *testing.T) {
	require.Equal(t, Dark, Light.Opposite())
	require.Equal(t, Light, Dark.Opposite())
}

func TestLine(t *testing.T) {
	t.Run("runs to the edge", func(t *testing.T) {
		got := slices.Collect(Line(NewPosition(3, 5), Direction{0, 1}))
		require.Equal(t, []Position{NewPosition(3, 6), NewPosition(3, 7)}, got)
	})

	t.Run("empty at the edge", func(t *testing.T) {
		got := slices.Collect(Line(NewPosition(0, 0), Direction{-1, -1}))
		require.Empty(t, got)
	})

	t.Run("diagonal stops at first edge", func(t *testing.T) {
		got := slices.Collect(Line(NewPosition(5, 1), Direction{1, 1}))
		require.Equal(t, []Position{NewPosition(6, 2), NewPosition(7, 3)}, got)
	})
}

func TestStartingBoard(t *testing.T) {
	b := NewBoard()

	dark, light := b.Score()
	require.Equal(t, 2, dark)
	require.Equal(t, 2, light)
	require.Equal(t, 60, b.Empty())

	c, ok := b.At(NewPosition(3, 3))
	require.True(t, ok)
	require.Equal(t, Light, c)
	c, ok = b.At(NewPosition(4, 4))
	require.True(t, ok)
	require.Equal(t, Light, c)
	c, ok = b.At(NewPosition(4, 3))
	require.True(t, ok)
	require.Equal(t, Dark, c)
	c, ok = b.At(NewPosition(3, 4))
	require.True(t, ok)
	require.Equal(t, Dark, c)
}

func TestLegalMovesStartingBoard(t *testing.T) {
	b := NewBoard()

	moves := b.LegalMoves(Dark)

	require.Equal(t, []Move{
		{origin: NewPosition(3, 4), direction: Direction{0, -1}, colour: Dark},
		{origin: NewPosition(3, 4), direction: Direction{1, 0}, colour: Dark},
		{origin: NewPosition(4, 3), direction: Direction{-1, 0}, colour: Dark},
		{origin: NewPosition(4, 3), direction: Direction{0, 1}, colour: Dark},
	}, moves, "moves should follow row-major then direction order")
	require.Len(t, b.LegalMoves(Light), 4)
}

func TestLanding(t *testing.T) {
	b := mustParse(t, `
		........
		........
		........
		..DLL.D.
		...LDL..
		........
		........
		........`)

	t.Run("captures run and lands on empty", func(t *testing.T) {
		p, ok := b.Landing(NewPosition(3, 2), Direction{0, 1})
		require.True(t, ok)
		require.Equal(t, NewPosition(3, 5), p)
	})

	t.Run("empty before opposing fails", func(t *testing.T) {
		_, ok := b.Landing(NewPosition(4, 4), Direction{1, 0})
		require.False(t, ok)
		_, ok = b.Landing(NewPosition(3, 6), Direction{0, -1})
		require.False(t, ok)
	})

	t.Run("own colour after capture fails", func(t *testing.T) {
		// D at (4,4) looks left: L at (4,3) then empty at (4,2) -> lands.
		p, ok := b.Landing(NewPosition(4, 4), Direction{0, -1})
		require.True(t, ok)
		require.Equal(t, NewPosition(4, 2), p)
		// L at (3,3) looks right: L own at (3,4) first.
		_, ok = b.Landing(NewPosition(3, 3), Direction{0, 1})
		require.False(t, ok)
	})

	t.Run("empty origin fails", func(t *testing.T) {
		_, ok := b.Landing(NewPosition(0, 0), Direction{1, 1})
		require.False(t, ok)
	})

	t.Run("line exhausted while capturing fails", func(t *testing.T) {
		edge := mustParse(t, `
			.....DLL
			........
			........
			........
			........
			........
			........
			........`)
		_, ok := edge.Landing(NewPosition(0, 5), Direction{0, 1})
		require.False(t, ok)
	})
}

func TestMovesFromWrongColour(t *testing.T) {
	b := NewBoard()
	require.Empty(t, b.MovesFrom(Light, NewPosition(3, 4)))
	require.Empty(t, b.MovesFrom(Dark, NewPosition(0, 0)))
}

func TestApply(t *testing.T) {
	t.Run("flips run and claims landing", func(t *testing.T) {
		b := mustParse(t, `
			........
			........
			........
			..DLL...
			........
			........
			........
			........`)
		moves := b.MovesFrom(Dark, NewPosition(3, 2))
		require.Len(t, moves, 1)

		b.Apply(moves[0])

		require.Equal(t, mustParse(t, `
			........
			........
			........
			..DDDD..
			........
			........
			........
			........`), b)
	})

	t.Run("stale move panics without touching the board", func(t *testing.T) {
		b := NewBoard()
		m := b.LegalMoves(Dark)[0]
		b.Apply(m)
		before := b

		require.PanicsWithError(t,
			"invalid move applied: dark (3,4)->(0,-1) reached own cell (3,3)",
			func() { b.Apply(m) })
		require.Equal(t, before, b)
	})
}

func TestParseBoardErrors(t *testing.T) {
	_, err := ParseBoard("DL")
	require.Error(t, err)
	_, err = ParseBoard("........\n........\n........\n...X....\n........\n........\n........\n........")
	require.Error(t, err)
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := NewBoard()
	got := mustParse(t, b.String())
	require.Equal(t, b, got)
}

// Random playouts exercise the board invariants over many reachable positions.
func TestRandomPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 50; game++ {
		b := NewBoard()
		turn := Dark
		passes := 0
		for passes < 2 {
			moves := b.LegalMoves(turn)
			if len(moves) == 0 {
				passes++
				turn = turn.Opposite()
				continue
			}
			passes = 0
			for _, m := range moves {
				c, ok := b.At(m.Origin())
				require.True(t, ok)
				require.Equal(t, turn, c)
				landing, ok := b.Landing(m.Origin(), m.Direction())
				require.True(t, ok)
				_, occupied := b.At(landing)
				require.False(t, occupied)
			}
			m := moves[rng.Intn(len(moves))]
			emptyBefore := b.Empty()
			require.NotPanics(t, func() { b.Apply(m) })
			require.Less(t, b.Empty(), emptyBefore)

			dark, light := b.Score()
			require.Equal(t, BoardSize*BoardSize, dark+light+b.Empty())
			turn = turn.Opposite()
		}
		dark, light := b.Score()
		require.LessOrEqual(t, dark+light, 64)
	}
}
