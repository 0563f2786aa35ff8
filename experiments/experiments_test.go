package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
)

func TestPlayGame(t *testing.T) {
	m := PlayGame(player.First{}, player.First{}, game.NewBoard())

	require.LessOrEqual(t, m.Dark+m.Light, 64)
	require.GreaterOrEqual(t, m.Passes, 2)
	require.False(t, m.EndTime.Before(m.StartTime))
	switch {
	case m.Dark > m.Light:
		require.Equal(t, "dark", m.Winner)
	case m.Light > m.Dark:
		require.Equal(t, "light", m.Winner)
	default:
		require.Empty(t, m.Winner)
	}
}

func TestRun(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	random := player.NewRandom(rng)
	writer, err := metrics.NewWriter(t.TempDir(), "random")
	require.NoError(t, err)

	records, err := Run("random", Matchup{Dark: random, Light: random, Games: 3}, writer)

	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		require.Equal(t, i+1, r.ID)
	}
	_, err = os.Stat(filepath.Join(writer.Dir(), "game_records.csv"))
	require.NoError(t, err)
}

func TestRunWithoutWriter(t *testing.T) {
	records, err := Run("first", Matchup{Dark: player.First{}, Light: player.First{}, Games: 2}, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, records[0].Dark, records[1].Dark, "deterministic players replay the same game")
}
