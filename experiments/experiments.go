package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
)

// Matchup seats the same two players for a number of games from the
// starting board.
type Matchup struct {
	Dark  engine.Player
	Light engine.Player
	Games int
}

// Run plays every game of the matchup and, when writer is not nil, stores the
// game records.
func Run(name string, m Matchup, writer *metrics.Writer) ([]metrics.GameRecord, error) {
	log.Info().Msgf("starting %s experiment with %d games...", name, m.Games)

	records := make([]metrics.GameRecord, 0, m.Games)
	for i := 0; i < m.Games; i++ {
		gameMetric := PlayGame(m.Dark, m.Light, game.NewBoard())
		records = append(records, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})
		log.Info().Msgf("completed game %d of %d with winner: %q (%d-%d)",
			i+1, m.Games, gameMetric.Winner, gameMetric.Dark, gameMetric.Light)
	}

	log.Info().Msgf("completed %s experiment", name)

	if writer == nil {
		return records, nil
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return records, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored game records")
	return records, nil
}

// PlayGame runs one game to completion and times it.
func PlayGame(dark, light engine.Player, board game.Board) metrics.GameMetric {
	start := time.Now()
	e := engine.NewEngine(dark, light, board)
	result := e.Run()
	end := time.Now()

	winner := ""
	if c, ok := result.Winner(); ok {
		winner = c.String()
	}
	return metrics.GameMetric{
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Plies:     result.Plies,
		Passes:    result.Passes,
		Declines:  result.Declines,
		Dark:      result.Dark,
		Light:     result.Light,
		Winner:    winner,
	}
}
