package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"reversi/config"
	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
	"reversi/searcher"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg)

	seed := cfg.GetUint64("seed")
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64)
	}
	log.Info().Uint64("seed", seed).Msg("random source")
	rng := rand.New(rand.NewSource(seed))

	var err error
	switch cfg.GetString("mode") {
	case config.ModePlay:
		err = runPlay(cfg, rng)
	case config.ModeSearch:
		err = runSearch(cfg, rng)
	case config.ModeExperiment:
		err = runExperiment(cfg, rng)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level, err := zerolog.ParseLevel(cfg.GetString("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.GetBool("debug") {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	if err != nil {
		log.Warn().Err(err).Msg("falling back to info logging")
	}
}

// newPlayer returns the player and a cleanup func for it.
func newPlayer(kind string, rng *rand.Rand) (engine.Player, func(), error) {
	switch kind {
	case config.PlayerHuman:
		h, err := player.NewHuman()
		if err != nil {
			return nil, nil, err
		}
		return h, func() { h.Close() }, nil
	case config.PlayerFirst:
		return player.First{}, func() {}, nil
	default:
		return player.NewRandom(rng), func() {}, nil
	}
}

func newPlayers(cfg *config.Config, rng *rand.Rand) (dark, light engine.Player, cleanup func(), err error) {
	dark, closeDark, err := newPlayer(cfg.GetString("dark"), rng)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("dark player: %w", err)
	}
	light, closeLight, err := newPlayer(cfg.GetString("light"), rng)
	if err != nil {
		closeDark()
		return nil, nil, nil, fmt.Errorf("light player: %w", err)
	}
	return dark, light, func() { closeDark(); closeLight() }, nil
}

func newWriter(cfg *config.Config, name string) (*metrics.Writer, error) {
	dir := cfg.GetString("report-dir")
	if dir == "" {
		return nil, nil
	}
	return metrics.NewWriter(dir, name)
}

func runPlay(cfg *config.Config, rng *rand.Rand) error {
	dark, light, cleanup, err := newPlayers(cfg, rng)
	if err != nil {
		return err
	}
	defer cleanup()

	e := engine.NewEngine(dark, light, game.NewBoard())
	result := e.Run()

	fmt.Print(e.Board().String())
	winner := "nobody"
	if c, ok := result.Winner(); ok {
		winner = c.String()
	}
	log.Info().
		Int("dark", result.Dark).
		Int("light", result.Light).
		Int("plies", result.Plies).
		Int("passes", result.Passes).
		Msgf("game over, %s wins", winner)
	return nil
}

func runSearch(cfg *config.Config, rng *rand.Rand) error {
	colour, err := cfg.Colour()
	if err != nil {
		return err
	}
	depth := cfg.GetInt("depth")
	tree := searcher.NewTree(
		searcher.WithRand(rng),
		searcher.WithCapacity(cfg.GetInt("node-capacity"), cfg.GetInt("leaf-capacity")),
		searcher.WithMetrics(metrics.NewCollector()),
	)

	summary, metric := tree.Search(game.NewBoard(), depth, colour)

	log.Info().Msgf("%d leaves, %d nodes", summary.Leaves, summary.Nodes)
	log.Info().Msgf("%d wins of %d plays", summary.Wins, summary.Plays)
	for _, b := range summary.Branches {
		log.Info().Msgf("%s %d %d", b.Move, b.Wins, b.Plays)
	}
	log.Debug().Dur("duration", metric.Duration).Msg("search complete")

	writer, err := newWriter(cfg, "search")
	if err != nil || writer == nil {
		return err
	}
	if err := writer.WriteSearchMetric(metric); err != nil {
		return err
	}
	if err := writer.WriteBranches(summary.Records()); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored search report")
	return nil
}

func runExperiment(cfg *config.Config, rng *rand.Rand) error {
	dark, light, cleanup, err := newPlayers(cfg, rng)
	if err != nil {
		return err
	}
	defer cleanup()

	name := cfg.GetString("dark") + "_vs_" + cfg.GetString("light")
	writer, err := newWriter(cfg, name)
	if err != nil {
		return err
	}
	_, err = experiments.Run(name, experiments.Matchup{
		Dark:  dark,
		Light: light,
		Games: cfg.GetInt("games"),
	}, writer)
	return err
}
