package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"reversi/game"
	"reversi/searcher"
)

const (
	ModePlay       = "play"
	ModeSearch     = "search"
	ModeExperiment = "experiment"

	PlayerHuman  = "human"
	PlayerRandom = "random"
	PlayerFirst  = "first"
)

type Config struct {
	*viper.Viper
}

// Load reads flags from args, then REVERSI_* environment variables, then an
// optional config file named by --config. Flags win over the environment,
// which wins over the file.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("reversi", pflag.ContinueOnError)
	fs.String("config", "", "optional config file (yaml, toml or json)")
	fs.String("mode", ModePlay, "play, search or experiment")
	fs.Int("depth", 4, "search depth below the root's children")
	fs.String("colour", "dark", "colour to move at the search root")
	fs.Uint64("seed", 0, "random seed; 0 draws one")
	fs.String("dark", PlayerRandom, "dark player: human, random or first")
	fs.String("light", PlayerRandom, "light player: human, random or first")
	fs.Int("games", 10, "games to play in experiment mode")
	fs.Int("node-capacity", searcher.DefaultNodeCapacity, "nodes to reserve for the search tree")
	fs.Int("leaf-capacity", searcher.DefaultLeafCapacity, "leaves to reserve for the search tree")
	fs.String("report-dir", "", "directory for csv reports; empty disables them")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.Bool("debug", false, "shorthand for --log-level debug")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("reversi")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString("config"); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return c.validate()
}

func (c *Config) validate() error {
	var errs []error
	switch c.GetString("mode") {
	case ModePlay, ModeSearch, ModeExperiment:
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.GetString("mode")))
	}
	if c.GetInt("depth") < 0 {
		errs = append(errs, fmt.Errorf("depth must not be negative, got %d", c.GetInt("depth")))
	}
	if _, err := c.Colour(); err != nil {
		errs = append(errs, err)
	}
	for _, key := range []string{"dark", "light"} {
		switch c.GetString(key) {
		case PlayerHuman, PlayerRandom, PlayerFirst:
		default:
			errs = append(errs, fmt.Errorf("unknown %s player %q", key, c.GetString(key)))
		}
	}
	if c.GetInt("games") < 1 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.GetInt("games")))
	}
	return errors.Join(errs...)
}

// Colour returns the search root colour.
func (c *Config) Colour() (game.Colour, error) {
	switch strings.ToLower(c.GetString("colour")) {
	case "dark", "d":
		return game.Dark, nil
	case "light", "l":
		return game.Light, nil
	default:
		return 0, fmt.Errorf("unknown colour %q", c.GetString("colour"))
	}
}
