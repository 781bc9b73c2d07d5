package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug             = "debug"
	ConfigFile              = "config-file"
	ConfigBoardWidth        = "board-width"
	ConfigBoardHeight       = "board-height"
	ConfigPlies             = "plies"
	ConfigLookaheadCache    = "lookahead-cache"
	ConfigAutoplayGames     = "autoplay-games"
	ConfigAutoplayThreads   = "autoplay-threads"
	ConfigAutoplayMaxPieces = "autoplay-max-pieces"
	ConfigAutoplaySeed      = "autoplay-seed"
	ConfigAutoplayOutput    = "autoplay-output"
	ConfigAutoplayHistogram = "autoplay-histogram"
)

const (
	defaultBoardWidth        = 10
	defaultBoardHeight       = 20
	defaultPlies             = 2
	defaultAutoplayGames     = 100
	defaultAutoplayThreads   = 4
	defaultAutoplayMaxPieces = 500

	minBoardWidth  = 7
	minBoardHeight = 4
)

// Config wraps a viper instance. Values come from, in order of precedence:
// flags, DROPBOT_* environment variables, an optional config file, and
// defaults.
type Config struct {
	*viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigBoardWidth, defaultBoardWidth)
	v.SetDefault(ConfigBoardHeight, defaultBoardHeight)
	v.SetDefault(ConfigPlies, defaultPlies)
	v.SetDefault(ConfigLookaheadCache, true)
	v.SetDefault(ConfigAutoplayGames, defaultAutoplayGames)
	v.SetDefault(ConfigAutoplayThreads, defaultAutoplayThreads)
	v.SetDefault(ConfigAutoplayMaxPieces, defaultAutoplayMaxPieces)
	v.SetDefault(ConfigAutoplaySeed, "dropbot")
	v.SetDefault(ConfigAutoplayOutput, "")
	v.SetDefault(ConfigAutoplayHistogram, true)
}

// DefaultConfig is a config with only the defaults set. Tests use it.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	return Config{Viper: v}
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("dropbot", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigFile, "", "optional YAML config file")
	fs.Int(ConfigBoardWidth, defaultBoardWidth, "grid width for self-play")
	fs.Int(ConfigBoardHeight, defaultBoardHeight, "grid height for self-play")
	fs.Int(ConfigPlies, defaultPlies, "search depth: 1 ignores the next piece, 2 looks one piece ahead")
	fs.Bool(ConfigLookaheadCache, true, "memoize second-ply results within a search")
	fs.Int(ConfigAutoplayGames, defaultAutoplayGames, "number of self-play games")
	fs.Int(ConfigAutoplayThreads, defaultAutoplayThreads, "self-play games run at once")
	fs.Int(ConfigAutoplayMaxPieces, defaultAutoplayMaxPieces, "stop a self-play game after this many pieces")
	fs.String(ConfigAutoplaySeed, "dropbot", "seed for self-play piece sequences")
	fs.String(ConfigAutoplayOutput, "", "CSV file for per-game self-play results")
	fs.Bool(ConfigAutoplayHistogram, true, "print a histogram of lines cleared after self-play")
	return fs
}

// Load parses args (without the program name) and returns the positional
// arguments that remain.
func (c *Config) Load(args []string) ([]string, error) {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	c.SetEnvPrefix("dropbot")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

func (c *Config) validate() error {
	var errs []error
	// The I piece spawns across columns 3-6.
	if c.GetInt(ConfigBoardWidth) < minBoardWidth || c.GetInt(ConfigBoardHeight) < minBoardHeight {
		errs = append(errs, fmt.Errorf("board must be at least %dx%d, got %dx%d",
			minBoardWidth, minBoardHeight,
			c.GetInt(ConfigBoardWidth), c.GetInt(ConfigBoardHeight)))
	}
	if p := c.GetInt(ConfigPlies); p < 1 || p > 2 {
		errs = append(errs, fmt.Errorf("plies must be 1 or 2, got %d", p))
	}
	if c.GetInt(ConfigAutoplayThreads) < 1 {
		errs = append(errs, fmt.Errorf("autoplay-threads must be positive"))
	}
	return errors.Join(errs...)
}
