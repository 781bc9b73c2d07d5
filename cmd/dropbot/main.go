package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/dropbot/automatic"
	"github.com/domino14/dropbot/bot"
	"github.com/domino14/dropbot/config"
	"github.com/domino14/dropbot/gamestate"
	"github.com/domino14/dropbot/move"
	"github.com/domino14/dropbot/stats"
)

const usage = `usage: dropbot [flags] <command>

commands:
  solve <position.yaml>   print the actions for one turn
  autoplay                play self-play games and summarize them
  analyze <log.csv>       summarize a self-play log
`

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("debug logging is on")
}

func main() {
	cfg := &config.Config{}
	args, err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprint(os.Stderr, usage)
		log.Fatal().Err(err).Msg("bad-config")
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, args, os.Stdout); err != nil {
		stop()
		log.Fatal().Err(err).Msg("dropbot-failed")
	}
}

func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("no command given")
	}
	switch args[0] {
	case "solve":
		if len(args) != 2 {
			return errors.New("solve takes one position file")
		}
		return solve(cfg, args[1], out)
	case "autoplay":
		return autoplay(ctx, cfg, out)
	case "analyze":
		if len(args) != 2 {
			return errors.New("analyze takes one log file")
		}
		report, err := automatic.AnalyzeLogFile(args[1])
		if err != nil {
			return err
		}
		fmt.Fprint(out, report)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func solve(cfg *config.Config, path string, out io.Writer) error {
	st, err := gamestate.LoadFile(path)
	if err != nil {
		return err
	}
	b := bot.NewBot(cfg)
	best := b.Solve(st)
	if !best.Found {
		log.Warn().Msg("no-placement-found")
		fmt.Fprintln(out, move.String([]move.Action{move.ActionDrop}))
		return nil
	}
	log.Info().
		Float64("score", best.Score).
		Int("rotation", best.Rotation).
		Int("offset", best.Offset).
		Int("scored", b.Stats().Scored).
		Msg("solved")
	if cfg.GetBool(config.ConfigDebug) {
		g := st.Field.Copy()
		g.Place(best.Rested)
		fmt.Fprintln(out, g.ToDisplayText())
	}
	fmt.Fprintln(out, move.String(move.Sequence(best.Rotation, best.Offset)))
	return nil
}

func autoplay(ctx context.Context, cfg *config.Config, out io.Writer) error {
	var (
		results []automatic.GameResult
		err     error
	)
	start := time.Now()
	if path := cfg.GetString(config.ConfigAutoplayOutput); path != "" {
		results, err = automatic.PlayGamesToFile(ctx, cfg, path)
	} else {
		results, err = automatic.PlayGames(ctx, cfg, nil)
	}
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("self-play interrupted, reporting finished games")
	} else if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("self-play-done")

	fmt.Fprint(out, automatic.AnalyzeResults(results))
	if cfg.GetBool(config.ConfigAutoplayHistogram) && len(results) > 0 {
		fmt.Fprintln(out, "Lines cleared per game:")
		lines := lo.Map(results, func(g automatic.GameResult, _ int) float64 { return float64(g.Lines) })
		return stats.FprintHistogram(out, lines, 10, 40)
	}
	return nil
}
