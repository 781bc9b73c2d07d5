package automatic

// Batch self-play. Games are independent; each worker owns its runner.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"io"
	"os"
	"slices"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/dropbot/config"
)

var (
	GamesCounter *expvar.Int
	IsPlaying    *expvar.Int
)

func init() {
	GamesCounter = expvar.NewInt("selfplayGames")
	IsPlaying = expvar.NewInt("selfplayIsPlaying")
}

var logHeader = []string{"gameID", "seed", "pieces", "lines", "maxCombo", "maxHeight", "toppedOut"}

func (g GameResult) record() []string {
	return []string{
		strconv.Itoa(g.GameID),
		strconv.FormatUint(g.Seed, 10),
		strconv.Itoa(g.Pieces),
		strconv.Itoa(g.Lines),
		strconv.Itoa(g.MaxCombo),
		strconv.Itoa(g.MaxHeight),
		strconv.FormatBool(g.ToppedOut),
	}
}

// PlayGames plays the configured number of games, at most autoplay-threads
// at a time, and returns their results ordered by game ID. When logw is not
// nil every result is written to it as a CSV row as soon as its game ends.
// Cancelling ctx stops new games from starting; results of the games already
// finished are returned along with ctx's error.
func PlayGames(ctx context.Context, cfg *config.Config, logw io.Writer) ([]GameResult, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	numGames := cfg.GetInt(config.ConfigAutoplayGames)
	threads := cfg.GetInt(config.ConfigAutoplayThreads)
	runSeed := cfg.GetString(config.ConfigAutoplaySeed)
	log.Debug().Int("games", numGames).Int("threads", threads).Msg("starting-self-play")

	GamesCounter.Set(0)
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	results := make(chan GameResult, threads)
	var collected []GameResult
	var writeErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		var w *csv.Writer
		if logw != nil {
			w = csv.NewWriter(logw)
			writeErr = w.Write(logHeader)
		}
		for res := range results {
			collected = append(collected, res)
			if w != nil && writeErr == nil {
				writeErr = w.Write(res.record())
			}
		}
		if w != nil {
			w.Flush()
			if writeErr == nil {
				writeErr = w.Error()
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	runners := sync.Pool{New: func() any { return NewGameRunner(cfg) }}

gameLoop:
	for i := 0; i < numGames; i++ {
		select {
		case <-gctx.Done():
			log.Info().Msg("got stop signal, not starting more games")
			break gameLoop
		default:
		}
		i := i
		g.Go(func() error {
			r := runners.Get().(*GameRunner)
			defer runners.Put(r)
			res, err := r.PlayGame(i, GameSeed(runSeed, i))
			if err != nil {
				return err
			}
			results <- res
			GamesCounter.Add(1)
			if n := GamesCounter.Value(); n%1000 == 0 {
				log.Info().Int64("games", n).Msg("self-play-progress")
			}
			return nil
		})
	}
	err := g.Wait()
	close(results)
	wg.Wait()

	slices.SortFunc(collected, func(a, b GameResult) int { return a.GameID - b.GameID })
	if err == nil {
		err = ctx.Err()
	}
	if err == nil {
		err = writeErr
	}
	log.Info().Int("games", len(collected)).Msg("self-play-finished")
	return collected, err
}

// PlayGamesToFile is PlayGames with the CSV log written to path.
func PlayGamesToFile(ctx context.Context, cfg *config.Config, path string) ([]GameResult, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	results, err := PlayGames(ctx, cfg, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return results, err
}
