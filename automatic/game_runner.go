// Package automatic plays whole games bot-vs-gravity: a seeded random piece
// sequence, one search per piece, until the stack tops out or a piece limit
// is reached.
package automatic

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/dropbot/board"
	"github.com/domino14/dropbot/bot"
	"github.com/domino14/dropbot/config"
	"github.com/domino14/dropbot/move"
	"github.com/domino14/dropbot/piece"
	"github.com/domino14/dropbot/search"
)

// GameResult is one row of the self-play log.
type GameResult struct {
	GameID    int
	Seed      uint64
	Pieces    int
	Lines     int
	MaxCombo  int
	MaxHeight int
	// ToppedOut is false when the game stopped at the piece limit.
	ToppedOut bool
}

// GameSeed derives the piece-sequence seed of game idx from the run seed.
func GameSeed(runSeed string, idx int) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%s-%d", runSeed, idx))
}

// GameRunner plays one game at a time. It is not safe for concurrent use.
type GameRunner struct {
	width, height int
	maxPieces     int
	solver        *search.Solver

	rng   *frand.RNG
	grid  *board.Grid
	combo int
}

func NewGameRunner(cfg *config.Config) *GameRunner {
	return &GameRunner{
		width:     cfg.GetInt(config.ConfigBoardWidth),
		height:    cfg.GetInt(config.ConfigBoardHeight),
		maxPieces: cfg.GetInt(config.ConfigAutoplayMaxPieces),
		solver:    search.NewSolver(bot.SolverOptions(cfg)),
	}
}

func (r *GameRunner) seed(s uint64) {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], s)
	r.rng = frand.NewCustom(key[:], 1024, 12)
}

func (r *GameRunner) draw() piece.Kind {
	return piece.AllKinds[r.rng.Intn(piece.NumKinds)]
}

// Grid is the field as the last game left it.
func (r *GameRunner) Grid() *board.Grid {
	return r.grid
}

// PlayGame plays a full game from an empty field. Games with the same seed
// are identical.
func (r *GameRunner) PlayGame(id int, seed uint64) (GameResult, error) {
	r.seed(seed)
	r.grid = board.NewGrid(r.width, r.height)
	r.combo = 0
	res := GameResult{GameID: id, Seed: seed}

	cur, next := r.draw(), r.draw()
	for r.maxPieces <= 0 || res.Pieces < r.maxPieces {
		cleared, ok, err := r.playTurn(cur, next)
		if err != nil {
			return res, fmt.Errorf("game %d, piece %d: %w", id, res.Pieces, err)
		}
		if !ok {
			res.ToppedOut = true
			break
		}
		res.Pieces++
		res.Lines += cleared
		res.MaxCombo = max(res.MaxCombo, r.combo)
		res.MaxHeight = max(res.MaxHeight, lo.Max(r.grid.Heights()))
		cur, next = next, r.draw()
	}
	log.Debug().
		Int("game", id).
		Int("pieces", res.Pieces).
		Int("lines", res.Lines).
		Bool("topped-out", res.ToppedOut).
		Msg("game-over")
	return res, nil
}

// playTurn spawns cur, searches, replays the chosen actions and settles the
// piece. ok is false when the piece cannot spawn or has nowhere to rest.
func (r *GameRunner) playTurn(cur, next piece.Kind) (cleared int, ok bool, err error) {
	p := piece.Spawn(cur)
	if !r.grid.IsValid(p) {
		return 0, false, nil
	}
	np := piece.Spawn(next)
	best := r.solver.BestPlacement(r.grid, p, &np, r.combo)
	if !best.Found {
		return 0, false, nil
	}
	rested, err := bot.Replay(r.grid, p, move.Sequence(best.Rotation, best.Offset))
	if err != nil {
		return 0, false, err
	}
	if rested != best.Rested {
		return 0, false, fmt.Errorf("replay landed at %v, search chose %v", rested, best.Rested)
	}
	r.grid.Place(rested)
	cleared = r.grid.ClearCompletedLines()
	if cleared > 0 {
		r.combo++
	} else {
		r.combo = 0
	}
	return cleared, true, nil
}
