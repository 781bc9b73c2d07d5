// Package bot answers a turn: given the field, the active piece, the next
// piece and the combo, it returns the inputs that put the active piece where
// the search wants it.
package bot

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/dropbot/config"
	"github.com/domino14/dropbot/gamestate"
	"github.com/domino14/dropbot/move"
	"github.com/domino14/dropbot/search"
)

type Bot struct {
	config *config.Config
	solver *search.Solver
}

func SolverOptions(cfg *config.Config) search.Options {
	return search.Options{
		Plies:          cfg.GetInt(config.ConfigPlies),
		LookaheadCache: cfg.GetBool(config.ConfigLookaheadCache),
	}
}

func NewBot(cfg *config.Config) *Bot {
	return &Bot{
		config: cfg,
		solver: search.NewSolver(SolverOptions(cfg)),
	}
}

// Solve runs the search for st. Neither the field nor the current piece in
// st is modified.
func (bot *Bot) Solve(st *gamestate.State) search.Best {
	next := st.NextPiece()
	best := bot.solver.BestPlacement(st.Field, st.Current, &next, st.Combo)
	stats := bot.solver.Stats()
	log.Debug().
		Int("scored", stats.Scored).
		Int("memo-hits", stats.MemoHits).
		Int("memo-size", stats.MemoSize).
		Msg("search-stats")
	return best
}

// GetMoves returns the actions for this turn. With no resting placement
// available it returns a bare drop.
func (bot *Bot) GetMoves(st *gamestate.State) []move.Action {
	best := bot.Solve(st)
	if !best.Found {
		log.Warn().Str("piece", st.Current.String()).Msg("no-placement-found")
		return []move.Action{move.ActionDrop}
	}
	return move.Sequence(best.Rotation, best.Offset)
}

func (bot *Bot) Stats() search.SearchStats {
	return bot.solver.Stats()
}
