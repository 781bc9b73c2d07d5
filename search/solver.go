// Package search picks the placement of the current piece that maximizes
// the grid evaluation, looking one piece ahead when the next piece is known.
package search

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/dropbot/board"
	"github.com/domino14/dropbot/movegen"
	"github.com/domino14/dropbot/piece"
)

// NoPlacementScore is the score a Best starts with. A search that finds no
// resting placement returns it unchanged.
const NoPlacementScore = -1000.0

const DefaultPlies = 2

// Best is the highest scoring placement found by a search.
type Best struct {
	Score float64
	// Offset counts columns to the left of the starting column; negative
	// values are to the right.
	Offset   int
	Rotation int
	Rested   piece.Piece
	// Found is false when no placement came to rest inside the grid.
	Found bool
}

type Options struct {
	// Plies is the search depth. 1 ignores the next piece; 2 adds the best
	// placement of the next piece to every candidate.
	Plies int
	// LookaheadCache memoizes second-ply results within one search.
	LookaheadCache bool
}

func DefaultOptions() Options {
	return Options{Plies: DefaultPlies, LookaheadCache: true}
}

// SearchStats counts the work done by the most recent BestPlacement call.
type SearchStats struct {
	Scored    int
	MemoHits  int
	MemoSize  int
	Lookahead int
}

// Solver is not safe for concurrent use. Use one per goroutine.
type Solver struct {
	opts  Options
	memo  *lookaheadMemo
	stats SearchStats
}

func NewSolver(opts Options) *Solver {
	if opts.Plies < 1 {
		opts.Plies = DefaultPlies
	}
	return &Solver{opts: opts}
}

func (s *Solver) Options() Options { return s.opts }

func (s *Solver) Stats() SearchStats { return s.stats }

// BestPlacement scores every resting placement of p on g and returns the
// best one. When next is non-nil and the solver searches two plies, each
// candidate's score also includes the best score next can reach on the
// grid left after the candidate's lines are cleared, with the combo raised
// by those lines. g and p are not modified.
func (s *Solver) BestPlacement(g *board.Grid, p piece.Piece, next *piece.Piece, combo int) Best {
	s.stats = SearchStats{}
	if s.opts.Plies < 2 {
		next = nil
	}
	if next != nil && s.opts.LookaheadCache {
		s.memo = newLookaheadMemo(g)
	} else {
		s.memo = nil
	}

	best := s.bestPlacement(g, p, next, combo)

	if s.memo != nil {
		s.stats.MemoSize = s.memo.Len()
	}
	log.Debug().
		Str("piece", p.Kind().String()).
		Int("combo", combo).
		Bool("found", best.Found).
		Float64("score", best.Score).
		Int("rotation", best.Rotation).
		Int("offset", best.Offset).
		Int("scored", s.stats.Scored).
		Int("memo-hits", s.stats.MemoHits).
		Msg("best-placement")
	return best
}

func (s *Solver) bestPlacement(g *board.Grid, p piece.Piece, next *piece.Piece, combo int) Best {
	best := Best{Score: NoPlacementScore}

	movegen.GenAll(g, p, func(pl movegen.Placement) {
		branch := g.Copy()
		branch.Place(pl.Rested)
		score := branch.Evaluate(pl.Rested, combo*2)
		s.stats.Scored++

		if next != nil {
			cleared := branch.ClearCompletedLines()
			score += s.lookahead(branch, *next, combo+cleared)
		}

		// Ties go to the later placement. A best of exactly 0.0 is always
		// replaced, whatever the new score.
		if score >= best.Score || best.Score == 0.0 {
			best = Best{
				Score:    score,
				Offset:   pl.Offset,
				Rotation: pl.Rotation,
				Rested:   pl.Rested,
				Found:    true,
			}
		}
	})
	return best
}

// lookahead is the best score of p on g with no further lookahead.
func (s *Solver) lookahead(g *board.Grid, p piece.Piece, combo int) float64 {
	s.stats.Lookahead++
	if s.memo == nil {
		return s.bestPlacement(g, p, nil, combo).Score
	}
	key := s.memo.key(g, p, combo)
	if score, ok := s.memo.get(key); ok {
		s.stats.MemoHits++
		return score
	}
	score := s.bestPlacement(g, p, nil, combo).Score
	s.memo.put(key, score)
	return score
}
