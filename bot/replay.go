package bot

import (
	"errors"
	"fmt"

	"github.com/domino14/dropbot/board"
	"github.com/domino14/dropbot/move"
	"github.com/domino14/dropbot/piece"
)

var ErrIllegalAction = errors.New("illegal action")

// Replay applies actions to p on g the way a game server would and returns
// the piece where it lands. Turns are applied in place, as the move
// generator does. A blocked shift or descent is an error; the sequence must
// end with a drop.
func Replay(g *board.Grid, p piece.Piece, actions []move.Action) (piece.Piece, error) {
	for i, a := range actions {
		switch a {
		case move.ActionTurnRight:
			p.RotateClockwise()
		case move.ActionTurnLeft:
			for n := 0; n < 3; n++ {
				p.RotateClockwise()
			}
		case move.ActionLeft:
			if !g.CanShiftLeft(p) {
				return p, fmt.Errorf("%w: %v at step %d", ErrIllegalAction, a, i)
			}
			p.Translate(-1, 0)
		case move.ActionRight:
			if !g.CanShiftRight(p) {
				return p, fmt.Errorf("%w: %v at step %d", ErrIllegalAction, a, i)
			}
			p.Translate(1, 0)
		case move.ActionDown:
			if !g.CanDescend(p) {
				return p, fmt.Errorf("%w: %v at step %d", ErrIllegalAction, a, i)
			}
			p.Translate(0, 1)
		case move.ActionSkip:
		case move.ActionDrop:
			return g.Drop(p), nil
		default:
			return p, fmt.Errorf("%w: %v at step %d", ErrIllegalAction, a, i)
		}
	}
	return p, fmt.Errorf("%w: sequence has no drop", ErrIllegalAction)
}
