package referee

import (
	"fmt"

	"github.com/zeegomo/weakmind/pkg/game"
)

// InferMove recovers the move that carried the mirror position p to next, by
// trying every legal move on p and comparing the resulting wire state to
// next. The referee never tells us the move itself, only the resulting
// board, so this diff is the only way to learn what happened — ours or the
// opponent's, the mirror doesn't know which until this call.
//
// p is left unchanged: every trial move is undone via Rollback before the
// next is tried, and the match move that matched is not applied either —
// the caller applies it once InferMove returns.
func InferMove(p *game.Position, next State) (game.Move, error) {
	for _, m := range p.GetMoves() {
		rb := p.MoveWithRollback(m)
		matched := StateOf(p) == next
		p.Rollback(rb)

		if matched {
			return m, nil
		}
	}
	return game.Move{}, fmt.Errorf("%w:\n%v", ErrDesync, game.PrintBoard(p))
}
