// Package search implements the killer-B iterative-deepening alpha-beta
// search: the one search algorithm this engine ships, named for its single
// fixed killer-move heuristic reused across iterations. Plain minimax,
// transposition-table search, quiescence search and Monte-Carlo variants
// from the source are deliberately not reproduced here.
package search

import (
	"context"
	"math"
	"time"

	"github.com/seekerror/logw"
	"github.com/zeegomo/weakmind/pkg/eval"
	"github.com/zeegomo/weakmind/pkg/game"
)

// KillerB runs synchronously to completion or deadline: cancellation is
// cooperative, polled every 256 nodes via a wraparound counter against a
// wall-clock deadline, never via a goroutine or channel (§5 of the design:
// the search never yields control mid-node).
type KillerB struct {
	g *game.Position

	nnw        uint8
	tl         time.Duration
	st         time.Time
	endedEarly bool
	curDepth   uint32
	iterations uint64

	// bestMov and globalBest are killer moves indexed by remaining search
	// depth (index 0 is an unused leaf placeholder), persisted across
	// GetMov/Mov calls: bestMov holds the best move found at each depth
	// during the in-progress iterative deepening, globalBest holds the
	// principal variation of the last fully completed iteration and seeds
	// the next one's move ordering.
	bestMov    []game.Move
	globalBest []game.Move
}

// NewKillerB starts a fresh search over the classical Tablut opening.
func NewKillerB(defenderFirst bool) *KillerB {
	return &KillerB{
		g:          game.NewPosition(defenderFirst),
		bestMov:    []game.Move{{}},
		globalBest: []game.Move{{}},
	}
}

// GetGame returns the search's own mirror position.
func (k *KillerB) GetGame() *game.Position {
	return k.g
}

// State returns the mirror position's terminal state.
func (k *KillerB) State() game.State {
	return k.g.State()
}

// Turn returns true iff the defender is to move in the mirror position.
func (k *KillerB) Turn() bool {
	return k.g.Turn()
}

// PrintToGame renders the mirror position for interactive debugging.
func (k *KillerB) PrintToGame() string {
	return game.PrintBoard(k.g)
}

func prepend(s []game.Move, v game.Move) []game.Move {
	return append([]game.Move{v}, s...)
}

// GetMov runs iterative deepening until tl elapses, minus a fixed 20ms
// safety margin for the final bookkeeping slice, and returns the best move
// found at the deepest fully completed depth.
func (k *KillerB) GetMov(ctx context.Context, tl time.Duration) game.Move {
	k.tl = tl - 20*time.Millisecond
	k.iterations = 0
	k.st = time.Now()
	k.endedEarly = false

	var val eval.Score
	for !k.endedEarly {
		k.curDepth++
		k.bestMov = prepend(k.bestMov, k.bestMov[0])
		k.globalBest = prepend(k.globalBest, k.globalBest[0])

		h, hv := k.minimax(eval.Score(math.MinInt64), eval.Score(math.MaxInt64), k.curDepth, true)
		if !k.endedEarly {
			k.globalBest = hv
			val = h
			logw.Debugf(ctx, "killer-B depth=%d score=%v nodes=%d", k.curDepth, val, k.iterations)
		}
	}
	k.curDepth--
	k.bestMov = k.bestMov[1:]
	k.globalBest = k.globalBest[1:]

	logw.Infof(ctx, "killer-B settled depth=%d score=%v nodes=%d", k.curDepth, val, k.iterations)
	return k.globalBest[len(k.globalBest)-1]
}

// Mov commits a move to the mirror position and shifts the killer-move
// history down by one depth, since the position is now one ply deeper and
// every remaining depth-to-go is one shallower than before.
func (k *KillerB) Mov(m game.Move) {
	k.g.Move(m)
	if k.curDepth != 0 {
		k.curDepth--
		k.bestMov = k.bestMov[:len(k.bestMov)-1]
		k.globalBest = k.globalBest[:len(k.globalBest)-1]
	}
}

// minimax performs alpha-beta search depth plies deep, maximizing for the
// defender (a) and minimizing for the attacker (b) directly — not
// negamaxed, since eval.Evaluate already returns a defender-favoring score.
// best selects which killer-move history seeds the move tried first: the
// current iteration's globalBest while still following last iteration's
// principal variation, bestMov everywhere else. Returns the score and the
// chosen move at each depth-to-go from this node down (index 0 unused).
func (k *KillerB) minimax(a, b eval.Score, depth uint32, best bool) (eval.Score, []game.Move) {
	k.iterations++
	mv := make([]game.Move, depth+1)

	if k.g.State() != game.Going || depth == 0 {
		return eval.Evaluate(k.g), mv
	}

	k.nnw++
	if k.endedEarly || (k.nnw == 0 && time.Since(k.st) > k.tl) {
		k.endedEarly = true
		if k.g.Turn() {
			return a, mv
		}
		return b, mv
	}

	moves := k.g.GetMoves()
	bm := k.bestMov[depth]
	if best {
		bm = k.globalBest[depth]
	}

	if containsMove(moves, bm) {
		rb := k.g.MoveWithRollback(bm)
		h, hv := k.minimax(a, b, depth-1, best)
		k.g.Rollback(rb)

		if k.g.Turn() {
			if h > a {
				a = h
				if !k.endedEarly {
					k.bestMov[depth] = bm
					mv = append(hv, bm)
				}
			}
		} else if h < b {
			b = h
			if !k.endedEarly {
				k.bestMov[depth] = bm
				mv = append(hv, bm)
			}
		}
	}

	for _, m := range moves {
		if m == bm {
			continue
		}

		rb := k.g.MoveWithRollback(m)
		h, hv := k.minimax(a, b, depth-1, false)
		k.g.Rollback(rb)

		if k.g.Turn() {
			if h > a {
				a = h
				if !k.endedEarly {
					k.bestMov[depth] = m
					mv = append(hv, m)
				}
			}
		} else if h < b {
			b = h
			if !k.endedEarly {
				k.bestMov[depth] = m
				mv = append(hv, m)
			}
		}

		if a >= b || k.endedEarly {
			break
		}
	}

	if k.g.Turn() {
		return a, mv
	}
	return b, mv
}

func containsMove(moves []game.Move, m game.Move) bool {
	for _, mm := range moves {
		if mm == m {
			return true
		}
	}
	return false
}
