// Package eval contains position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/zeegomo/weakmind/pkg/game"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score, positive favoring the defender.
	Evaluate(ctx context.Context, p *game.Position) Score
}

// Default is the one heuristic named in this engine: a weighted linear
// combination of defender count, King mobility, attacker count and attacker
// pressure on the King, grounded on default_heuristic.rs.
type Default struct{}

func (Default) Evaluate(ctx context.Context, p *game.Position) Score {
	return Evaluate(p)
}

// Evaluate is the free-function form of Default.Evaluate, used directly by
// the search's inner loop to avoid an interface call per node.
func Evaluate(p *game.Position) Score {
	switch p.State() {
	case game.Win:
		return Win(p.PlyCount())
	case game.Lose:
		return Lose(p.PlyCount())
	case game.Draw:
		return 0
	}

	var nd, na int64
	var kingAt game.Pos
	for pos := game.ZeroPos; pos < game.NumPos; pos++ {
		switch p.Get(pos) {
		case game.Defender:
			nd++
		case game.Attacker:
			na++
		case game.King:
			kingAt = pos
		}
	}

	kx, ky := kingAt.XY()
	km := slideMobility(p, kx, ky, 1, 0) +
		slideMobility(p, kx, ky, -1, 0) +
		slideMobility(p, kx, ky, 0, 1) +
		slideMobility(p, kx, ky, 0, -1)

	var enNearK int64
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		x, y := kx+d[0], ky+d[1]
		if x < 0 || x >= 9 || y < 0 || y >= 9 {
			continue
		}
		if isCapturer(p, game.Coord(x, y)) {
			enNearK++
		}
	}

	var turnParity int64
	if !p.Turn() {
		turnParity = 1
	}

	return Score(nd*16 + km*4 - na*32 - enNearK*10 - turnParity)
}

// isPass reports whether a square is vacant and outside the throne complex:
// a square the King may slide over freely.
func isPass(p *game.Position, pos game.Pos) bool {
	return p.Get(pos) == game.Empty && !game.IsBlock(pos)
}

// isCapturer reports whether a square counts as an attacker-side wall for
// King mobility purposes: an attacker piece, or the throne complex acting as
// a capture aid regardless of who occupies it.
func isCapturer(p *game.Position, pos game.Pos) bool {
	return p.Get(pos) == game.Attacker || game.IsCaptureAid(pos)
}

// slideMobility counts the empty, non-block squares the King could slide
// across in direction (dx, dy) before hitting the board edge or a blocking
// square, then subtracts one if that blocking square is a capturer. This is
// the 9×9 bounds-checked replacement for default_heuristic.rs's 11×11-padded
// walk, which relies on its padding border always comparing as "not pass".
func slideMobility(p *game.Position, x, y, dx, dy int) int64 {
	var km int64
	cx, cy := x+dx, y+dy
	for cx >= 0 && cx < 9 && cy >= 0 && cy < 9 {
		pos := game.Coord(cx, cy)
		if !isPass(p, pos) {
			if isCapturer(p, pos) {
				km--
			}
			return km
		}
		km++
		cx += dx
		cy += dy
	}
	return km
}
