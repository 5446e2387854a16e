// Package referee implements the wire protocol and per-turn driver that this
// engine speaks to an external match referee over TCP, grounded on
// player/src/common.rs, util.rs and client.rs: length-prefixed JSON framing,
// board diffing to infer the opponent's move, and the alternating
// receive/infer/search/send loop.
package referee

import "github.com/zeegomo/weakmind/pkg/game"

// Turn is the wire encoding of whose move it is, or how the game ended.
// WHITE is the defender, BLACK the attacker — the referee's naming, not
// this engine's.
type Turn string

const (
	TurnWhite    Turn = "WHITE"
	TurnBlack    Turn = "BLACK"
	TurnWhiteWin Turn = "WHITEWIN"
	TurnBlackWin Turn = "BLACKWIN"
	TurnDraw     Turn = "DRAW"
)

// Ongoing reports whether t still names a side to move, as opposed to a
// terminal outcome.
func (t Turn) Ongoing() bool {
	return t == TurnWhite || t == TurnBlack
}

// State is a board snapshot as sent by the referee each turn.
type State struct {
	Board [9][9]string `json:"board"`
	Turn  Turn         `json:"turn"`
}

// Action is a move as sent back to the referee: from/to are algebraic
// squares, column a..i, row 0..8 — column 0 is "a", matching game.Pos's own
// String encoding, so no separate coordinate math is needed here.
type Action struct {
	From string `json:"from"`
	To   string `json:"to"`
	Turn Turn   `json:"turn"`
}

// ActionFromMove builds the wire Action for m. defenderToMove is the side to
// move BEFORE m is applied — the referee records this as informational only,
// per common.rs's "useless, but this is included in the server message".
func ActionFromMove(m game.Move, defenderToMove bool) Action {
	t := TurnBlack
	if defenderToMove {
		t = TurnWhite
	}
	return Action{From: m.From.String(), To: m.To.String(), Turn: t}
}

// StateOf renders a Position the way the referee renders its own board: cell
// strings KING/BLACK/WHITE/THRONE/EMPTY, and a Turn reflecting the cached
// terminal state first, side to move otherwise.
func StateOf(p *game.Position) State {
	var s State

	switch p.State() {
	case game.Win:
		s.Turn = TurnWhiteWin
	case game.Lose:
		s.Turn = TurnBlackWin
	case game.Draw:
		s.Turn = TurnDraw
	default:
		if p.Turn() {
			s.Turn = TurnWhite
		} else {
			s.Turn = TurnBlack
		}
	}

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			pos := game.Coord(x, y)
			if pos == game.Throne && p.Get(pos) == game.Empty {
				s.Board[y][x] = "THRONE"
				continue
			}
			s.Board[y][x] = tileString(p.Get(pos))
		}
	}
	return s
}

func tileString(t game.Tile) string {
	switch t {
	case game.King:
		return "KING"
	case game.Attacker:
		return "BLACK"
	case game.Defender:
		return "WHITE"
	default:
		return "EMPTY"
	}
}
