package referee_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeegomo/weakmind/pkg/engine/referee"
	"github.com/zeegomo/weakmind/pkg/game"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	sent := referee.State{Turn: referee.TurnWhite}
	sent.Board[4][4] = "KING"

	require.NoError(t, referee.WriteFrame(&buf, sent))

	var got referee.State
	require.NoError(t, referee.ReadFrame(&buf, &got))
	assert.Equal(t, sent, got)
}

func TestReadFrameMalformedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, referee.WriteFrame(&buf, "not a state object"))

	var st referee.State
	err := referee.ReadFrame(&buf, &st)
	assert.ErrorIs(t, err, referee.ErrDecode)
}

func TestStateOfStartingPosition(t *testing.T) {
	s := referee.StateOf(game.NewPosition(true))

	assert.Equal(t, referee.TurnWhite, s.Turn)
	assert.Equal(t, "KING", s.Board[4][4])
	assert.Equal(t, "BLACK", s.Board[0][3])
	assert.Equal(t, "WHITE", s.Board[4][2])
	assert.Equal(t, "EMPTY", s.Board[0][0])
}

func TestStateOfTerminal(t *testing.T) {
	p := game.NewPosition(true)
	p.Move(game.Pass)
	assert.Equal(t, referee.TurnBlackWin, referee.StateOf(p).Turn)

	p2 := game.NewPositionFromPlacements(false, []game.Placement{
		{Pos: game.Coord(4, 4), Tile: game.King},
	})
	p2.Move(game.Pass)
	assert.Equal(t, referee.TurnWhiteWin, referee.StateOf(p2).Turn)
}

func TestActionFromMove(t *testing.T) {
	m := game.Move{From: game.Coord(4, 2), To: game.Coord(4, 1)}

	a := referee.ActionFromMove(m, true)
	assert.Equal(t, "e2", a.From)
	assert.Equal(t, "e1", a.To)
	assert.Equal(t, referee.TurnWhite, a.Turn)

	a2 := referee.ActionFromMove(m, false)
	assert.Equal(t, referee.TurnBlack, a2.Turn)
}

// S6: given the mirror at the classical opening and a referee board
// reflecting the defender move e3->e2, InferMove must recover exactly that
// move.
func TestInferMoveRecoversKnownMove(t *testing.T) {
	mirror := game.NewPosition(true)

	want := game.Move{From: game.Coord(4, 2), To: game.Coord(4, 1)}
	after := game.NewPosition(true)
	after.Move(want)
	next := referee.StateOf(after)

	got, err := referee.InferMove(mirror, next)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// InferMove must not have mutated the mirror.
	assert.Equal(t, referee.StateOf(game.NewPosition(true)), referee.StateOf(mirror))
}

func TestInferMoveDesync(t *testing.T) {
	mirror := game.NewPosition(true)

	bogus := referee.StateOf(mirror)
	bogus.Board[8][8] = "BLACK"

	_, err := referee.InferMove(mirror, bogus)
	assert.ErrorIs(t, err, referee.ErrDesync)
}
