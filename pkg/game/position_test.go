package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeegomo/weakmind/pkg/game"
)

// S1: the classical Tablut opening yields exactly 56 legal defender moves
// under this engine's throne-complex block/capture rules. Frozen per spec.
func TestStartingPositionMoveCounts(t *testing.T) {
	p := game.NewPosition(true)
	assert.Len(t, p.GetMoves(), 56, "defender opening move count")

	p2 := game.NewPosition(false)
	assert.Len(t, p2.GetMoves(), 80, "attacker-to-move opening move count")
}

// S2: a quiet defender move updates the board without captures and flips the turn.
func TestQuietMove(t *testing.T) {
	p := game.NewPosition(true)
	from := game.Coord(4, 2)
	to := game.Coord(4, 1)

	require.Equal(t, game.Defender, p.Get(from))
	require.Equal(t, game.Empty, p.Get(to))

	wasDefender := p.Turn()
	p.Move(game.Move{From: from, To: to})

	assert.Equal(t, game.King, p.Get(game.Throne))
	assert.Equal(t, game.Empty, p.Get(from))
	assert.Equal(t, game.Defender, p.Get(to))
	assert.NotEqual(t, wasDefender, p.Turn())
	assert.Equal(t, game.Going, p.State())
}

// GetMoves never returns an empty slice, and returns only the pass sentinel
// when no piece can move.
func TestGetMovesTotality(t *testing.T) {
	p := game.NewPosition(true)
	assert.NotEmpty(t, p.GetMoves())

	// The attacker has no pieces, so the pass is its only move.
	noAttackers := game.NewPositionFromPlacements(false, []game.Placement{
		{Pos: game.Throne, Tile: game.King},
	})
	assert.Equal(t, []game.Move{game.Pass}, noAttackers.GetMoves())
}

// Rollback round trip: applying a long random legal playout and rolling it
// back in reverse restores the starting position bit for bit.
func TestRollbackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for game_ := 0; game_ < 50; game_++ {
		p := game.NewPosition(true)
		var history []game.Rollback

		for i := 0; i < 200 && p.State() == game.Going; i++ {
			moves := p.GetMoves()
			m := moves[rng.Intn(len(moves))]
			history = append(history, p.MoveWithRollback(m))
		}

		for i := len(history) - 1; i >= 0; i-- {
			p.Rollback(history[i])
		}

		want := game.NewPosition(true)
		assert.Equal(t, want.GetStaticState(), p.GetStaticState())
		assert.Equal(t, want.State(), p.State())
	}
}

// Every legal move is of a piece belonging to the side to move, and every
// destination is empty.
func TestMoveLegalityShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := game.NewPosition(true)

	for i := 0; i < 500 && p.State() == game.Going; i++ {
		turn := p.Turn()
		for _, m := range p.GetMoves() {
			if m.IsPass() {
				continue
			}
			piece := p.Get(m.From)
			assert.Equal(t, turn, piece.IsDefending(), "move %v piece side", m)
			assert.Equal(t, game.Empty, p.Get(m.To), "move %v destination must be empty", m)
		}
		moves := p.GetMoves()
		m := moves[rng.Intn(len(moves))]
		p.Move(m)
	}
}

// Terminal monotonicity: rolling back a stalemate concession restores Going.
func TestRollbackClearsTerminalState(t *testing.T) {
	p := game.NewPosition(true)
	rb := p.MoveWithRollback(game.Pass)
	require.Equal(t, game.Lose, p.State(), "defender passing concedes a win to the attacker")

	p.Rollback(rb)
	assert.Equal(t, game.Going, p.State())
	assert.True(t, p.Turn(), "rollback restores the side to move")
}

// S3: a King off the throne is captured by custodial capture with a single
// attacker on the opposite side, when the King is off the throne complex:
// sandwiching the King between two attackers on one axis captures it.
func TestKingCaptureOffThroneSingleSidedCustodial(t *testing.T) {
	king := game.Coord(4, 1) // off throne complex
	attackerAbove := game.Coord(4, 0)
	moverFrom := game.Coord(4, 8)

	p := game.NewPositionFromPlacements(false, []game.Placement{
		{Pos: king, Tile: game.King},
		{Pos: attackerAbove, Tile: game.Attacker},
		{Pos: moverFrom, Tile: game.Attacker},
	})

	p.Move(game.Move{From: moverFrom, To: game.Coord(4, 2)})
	assert.Equal(t, game.Lose, p.State(), "King sandwiched by two attackers must be captured")
}

// Attacker moves landing adjacent to the King sort ahead of all other moves,
// per GetMovesSorted's ordering rule.
func TestMoveOrderingKingAdjacencyPriority(t *testing.T) {
	king := game.Coord(4, 1)
	nearAttacker := game.Coord(4, 3)
	farAttacker := game.Coord(0, 8)

	p := game.NewPositionFromPlacements(false, []game.Placement{
		{Pos: king, Tile: game.King},
		{Pos: nearAttacker, Tile: game.Attacker},
		{Pos: farAttacker, Tile: game.Attacker},
	})

	sorted := p.GetMovesSorted()
	require.NotEmpty(t, sorted)

	// nearAttacker can reach (4,2), adjacent to the King; that move must
	// sort to the front even though farAttacker has many other moves.
	top := sorted[0]
	assert.Equal(t, nearAttacker, top.From)
	assert.Equal(t, game.Coord(4, 2), top.To)
}

func TestStaticStateHashDeterministic(t *testing.T) {
	a := game.NewPosition(true)
	b := game.NewPosition(true)
	assert.Equal(t, a.GetStaticState().Hash(), b.GetStaticState().Hash())

	a.Move(game.Move{From: game.Coord(4, 2), To: game.Coord(4, 1)})
	assert.NotEqual(t, a.GetStaticState().Hash(), b.GetStaticState().Hash())
}
