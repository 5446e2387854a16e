package eval_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeegomo/weakmind/pkg/eval"
	"github.com/zeegomo/weakmind/pkg/game"
)

func TestEvaluateNonTerminal(t *testing.T) {
	tests := []struct {
		name     string
		p        *game.Position
		expected eval.Score
	}{
		{
			"classical opening, defender to move",
			game.NewPosition(true),
			-440,
		},
		{
			"classical opening, attacker to move",
			game.NewPosition(false),
			-441,
		},
		{
			"king alone on the throne",
			game.NewPositionFromPlacements(true, []game.Placement{
				{Pos: game.Throne, Tile: game.King},
			}),
			-56,
		},
		{
			"king alone on an open edge square",
			game.NewPositionFromPlacements(true, []game.Placement{
				{Pos: game.Coord(0, 4), Tile: game.King},
			}),
			36,
		},
		{
			"king on an open edge square with distant material, attacker to move",
			game.NewPositionFromPlacements(false, []game.Placement{
				{Pos: game.Coord(0, 4), Tile: game.King},
				{Pos: game.Coord(8, 0), Tile: game.Defender},
				{Pos: game.Coord(8, 8), Tile: game.Attacker},
			}),
			19,
		},
	}

	for _, tt := range tests {
		actual := eval.Evaluate(tt.p)
		assert.Equal(t, tt.expected, actual, tt.name)
	}
}

// Terminal positions reached by a pass concession evaluate to the Lose/Win
// encodings for their ply count: eval reads the cached terminal state that
// Move set, it does not inspect the board.
func TestEvaluateTerminal(t *testing.T) {
	defenderConcedes := game.NewPosition(true)
	defenderConcedes.Move(game.Pass)
	require := assert.New(t)
	require.Equal(game.Lose, defenderConcedes.State())
	require.Equal(eval.Lose(defenderConcedes.PlyCount()), eval.Evaluate(defenderConcedes))

	attackerConcedes := game.NewPositionFromPlacements(false, []game.Placement{
		{Pos: game.Coord(4, 4), Tile: game.King},
	})
	attackerConcedes.Move(game.Pass)
	require.Equal(game.Win, attackerConcedes.State())
	require.Equal(eval.Win(attackerConcedes.PlyCount()), eval.Evaluate(attackerConcedes))
}

// Invariant 5: non-terminal eval stays within [MinInt64/2, MaxInt64/2] and
// every terminal eval has magnitude over 30000, across a long random
// playout from the classical opening.
func TestEvaluateBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for game_ := 0; game_ < 20; game_++ {
		p := game.NewPosition(true)
		for i := 0; i < 300 && p.State() == game.Going; i++ {
			moves := p.GetMoves()
			p.Move(moves[rng.Intn(len(moves))])
		}

		s := eval.Evaluate(p)
		if p.State() == game.Going {
			assert.GreaterOrEqual(t, int64(s), int64(eval.MinScore))
			assert.LessOrEqual(t, int64(s), int64(eval.MaxScore))
		} else {
			assert.Greater(t, math.Abs(float64(s)), 30000.0)
		}
	}
}
