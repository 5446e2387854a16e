package eval

import (
	"context"
	"math/rand"

	"github.com/zeegomo/weakmind/pkg/game"
)

// Random adds a small amount of noise to evaluations, useful for varying an
// otherwise-deterministic opponent in tests and friendly play. limit bounds
// the noise added/removed, in the range [-limit/2; limit/2]. The zero value
// always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, p *game.Position) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
