package eval

import (
	"fmt"
	"math"
)

// Score is a signed position score, positive favors the defender. Unlike the
// teacher's pawns-as-float32, Score is integer-valued end to end: the Tablut
// heuristic (default_heuristic.rs) and its terminal encodings never need
// fractional precision.
type Score int64

const (
	// MinScore and MaxScore bound every non-terminal evaluation. Terminal
	// scores deliberately live outside this band (see Win/Lose below) so a
	// search can always tell a proven result from a heuristic guess.
	MinScore Score = math.MinInt64 / 2
	MaxScore Score = math.MaxInt64 / 2

	NegInf = MinScore - 1
	Inf    = MaxScore + 1
)

func (s Score) String() string {
	return fmt.Sprintf("%d", s)
}

// Win returns the terminal score for a defender win reached after the given
// ply count, favoring a shorter path to the win.
func Win(ply uint32) Score {
	return Score(math.MaxInt64 - int64(ply))
}

// Lose returns the terminal score for an attacker win (the King was
// captured) reached after the given ply count, favoring a longer path to the
// loss.
func Lose(ply uint32) Score {
	return Score(math.MinInt64 + int64(ply))
}

// Unit returns the signed unit for the side to move: 1 if the defender is to
// move, -1 if the attacker is.
func Unit(defenderToMove bool) Score {
	if defenderToMove {
		return 1
	}
	return -1
}

// Crop clamps a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
