package game

// BLOCK marks the throne and its four orthogonal neighbors (the throne
// complex). An empty complex square interrupts a sliding scan for move
// generation unless the anchor piece itself stands in the complex within two
// squares along the scan, as the King does stepping off the throne. The
// exception is not limited to the King: the defenders that start next to the
// throne may also step onto or across the other complex squares.
var BLOCK [NumPos]bool

// CaptureAid marks the squares that count as a "friendly wall" for custodial
// capture of either side: the throne complex acts as a capture aid regardless
// of who is capturing. Identical to BLOCK.
var CaptureAid [NumPos]bool

// Goal marks the squares the King wins by reaching: the two squares flanking
// each corner on every edge, at distance 1 and 2 from the corner. The corners
// themselves are NOT goal squares.
var Goal [NumPos]bool

func init() {
	complex := []Pos{Throne, Throne - 1, Throne + 1, Throne - Width, Throne + Width}
	for _, p := range complex {
		BLOCK[p] = true
		CaptureAid[p] = true
	}

	for _, n := range []int{1, 2, 6, 7} {
		Goal[Coord(n, 0)] = true
		Goal[Coord(n, 8)] = true
		Goal[Coord(0, n)] = true
		Goal[Coord(8, n)] = true
	}
}

// IsBlock returns true iff the square is part of the throne complex.
func IsBlock(p Pos) bool {
	return BLOCK[p]
}

// IsCaptureAid returns true iff the square counts as a capture-aid wall.
func IsCaptureAid(p Pos) bool {
	return CaptureAid[p]
}

// IsGoal returns true iff the square is a King escape square.
func IsGoal(p Pos) bool {
	return Goal[p]
}
