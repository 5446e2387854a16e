package game

import "fmt"

// Pos is a square index into the 9x9 board: pos = y*9+x, 0 <= pos < 81.
type Pos uint8

const (
	ZeroPos  Pos = 0
	NumPos   Pos = 81
	Width    Pos = 9
	NoAnchor Pos = 128 // sentinel: "no piece anchors the current scan"
)

// Throne is the center square (4,4), the only square the King may rest on besides open board.
const Throne Pos = 4*Width + 4

func Coord(x, y int) Pos {
	return Pos(y*int(Width) + x)
}

func (p Pos) XY() (int, int) {
	return int(p) % int(Width), int(p) / int(Width)
}

func (p Pos) String() string {
	x, y := p.XY()
	return fmt.Sprintf("%c%d", rune('a'+x), y)
}
