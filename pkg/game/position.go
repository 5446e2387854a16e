package game

import (
	"fmt"
	"sort"
	"strings"
)

// Position represents the full Tablut board state: piece placement, side to
// move, and cached terminal flag. Mutated in place by Move/Rollback — callers
// needing to explore alternatives must undo via the returned Rollback token
// rather than cloning, since the search in pkg/search calls these millions of
// times per move and a clone-per-node budget is not tractable.
type Position struct {
	board [21]byte
	turn  uint32 // even => defender to move, odd => attacker to move
	state State
}

// startingPosition is the classical Tablut opening array: a central cross of
// defenders around the King on the throne, with a group of three attackers in
// the middle of each edge plus a fourth one square inward from its centre.
var startingPosition = [9][9]Tile{
	{Empty, Empty, Empty, Attacker, Attacker, Attacker, Empty, Empty, Empty},
	{Empty, Empty, Empty, Empty, Attacker, Empty, Empty, Empty, Empty},
	{Empty, Empty, Empty, Empty, Defender, Empty, Empty, Empty, Empty},
	{Attacker, Empty, Empty, Empty, Defender, Empty, Empty, Empty, Attacker},
	{Attacker, Attacker, Defender, Defender, King, Defender, Defender, Attacker, Attacker},
	{Attacker, Empty, Empty, Empty, Defender, Empty, Empty, Empty, Attacker},
	{Empty, Empty, Empty, Empty, Defender, Empty, Empty, Empty, Empty},
	{Empty, Empty, Empty, Empty, Attacker, Empty, Empty, Empty, Empty},
	{Empty, Empty, Empty, Attacker, Attacker, Attacker, Empty, Empty, Empty},
}

// NewPosition returns the classical Tablut starting position. defenderFirst
// selects which side moves first (the rules always have the defender move
// first, but the search and tests exercise both conventions).
func NewPosition(defenderFirst bool) *Position {
	p := &Position{state: Going}
	if !defenderFirst {
		p.turn = 1
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			p.set(Coord(x, y), startingPosition[y][x])
		}
	}
	return p
}

// Placement associates a tile with a square, for constructing synthetic test
// positions.
type Placement struct {
	Pos  Pos
	Tile Tile
}

// NewPositionFromPlacements builds a Position from an explicit piece layout,
// for unit tests exercising specific capture and terminal scenarios that the
// classical opening does not reach.
func NewPositionFromPlacements(defenderToMove bool, placements []Placement) *Position {
	p := &Position{state: Going}
	if !defenderToMove {
		p.turn = 1
	}
	for _, pl := range placements {
		p.set(pl.Pos, pl.Tile)
	}
	return p
}

// Get returns the tile at pos.
func (p *Position) Get(pos Pos) Tile {
	b := p.board[pos>>2]
	shift := (pos & 3) * 2
	return Tile((b >> shift) & 3)
}

func (p *Position) set(pos Pos, t Tile) {
	shift := (pos & 3) * 2
	p.board[pos>>2] &^= 3 << shift
	p.board[pos>>2] |= byte(t) << shift
}

// Turn returns true iff the defender is to move.
func (p *Position) Turn() bool {
	return p.turn&1 == 0
}

// State returns the cached terminal state.
func (p *Position) State() State {
	return p.state
}

// PlyCount returns the number of half-moves played so far, for terminal
// scores that favor a shorter path to a win or a longer path to a loss.
func (p *Position) PlyCount() uint32 {
	return p.turn
}

// GetMoves returns the legal moves for the side to move. Never empty: if no
// piece of the side to move can move, it returns exactly [Pass].
func (p *Position) GetMoves() []Move {
	moves := make([]Move, 0, 96)

	scan := func(coords []Pos, step int) {
		last := NoAnchor
		for _, cur := range coords {
			t := p.Get(cur)
			if t == Empty {
				if IsBlock(cur) && (last == NoAnchor || !IsBlock(last) || absDiff(cur, last) > 2*step) {
					last = NoAnchor
				} else if last != NoAnchor {
					moves = append(moves, Move{From: last, To: cur})
				}
			} else {
				if p.Turn() == t.IsDefending() {
					last = cur
				} else {
					last = NoAnchor
				}
			}
		}
	}

	for y := 0; y < 9; y++ {
		row := make([]Pos, 9)
		for x := 0; x < 9; x++ {
			row[x] = Coord(x, y)
		}
		scan(row, 1)
		scan(reversed(row), 1)
	}
	for x := 0; x < 9; x++ {
		col := make([]Pos, 9)
		for y := 0; y < 9; y++ {
			col[y] = Coord(x, y)
		}
		scan(col, 9)
		scan(reversed(col), 9)
	}

	if len(moves) == 0 {
		moves = append(moves, Pass)
	}
	return moves
}

func reversed(p []Pos) []Pos {
	r := make([]Pos, len(p))
	for i, v := range p {
		r[len(p)-1-i] = v
	}
	return r
}

func absDiff(a, b Pos) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// defenderOrder and attackerOrder rank moves by the distance (in squares)
// travelled along the moved axis, lower is better. Index 0 (a move of length
// zero) never occurs; its entry is only a placeholder.
var defenderOrder = [9]int{9, 4, 5, 3, 6, 7, 2, 1, 0}
var attackerOrder = [9]int{9, 5, 2, 4, 3, 7, 1, 6, 0}

// GetMovesSorted returns the same moves as GetMoves, heuristically ordered
// best first. Attacker moves landing next to the King come before all others.
// The killer-B search in pkg/search does not call it: it iterates GetMoves and
// takes its ordering from the killer-move history alone.
func (p *Position) GetMovesSorted() []Move {
	moves := p.GetMoves()
	priority := func(m Move) int {
		return p.movePriority(m)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return priority(moves[i]) < priority(moves[j])
	})
	return moves
}

func (p *Position) movePriority(m Move) int {
	diff := absDiff(m.From, m.To)
	dist := diff
	if diff >= 9 {
		dist = diff / 9
	}
	if p.Turn() {
		base := defenderOrder[dist]
		if p.Get(m.From) != King {
			base += 6
		}
		return base
	}
	if adjacentToKing(p, m.To) {
		return -1
	}
	return attackerOrder[dist]
}

func adjacentToKing(p *Position, to Pos) bool {
	x, _ := to.XY()
	if x < 8 && p.Get(to+1) == King {
		return true
	}
	if x > 0 && p.Get(to-1) == King {
		return true
	}
	if int(to) < 8*9 && p.Get(to+9) == King {
		return true
	}
	if to > 8 && p.Get(to-9) == King {
		return true
	}
	return false
}

// captured reports whether the hostile piece at a1 is captured, given the
// square a2 beyond it along the same line.
func (p *Position) captured(a1, a2 Pos) bool {
	if p.Turn() {
		// defender to move: look for a captured attacker
		return p.Get(a1) == Attacker && (p.Get(a2) == Defender || p.Get(a2) == King || IsCaptureAid(a2))
	}
	// attacker to move: a captured defender, or the special King rules
	if p.Get(a1) == Defender && (p.Get(a2) == Attacker || IsCaptureAid(a2)) {
		return true
	}
	if p.Get(a1) != King {
		return false
	}
	if a1 == Throne || a1 == Throne-1 || a1 == Throne+1 || a1 == Throne-9 || a1 == Throne+9 {
		return (p.Get(a1+9) == Attacker || IsCaptureAid(a1+9)) &&
			(p.Get(a1-9) == Attacker || IsCaptureAid(a1-9)) &&
			(p.Get(a1+1) == Attacker || IsCaptureAid(a1+1)) &&
			(p.Get(a1-1) == Attacker || IsCaptureAid(a1-1))
	}
	return p.Get(a2) == Attacker || IsCaptureAid(a2)
}

// Move mutates the position in place by applying m, processing captures and
// updating the terminal state.
func (p *Position) Move(m Move) {
	if m.IsPass() {
		// The side to move has no legal move and concedes: the defender
		// conceding is an attacker win (Lose), and vice versa (Win).
		if p.Turn() {
			p.state = Lose
		} else {
			p.state = Win
		}
		p.turn++
		return
	}

	piece := p.Get(m.From)
	p.set(m.From, Empty)
	p.set(m.To, piece)

	to := m.To
	if int(to)+18 < int(NumPos) && p.captured(to+9, to+18) {
		if p.Get(to+9) == King {
			p.state = Lose
		}
		p.set(to+9, Empty)
	}
	if to >= 18 && p.captured(to-9, to-18) {
		if p.Get(to-9) == King {
			p.state = Lose
		}
		p.set(to-9, Empty)
	}
	if x, _ := to.XY(); x < 7 && p.captured(to+1, to+2) {
		if p.Get(to+1) == King {
			p.state = Lose
		}
		p.set(to+1, Empty)
	}
	if x, _ := to.XY(); x >= 2 && p.captured(to-1, to-2) {
		if p.Get(to-1) == King {
			p.state = Lose
		}
		p.set(to-1, Empty)
	}

	if IsGoal(to) && p.Get(to) == King {
		p.state = Win
	}
	p.turn++
}

// Rollback is the undo token for a single Move: the move itself plus the four
// neighbor tiles of the destination square before captures were applied,
// packed two bits each in the fixed order (to+9, to-9, to+1, to-1).
type Rollback struct {
	Move      Move
	neighbors byte
}

// MoveWithRollback applies m like Move and returns a token sufficient to
// undo it via Rollback.
func (p *Position) MoveWithRollback(m Move) Rollback {
	rb := Rollback{Move: m}
	to := m.To
	if int(to)+9 < int(NumPos) {
		rb.neighbors |= byte(p.Get(to + 9))
	}
	if to >= 9 {
		rb.neighbors |= byte(p.Get(to-9)) << 2
	}
	if int(to)+1 < int(NumPos) {
		rb.neighbors |= byte(p.Get(to+1)) << 4
	}
	if to >= 1 {
		rb.neighbors |= byte(p.Get(to-1)) << 6
	}
	p.Move(m)
	return rb
}

// Rollback restores the position to exactly the state before the move
// described by rb was applied.
func (p *Position) Rollback(rb Rollback) {
	p.turn--
	p.state = Going

	m := rb.Move
	if m.IsPass() {
		return
	}

	to := m.To
	p.set(m.From, p.Get(to))
	p.set(to, Empty)
	if int(to)+9 < int(NumPos) {
		p.set(to+9, Tile(rb.neighbors&3))
	}
	if to >= 9 {
		p.set(to-9, Tile((rb.neighbors>>2)&3))
	}
	if int(to)+1 < int(NumPos) {
		p.set(to+1, Tile((rb.neighbors>>4)&3))
	}
	if to >= 1 {
		p.set(to-1, Tile((rb.neighbors>>6)&3))
	}
}

// StaticState is the static, hashable descriptor of a Position: the packed
// board plus whose turn it is.
type StaticState struct {
	board [21]byte
	turn  bool
}

// Hash returns an FNV-1a hash of the static state, suitable as a map key for
// ad hoc repetition bookkeeping (§9) or test memoization. Not used internally
// by the shipped engine, which does not enforce repetition draws.
func (s StaticState) Hash() uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211

	h := uint64(offset64)
	for _, b := range s.board {
		h ^= uint64(b)
		h *= prime64
	}
	if s.turn {
		h ^= 1
		h *= prime64
	}
	return h
}

// GetStaticState returns the static state descriptor for the current position.
func (p *Position) GetStaticState() StaticState {
	return StaticState{board: p.board, turn: p.Turn()}
}

func (p *Position) String() string {
	var sb strings.Builder
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			sb.WriteString(p.Get(Coord(x, y)).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintBoard renders a Position the way a referee board diagnostic dump does,
// labelled with turn and state, for StateDesync error reporting.
func PrintBoard(p *Position) string {
	return fmt.Sprintf("turn=%v state=%v\n%v", map[bool]string{true: "defender", false: "attacker"}[p.Turn()], p.State(), p)
}
