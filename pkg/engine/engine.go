// Package engine wires the game, heuristic and search into the match driver
// the referee protocol talks to.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/zeegomo/weakmind/pkg/game"
	"github.com/zeegomo/weakmind/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Engine encapsulates game-playing logic: a killer-B search over its own
// mirror position. Not safe for concurrent calls from two goroutines — the
// mutex only protects against programmer misuse of a single-threaded
// design, not a concurrent-search feature (§5: the search itself never
// yields, so there is nothing else to synchronize against).
type Engine struct {
	name string
	mu   sync.Mutex
	k    *search.KillerB
}

// New creates an engine starting from the classical Tablut opening.
// defenderFirst selects which side this engine's mirror starts believing is
// to move.
func New(ctx context.Context, name string, defenderFirst bool) *Engine {
	e := &Engine{
		name: name,
		k:    search.NewKillerB(defenderFirst),
	}
	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Position returns the mirror position's board, for diagnostics.
func (e *Engine) Position() *game.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.k.GetGame()
}

// Reset discards the mirror position and starts over from the classical
// opening.
func (e *Engine) Reset(ctx context.Context, defenderFirst bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v, defenderFirst=%v", e.name, defenderFirst)
	e.k = search.NewKillerB(defenderFirst)
}

// Move applies an opponent's (or this engine's own) move to the mirror
// position, keeping the killer-move history in lockstep.
func (e *Engine) Move(ctx context.Context, m game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.k.State() != game.Going {
		return fmt.Errorf("move %v: game already over: %v", m, e.k.State())
	}

	logw.Infof(ctx, "Move %v", m)
	e.k.Mov(m)
	return nil
}

// GetMove runs the killer-B search within the time budget and returns the
// chosen move, without committing it — the caller applies it via Move once
// the referee has acknowledged the turn.
func (e *Engine) GetMove(ctx context.Context, tl time.Duration) (game.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.k.State() != game.Going {
		return game.Move{}, fmt.Errorf("get move: game already over: %v", e.k.State())
	}

	m := e.k.GetMov(ctx, tl)
	logw.Infof(ctx, "GetMove %v", m)
	return m, nil
}

// State returns the mirror position's terminal state.
func (e *Engine) State() game.State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.k.State()
}

// Turn returns true iff the defender is to move in the mirror position.
func (e *Engine) Turn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.k.Turn()
}
