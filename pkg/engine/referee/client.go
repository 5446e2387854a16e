package referee

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/zeegomo/weakmind/pkg/engine"
)

// Outcome is the terminal result the referee reports at the end of a match:
// one of TurnWhiteWin, TurnBlackWin or TurnDraw.
type Outcome Turn

// Client drives a single match against a referee over a TCP connection.
// Single-threaded and synchronous, like the engine it wraps: one
// outstanding read or write against the socket at a time, no pondering on
// the opponent's time.
type Client struct {
	Name          string
	DefenderFirst bool
	Timeout       time.Duration
	Engine        *engine.Engine
}

// Play connects to the referee at addr, completes the handshake, then
// drives the match to completion. It never applies a move to the engine
// directly after computing it: both this engine's own moves and the
// opponent's are recovered uniformly by diffing the next board the referee
// sends against the mirror, one turn later — matching the source's single
// "infer, then mov" call site rather than two separate code paths.
func (c *Client) Play(ctx context.Context, addr string) (Outcome, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("connect to referee at %v: %w", addr, err)
	}
	defer conn.Close()
	logw.Infof(ctx, "Connected to referee at %v", addr)

	if err := WriteFrame(conn, c.Name); err != nil {
		return "", fmt.Errorf("send player name: %w", err)
	}

	turn := c.DefenderFirst
	numTurns := 0
	for {
		if contextx.IsCancelled(ctx) {
			return "", fmt.Errorf("turn %d: %w", numTurns, ctx.Err())
		}

		var st State
		if err := ReadFrame(conn, &st); err != nil {
			return "", fmt.Errorf("turn %d: %w", numTurns, err)
		}

		if !st.Turn.Ongoing() {
			logw.Infof(ctx, "Game ended after %d turns: %v", numTurns, st.Turn)
			return Outcome(st.Turn), nil
		}

		if numTurns > 0 {
			m, err := InferMove(c.Engine.Position(), st)
			if err != nil {
				return "", fmt.Errorf("turn %d: %w", numTurns, err)
			}
			if err := c.Engine.Move(ctx, m); err != nil {
				return "", fmt.Errorf("turn %d: %w", numTurns, err)
			}
		}

		if turn {
			logw.Infof(ctx, "Calculating next move...")
			m, err := c.Engine.GetMove(ctx, c.Timeout)
			if err != nil {
				return "", fmt.Errorf("turn %d: %w", numTurns, err)
			}
			if err := WriteFrame(conn, ActionFromMove(m, c.Engine.Turn())); err != nil {
				return "", fmt.Errorf("turn %d: send move: %w", numTurns, err)
			}
		} else {
			logw.Infof(ctx, "Waiting for the opponent's move...")
		}

		turn = !turn
		numTurns++
	}
}
