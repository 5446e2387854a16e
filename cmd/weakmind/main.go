// weakmind is a Tablut match client: it connects to a referee over TCP and
// plays a single game using the killer-B search.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/seekerror/logw"
	"github.com/zeegomo/weakmind/pkg/engine"
	"github.com/zeegomo/weakmind/pkg/engine/referee"
)

func usage() {
	fmt.Fprint(os.Stderr, `usage: weakmind player_name role timeout_seconds server_addr [engine_name]

  player_name     name announced to the referee at connect time
  role            white (defender) or black (attacker), case-insensitive
  timeout_seconds per-move budget in seconds; reduced by 1s before search
  server_addr     referee address, host:port
  engine_name     optional; only killer-B ships, so every value runs
                  killer-B, and one not containing "killer" logs a warning
`)
}

func main() {
	ctx := context.Background()
	args := os.Args[1:]

	if len(args) < 4 || len(args) > 5 {
		usage()
		os.Exit(2)
	}

	name := args[0]
	isDefender, err := parseRole(args[1])
	if err != nil {
		logw.Exitf(ctx, "Invalid role %q: %v", args[1], err)
	}

	secs, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil || secs == 0 {
		logw.Exitf(ctx, "Invalid timeout_seconds %q", args[2])
	}
	timeout := time.Duration(secs-1) * time.Second

	addr := args[3]

	if len(args) == 5 && !strings.Contains(strings.ToLower(args[4]), "killer") {
		logw.Warningf(ctx, "Engine %q requested but only killer-B ships; running killer-B", args[4])
	}

	// The mirror always starts defender-first: Tablut's rules have White move
	// first regardless of which side this client plays. Only DefenderFirst,
	// which decides who this client sends its move for first, depends on role.
	e := engine.New(ctx, "weakmind", true)
	c := &referee.Client{
		Name:          name,
		DefenderFirst: isDefender,
		Timeout:       timeout,
		Engine:        e,
	}

	outcome, err := c.Play(ctx, addr)
	if err != nil {
		logw.Exitf(ctx, "Match against %v failed: %v", addr, err)
	}
	logw.Infof(ctx, "Match outcome: %v", outcome)
}

func parseRole(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "white":
		return true, nil
	case "black":
		return false, nil
	default:
		return false, fmt.Errorf("expected 'white' or 'black'")
	}
}
