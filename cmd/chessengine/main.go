// Command chessengine is the UCI-compatible engine binary: by default it
// speaks UCI over stdin/stdout, with perft and divide subcommands for
// move-generator verification.
//
// Grounded on the teacher's blunder/main.go (algerbrex/blunder), which
// switches between a debug evaluation path and inter.RunUCIProtocol()
// behind a DEBUG bool; this binary instead uses github.com/spf13/cobra
// subcommands (following the example pack's erigon-style CLI layering) so
// perft/divide are reachable without recompiling with a flag flipped.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cdean-eng/knightfall/cmd/chessengine/cmd"
)

func main() {
	if err := cmd.Root().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
