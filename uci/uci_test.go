package uci

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cdean-eng/knightfall/engine"
	"github.com/stretchr/testify/require"
)

func TestHandshakeAndIsReady(t *testing.T) {
	in := strings.NewReader("uci\nisready\nquit\n")
	var out bytes.Buffer
	eng := engine.New(context.Background(), "Knightfall Test", "tester")
	srv := NewServer(eng, in, &out)

	srv.Run(context.Background())

	got := out.String()
	require.Contains(t, got, "id name Knightfall Test")
	require.Contains(t, got, "uciok")
	require.Contains(t, got, "readyok")
}

func TestPositionMovesThenGoReturnsBestMove(t *testing.T) {
	in := strings.NewReader("position startpos moves e2e4 e7e5\ngo depth 2\nquit\n")
	var out bytes.Buffer
	eng := engine.New(context.Background(), "Knightfall Test", "tester")
	srv := NewServer(eng, in, &out)

	srv.Run(context.Background())

	require.True(t, strings.HasPrefix(eng.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR"))
	require.Contains(t, out.String(), "bestmove ")
}

func TestStopInterruptsGo(t *testing.T) {
	// A separate goroutine sends "go" then "stop" shortly after so Run
	// doesn't block forever on an effectively-unbounded search.
	pr, pw := io.Pipe()
	defer pr.Close()

	var out bytes.Buffer
	eng := engine.New(context.Background(), "Knightfall Test", "tester")
	srv := NewServer(eng, pr, &out)

	done := make(chan struct{})
	go func() {
		srv.Run(context.Background())
		close(done)
	}()

	pw.Write([]byte("go movetime 60000\n"))
	time.Sleep(20 * time.Millisecond)
	pw.Write([]byte("stop\n"))
	pw.Write([]byte("quit\n"))
	pw.Close()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after stop/quit")
	}
	require.Contains(t, out.String(), "bestmove ")
}

func TestParseGoLimitsDepth(t *testing.T) {
	limits := parseGoLimits("go depth 7", true)
	require.Equal(t, 7, limits.MaxDepth)
}

func TestParseGoLimitsMovetimeTakesPriorityOverClock(t *testing.T) {
	limits := parseGoLimits("go wtime 60000 btime 60000 movetime 500", true)
	require.Equal(t, 500*time.Millisecond, limits.MoveTime)
}

func TestParseGoLimitsPicksCorrectClockSide(t *testing.T) {
	white := parseGoLimits("go wtime 30000 btime 5000 winc 0 binc 0", true)
	black := parseGoLimits("go wtime 30000 btime 5000 winc 0 binc 0", false)
	require.Greater(t, white.MoveTime, black.MoveTime, "white should get a larger time budget given wtime > btime")
}
