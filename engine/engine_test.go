package engine

import (
	"context"
	"testing"

	"github.com/cdean-eng/knightfall/internal/config"
	"github.com/cdean-eng/knightfall/internal/search"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtStartingPosition(t *testing.T) {
	e := New(context.Background(), "test-engine", "tester")
	require.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", e.FEN())
	require.True(t, e.WhiteToMove())
}

func TestPushAppliesLegalMove(t *testing.T) {
	e := New(context.Background(), "test-engine", "tester")
	require.NoError(t, e.Push(context.Background(), "e2e4"))
	require.False(t, e.WhiteToMove())
}

func TestPushRejectsIllegalMove(t *testing.T) {
	e := New(context.Background(), "test-engine", "tester")
	require.Error(t, e.Push(context.Background(), "e2e5"))
}

func TestResetReplacesPosition(t *testing.T) {
	e := New(context.Background(), "test-engine", "tester")
	const fen = "8/8/8/8/8/8/8/K6k w - - 0 1"
	require.NoError(t, e.Reset(context.Background(), fen))
	require.Equal(t, fen, e.FEN())
}

func TestSearchReturnsAMove(t *testing.T) {
	e := New(context.Background(), "test-engine", "tester", WithDefaultDepth(1))
	result := e.Search(context.Background(), search.Limits{MaxDepth: 1})
	require.NotEmpty(t, result.BestMove.String())
}

func TestWithTuningAppliesEveryConfigField(t *testing.T) {
	cfg := config.Search{
		MaxDepth:          12,
		QuiescenceMaxPly:  4,
		TranspositionMB:   8,
		MoveOverheadMS:    50,
		NodeCheckInterval: 512,
	}
	e := New(context.Background(), "test-engine", "tester", WithTuning(cfg))
	require.Equal(t, 12, e.opts.DefaultDepth)
	require.Equal(t, 4, e.opts.QuiescenceMaxPly)
	require.Equal(t, 8, e.opts.HashMB)
	require.Equal(t, 50, e.opts.MoveOverheadMS)
	require.Equal(t, 512, e.opts.NodeCheckInterval)
}

func TestWithHashMBOverridesTuningWhenAppliedAfter(t *testing.T) {
	cfg := config.Search{TranspositionMB: 8}
	e := New(context.Background(), "test-engine", "tester", WithTuning(cfg), WithHashMB(128))
	require.Equal(t, 128, e.opts.HashMB, "a later option should override an earlier one, matching the CLI's --hash-overrides-config behavior")
}

func TestKeyHistoryGrowsAcrossPushes(t *testing.T) {
	e := New(context.Background(), "test-engine", "tester")
	require.Len(t, e.keyHistory, 1, "keyHistory should seed with the starting position's key")
	require.NoError(t, e.Push(context.Background(), "e2e4"))
	require.Len(t, e.keyHistory, 2, "keyHistory should grow by one per applied move")
	require.NotEqual(t, e.keyHistory[0], e.keyHistory[1])
}
