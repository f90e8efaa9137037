package position

import (
	"testing"

	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/square"
	"github.com/stretchr/testify/require"
)

func TestLoadFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/k7/8/K6R w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}
	for _, fen := range fens {
		p, err := LoadFEN(fen)
		require.NoError(t, err, "LoadFEN(%q)", fen)
		require.Equal(t, fen, p.FEN())
	}
}

func TestLoadFENRejectsGarbage(t *testing.T) {
	for _, fen := range []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		// d3 is not a legal en-passant target when White is to move (it
		// must be on rank 6, the square a Black pawn's double-step passed
		// over).
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d3 0 3",
	} {
		_, err := LoadFEN(fen)
		require.Error(t, err, "LoadFEN(%q)", fen)
	}
}

func mustSq120(t *testing.T, coord string) square.Sq120 {
	t.Helper()
	sq64, err := square.FromCoordinate(coord)
	require.NoError(t, err)
	return sq64.To120()
}

func TestMakeUnmakeRestoresExactState(t *testing.T) {
	p, err := LoadFEN(StartFEN)
	require.NoError(t, err)
	before := p.FEN()
	beforeKey := p.ZobristKey()

	mv := move.New(mustSq120(t, "e2"), mustSq120(t, "e4"), piece.None, piece.None, move.FlagDoublePush)

	require.True(t, p.MakeMove(mv), "MakeMove(e2e4) should be legal")
	require.NotEqual(t, before, p.FEN(), "FEN should change after MakeMove")

	p.UnmakeMove()
	require.Equal(t, before, p.FEN(), "FEN after unmake should match the pre-move position exactly")
	require.Equal(t, beforeKey, p.ZobristKey(), "ZobristKey after unmake should match the pre-move key exactly")
}

func TestMakeMoveRejectsSelfCheck(t *testing.T) {
	// The white rook on e2 is pinned to the king on e1 by the black rook on
	// e8; moving it off the e-file would expose the king, so the
	// generate-and-test legality check must reject it and leave the
	// position untouched.
	p, err := LoadFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	before := p.FEN()
	mv := move.New(mustSq120(t, "e2"), mustSq120(t, "a2"), piece.None, piece.None, 0)
	require.False(t, p.MakeMove(mv), "moving the pinned rook off the e-file should be rejected")
	require.Equal(t, before, p.FEN(), "position should be untouched after a rejected move")
}

func TestCloneIsIndependent(t *testing.T) {
	p, err := LoadFEN(StartFEN)
	require.NoError(t, err)
	c := p.Clone()

	mv := move.New(mustSq120(t, "e2"), mustSq120(t, "e4"), piece.None, piece.None, move.FlagDoublePush)
	require.True(t, c.MakeMove(mv), "MakeMove on clone should be legal")

	require.Equal(t, StartFEN, p.FEN(), "mutating the clone must not affect the original")
	require.NotEqual(t, StartFEN, c.FEN(), "clone should reflect its own move")
}
