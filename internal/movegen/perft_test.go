package movegen

import (
	"testing"

	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/cdean-eng/knightfall/internal/square"
	"github.com/stretchr/testify/require"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerftStartingPosition(t *testing.T) {
	want := []uint64{20, 400, 8902, 197281}
	for depth, n := range want {
		p, err := position.LoadFEN(position.StartFEN)
		require.NoError(t, err)
		require.Equal(t, n, Perft(p, depth+1), "Perft(start, %d)", depth+1)
	}
}

func TestPerftKiwipete(t *testing.T) {
	want := []uint64{48, 2039, 97862}
	for depth, n := range want {
		p, err := position.LoadFEN(kiwipeteFEN)
		require.NoError(t, err)
		require.Equal(t, n, Perft(p, depth+1), "Perft(kiwipete, %d)", depth+1)
	}
}

func TestCastleThroughCheckIsIllegal(t *testing.T) {
	// Black rook on f8 covers f1, the square the king crosses on its way to
	// g1, so White may not castle kingside even though g1 itself is safe.
	p, err := position.LoadFEN("5r1k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	g1, err := square.FromCoordinate("g1")
	require.NoError(t, err)

	var list move.List
	GenerateLegal(p, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i).Move
		if m.IsCastle() && m.To() == g1.To120() {
			t.Fatalf("castle through check was generated as legal: %v", m)
		}
	}
}
