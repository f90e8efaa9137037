// Package zobrist holds the process-wide, immutable-after-init random
// tables used to hash a position, per spec.md section 4.2. Tables are
// initialized once from a fixed seed so identical positions across runs,
// and across separate engine instances, yield identical keys — the
// shared-resource contract of spec.md section 5.
package zobrist

import "math/rand"

// deterministicSeed is fixed so the tables (and therefore every Zobrist key
// ever computed) are reproducible across runs and across engine instances,
// per spec.md section 4.2's "Deterministic init" requirement.
const deterministicSeed = 1070372

const (
	numColors = 2
	numKinds  = 6 // Pawn..King, excluding None
)

var (
	// PieceSquare[c][k-1][sq64] is the hash contribution of piece (c,k) on
	// square sq64. Indexed by k-1 because piece.None never occupies a square.
	PieceSquare [numColors][numKinds][64]uint64

	// SideToMove is XORed in when Black is to move.
	SideToMove uint64

	// Castling holds one entry per 4-bit castling-rights mask (16 entries).
	Castling [16]uint64

	// EPFile holds one entry per file (0..7), XORed in when an en-passant
	// square is set on that file.
	EPFile [8]uint64
)

func init() {
	r := rand.New(rand.NewSource(deterministicSeed))
	for c := 0; c < numColors; c++ {
		for k := 0; k < numKinds; k++ {
			for sq := 0; sq < 64; sq++ {
				PieceSquare[c][k][sq] = r.Uint64()
			}
		}
	}
	SideToMove = r.Uint64()
	for i := range Castling {
		Castling[i] = r.Uint64()
	}
	for i := range EPFile {
		EPFile[i] = r.Uint64()
	}
}
