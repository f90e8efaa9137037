// Package eval scores a position from the side-to-move's perspective:
// positive means the side to move is better. Search treats the evaluator
// as a pluggable collaborator (spec.md section 4.7 calls it out as an
// external dependency of negamax, not part of the search algorithm
// itself), so Evaluator is an interface and Default is only one
// implementation of it.
//
// Grounded on the teacher's core/evaluate.go (algerbrex/blunder): the same
// three terms (material, piece-square tables, king safety), translated
// from bitboard population counts to the incrementally-maintained
// material score and piece lists on position.Position.
package eval

import (
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/cdean-eng/knightfall/internal/square"
)

// Evaluator scores a position. Implementations must be side-effect-free:
// search may call Evaluate many millions of times per move.
type Evaluator interface {
	Evaluate(p *position.Position) int
}

// Default is the engine's built-in evaluator: material plus piece-square
// tables plus a king-safety term, matching the teacher's evaluateSide.
type Default struct{}

// endgameMaterialThreshold is the combined non-pawn, non-king material
// (in centipawns, both sides) below which Default switches to the
// endgame king piece-square table, mirroring the teacher's IsEndgame cutoff.
var endgameMaterialThreshold = 2*piece.Value[piece.Rook] + piece.Value[piece.Queen]

func (Default) Evaluate(p *position.Position) int {
	white := evaluateSide(p, piece.White, piece.Black)
	black := evaluateSide(p, piece.Black, piece.White)
	if p.SideToMove() == piece.White {
		return white - black
	}
	return black - white
}

func evaluateSide(p *position.Position, us, them piece.Color) int {
	score := p.MaterialScore(us)
	score += evaluatePieceSquares(p, us)
	score += evaluateKingSafety(p, us, them)
	return score
}

func isEndgame(p *position.Position) bool {
	nonPawnMaterial := 0
	for _, k := range []piece.Kind{piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		nonPawnMaterial += p.PieceCount(piece.White, k) * piece.Value[k]
		nonPawnMaterial += p.PieceCount(piece.Black, k) * piece.Value[k]
	}
	return nonPawnMaterial < endgameMaterialThreshold
}

func evaluatePieceSquares(p *position.Position, us piece.Color) int {
	score := 0
	for _, k := range []piece.Kind{piece.Pawn, piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		for _, sq64 := range p.PieceList(us, k) {
			score += pstValue(k, sq64, us, false)
		}
	}
	kingSq := p.KingSquare(us).To64()
	score += pstValue(piece.King, kingSq, us, isEndgame(p))
	return score
}

// pstValue looks up a piece-square table entry. The tables are laid out
// rank 8 first, so White's square is mirrored vertically to reach its row
// and Black's square indexes the table directly; both colors thus read the
// same table from their own side of the board, as the teacher's
// evaluatePosition does with its delta/perspective trick.
func pstValue(k piece.Kind, sq64 square.Sq64, us piece.Color, endgame bool) int {
	idx := int(sq64)
	if us == piece.White {
		file := sq64.File()
		rank := sq64.Rank()
		idx = (7-rank)*8 + file
	}
	table := pieceSquareTables[k]
	if k == piece.King && endgame {
		table = kingEndgameTable
	}
	return table[idx]
}

func evaluateKingSafety(p *position.Position, us, them piece.Color) int {
	kingSq := p.KingSquare(us)
	score := 0
	for _, d := range kingSafetyDeltas {
		sq := kingSq + d
		occ := p.PieceAt(sq)
		if occ == piece.Off || occ.IsEmpty() {
			continue
		}
		if occ.Color() == them {
			score -= kingDangerValue[occ.Kind()]
		}
	}
	return score
}
