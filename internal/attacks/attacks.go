// Package attacks answers "is this square attacked by this color" without
// allocating or mutating anything, per spec.md section 4.3. It is the
// legality oracle make-move and check detection both call: a king is in
// check exactly when its own square is attacked by the opposing color.
//
// Grounded on the teacher's squareIsAttacked/attackersOfSquare
// (algerbrex/blunder core/movegen.go), which walk outward from the target
// square along each piece's movement pattern looking for an attacking
// occupant. That teacher walks bitboards with Hyperbola Quintessence for
// sliders; this package instead walks the mailbox-120 board directly,
// per spec.md section 4.3's prescribed algorithm, stopping a ray the
// moment it steps off-board or hits any occupant.
package attacks

import (
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/square"
)

// Board is the minimal read surface attack queries need: a single
// mailbox-120 lookup. *position.Position satisfies this without either
// package importing the other.
type Board interface {
	PieceAt(sq square.Sq120) piece.Piece
}

// pawnAttackDeltas[c] gives the two mailbox-120 offsets from which a pawn
// of color c attacks a square (i.e. the reverse of the pawn's own capture
// deltas).
var pawnAttackDeltas = [2][2]square.Sq120{
	piece.White: {square.SouthEast, square.SouthWest},
	piece.Black: {square.NorthEast, square.NorthWest},
}

// IsAttacked reports whether sq is attacked by any piece of color by on b.
func IsAttacked(b Board, sq square.Sq120, by piece.Color) bool {
	if !sq.IsOnBoard() {
		return false
	}

	for _, d := range pawnAttackDeltas[by] {
		from := sq + d
		if p := b.PieceAt(from); p != piece.Off && p.Color() == by && p.Kind() == piece.Pawn {
			return true
		}
	}

	for _, d := range square.KnightDeltas {
		from := sq + d
		if p := b.PieceAt(from); p != piece.Off && p.Color() == by && p.Kind() == piece.Knight {
			return true
		}
	}

	for _, d := range square.KingDeltas {
		from := sq + d
		if p := b.PieceAt(from); p != piece.Off && p.Color() == by && p.Kind() == piece.King {
			return true
		}
	}

	for _, d := range square.BishopDeltas {
		if rayHits(b, sq, d, by, piece.Bishop, piece.Queen) {
			return true
		}
	}

	for _, d := range square.RookDeltas {
		if rayHits(b, sq, d, by, piece.Rook, piece.Queen) {
			return true
		}
	}

	return false
}

// rayHits walks from sq in direction d until it steps off-board or meets an
// occupied square, reporting whether that occupant is a piece of color by
// with kind k1 or k2.
func rayHits(b Board, sq, d square.Sq120, by piece.Color, k1, k2 piece.Kind) bool {
	cur := sq + d
	for {
		p := b.PieceAt(cur)
		if p == piece.Off {
			return false
		}
		if p.IsEmpty() {
			cur += d
			continue
		}
		if p.Color() != by {
			return false
		}
		k := p.Kind()
		return k == k1 || k == k2
	}
}
