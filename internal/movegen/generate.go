// Package movegen implements pseudo-legal and legal move generation, move
// ordering, and perft, per spec.md sections 4.5 and 4.9.
//
// Grounded on the teacher's core/movegen.go (algerbrex/blunder), whose
// GenLegalMoves dispatches over per-piece generators and whose perft/
// dividePerft pair verifies move-count correctness. This package replaces
// the teacher's bitboard sliding-attack tables and pin-aware pre-filter
// with mailbox-120 directional walks and the "generate, make, test for own
// king in check, unmake" legality strategy of spec.md section 4.5's second
// alternative — simpler to reason about move by move, at the cost of
// generating some moves that are discarded as illegal.
package movegen

import (
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/cdean-eng/knightfall/internal/square"
)

var queenDeltas = func() []square.Sq120 {
	d := make([]square.Sq120, 0, 8)
	d = append(d, square.BishopDeltas[:]...)
	d = append(d, square.RookDeltas[:]...)
	return d
}()

// GeneratePseudoLegal appends every pseudo-legal move for the side to move
// in p to list, which is reset first. Pseudo-legal moves may leave the
// mover's own king in check; use GenerateLegal or test each with p.MakeMove.
func GeneratePseudoLegal(p *position.Position, list *move.List) {
	list.Reset()
	us := p.SideToMove()
	genPawnMoves(p, us, list)
	genKnightMoves(p, us, list)
	genSliderMoves(p, us, piece.Bishop, square.BishopDeltas[:], list)
	genSliderMoves(p, us, piece.Rook, square.RookDeltas[:], list)
	genSliderMoves(p, us, piece.Queen, queenDeltas, list)
	genKingMoves(p, us, list)
	genCastleMoves(p, us, list)
}

// GeneratePseudoLegalCaptures appends every pseudo-legal capture and
// promotion, the subset quiescence search explores (spec.md section 4.8).
func GeneratePseudoLegalCaptures(p *position.Position, list *move.List) {
	var all move.List
	GeneratePseudoLegal(p, &all)
	list.Reset()
	for i := 0; i < all.Len(); i++ {
		m := all.At(i).Move
		if m.IsCapture() || m.IsPromotion() {
			list.Add(m, 0)
		}
	}
}

func genKnightMoves(p *position.Position, us piece.Color, list *move.List) {
	them := us.Other()
	for _, sq64 := range p.PieceList(us, piece.Knight) {
		from := sq64.To120()
		for _, d := range square.KnightDeltas {
			to := from + d
			occ := p.PieceAt(to)
			if occ == piece.Off {
				continue
			}
			if occ.IsEmpty() {
				list.Add(move.New(from, to, piece.None, piece.None, 0), 0)
			} else if occ.Color() == them {
				list.Add(move.New(from, to, occ.Kind(), piece.None, move.FlagCapture), 0)
			}
		}
	}
}

func genKingMoves(p *position.Position, us piece.Color, list *move.List) {
	them := us.Other()
	from := p.KingSquare(us)
	for _, d := range square.KingDeltas {
		to := from + d
		occ := p.PieceAt(to)
		if occ == piece.Off {
			continue
		}
		if occ.IsEmpty() {
			list.Add(move.New(from, to, piece.None, piece.None, 0), 0)
		} else if occ.Color() == them {
			list.Add(move.New(from, to, occ.Kind(), piece.None, move.FlagCapture), 0)
		}
	}
}

func genSliderMoves(p *position.Position, us piece.Color, kind piece.Kind, deltas []square.Sq120, list *move.List) {
	them := us.Other()
	for _, sq64 := range p.PieceList(us, kind) {
		from := sq64.To120()
		for _, d := range deltas {
			to := from + d
			for {
				occ := p.PieceAt(to)
				if occ == piece.Off {
					break
				}
				if occ.IsEmpty() {
					list.Add(move.New(from, to, piece.None, piece.None, 0), 0)
					to += d
					continue
				}
				if occ.Color() == them {
					list.Add(move.New(from, to, occ.Kind(), piece.None, move.FlagCapture), 0)
				}
				break
			}
		}
	}
}
