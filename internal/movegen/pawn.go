package movegen

import (
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/cdean-eng/knightfall/internal/square"
)

var (
	pawnForward      = [2]square.Sq120{piece.White: square.North, piece.Black: square.South}
	pawnCaptureDelta = [2][2]square.Sq120{
		piece.White: {square.NorthEast, square.NorthWest},
		piece.Black: {square.SouthEast, square.SouthWest},
	}
	pawnStartRank      = [2]int{piece.White: 1, piece.Black: 6}
	pawnPromotionRank  = [2]int{piece.White: 7, piece.Black: 0}
	promotionKinds     = [4]piece.Kind{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}
)

func genPawnMoves(p *position.Position, us piece.Color, list *move.List) {
	them := us.Other()
	forward := pawnForward[us]

	for _, sq64 := range p.PieceList(us, piece.Pawn) {
		from := sq64.To120()

		oneStep := from + forward
		if p.PieceAt(oneStep).IsEmpty() {
			addPawnAdvance(list, from, oneStep, us)

			if sq64.Rank() == pawnStartRank[us] {
				twoStep := oneStep + forward
				if p.PieceAt(twoStep).IsEmpty() {
					list.Add(move.New(from, twoStep, piece.None, piece.None, move.FlagDoublePush), 0)
				}
			}
		}

		for _, d := range pawnCaptureDelta[us] {
			to := from + d
			occ := p.PieceAt(to)
			if occ == piece.Off {
				continue
			}
			if to == p.EPSquare() {
				list.Add(move.New(from, to, piece.Pawn, piece.None, move.FlagCapture|move.FlagEnPassant), 0)
				continue
			}
			if !occ.IsEmpty() && occ.Color() == them {
				addPawnCapture(list, from, to, occ.Kind(), us)
			}
		}
	}
}

func addPawnAdvance(list *move.List, from, to square.Sq120, us piece.Color) {
	if to.To64().Rank() == pawnPromotionRank[us] {
		for _, k := range promotionKinds {
			list.Add(move.New(from, to, piece.None, k, 0), 0)
		}
		return
	}
	list.Add(move.New(from, to, piece.None, piece.None, 0), 0)
}

func addPawnCapture(list *move.List, from, to square.Sq120, captured piece.Kind, us piece.Color) {
	if to.To64().Rank() == pawnPromotionRank[us] {
		for _, k := range promotionKinds {
			list.Add(move.New(from, to, captured, k, move.FlagCapture), 0)
		}
		return
	}
	list.Add(move.New(from, to, captured, piece.None, move.FlagCapture), 0)
}
