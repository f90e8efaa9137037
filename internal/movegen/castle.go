package movegen

import (
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/cdean-eng/knightfall/internal/square"
)

var e1, f1, g1, d1, c1, b1 square.Sq120
var e8, f8, g8, d8, c8, b8 square.Sq120

func init() {
	sq := func(file, rank int) square.Sq120 { return square.FromFileRank(file, rank).To120() }
	e1, f1, g1, d1, c1, b1 = sq(4, 0), sq(5, 0), sq(6, 0), sq(3, 0), sq(2, 0), sq(1, 0)
	e8, f8, g8, d8, c8, b8 = sq(4, 7), sq(5, 7), sq(6, 7), sq(3, 7), sq(2, 7), sq(1, 7)
}

// genCastleMoves appends the castle moves still available given castling
// rights, an empty path between king and rook, and no attacked square along
// the king's path (including its start square), per spec.md section 4.5's
// castling edge case.
func genCastleMoves(p *position.Position, us piece.Color, list *move.List) {
	them := us.Other()
	rights := p.CastlingRights()

	if us == piece.White {
		if rights&position.WhiteKingside != 0 &&
			p.PieceAt(f1).IsEmpty() && p.PieceAt(g1).IsEmpty() &&
			!p.IsSquareAttacked(e1, them) && !p.IsSquareAttacked(f1, them) && !p.IsSquareAttacked(g1, them) {
			list.Add(move.New(e1, g1, piece.None, piece.None, move.FlagCastle), 0)
		}
		if rights&position.WhiteQueenside != 0 &&
			p.PieceAt(d1).IsEmpty() && p.PieceAt(c1).IsEmpty() && p.PieceAt(b1).IsEmpty() &&
			!p.IsSquareAttacked(e1, them) && !p.IsSquareAttacked(d1, them) && !p.IsSquareAttacked(c1, them) {
			list.Add(move.New(e1, c1, piece.None, piece.None, move.FlagCastle), 0)
		}
		return
	}

	if rights&position.BlackKingside != 0 &&
		p.PieceAt(f8).IsEmpty() && p.PieceAt(g8).IsEmpty() &&
		!p.IsSquareAttacked(e8, them) && !p.IsSquareAttacked(f8, them) && !p.IsSquareAttacked(g8, them) {
		list.Add(move.New(e8, g8, piece.None, piece.None, move.FlagCastle), 0)
	}
	if rights&position.BlackQueenside != 0 &&
		p.PieceAt(d8).IsEmpty() && p.PieceAt(c8).IsEmpty() && p.PieceAt(b8).IsEmpty() &&
		!p.IsSquareAttacked(e8, them) && !p.IsSquareAttacked(d8, them) && !p.IsSquareAttacked(c8, them) {
		list.Add(move.New(e8, c8, piece.None, piece.None, move.FlagCastle), 0)
	}
}
