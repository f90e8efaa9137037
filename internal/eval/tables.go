package eval

import (
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/square"
)

// pieceSquareTables and kingEndgameTable are laid out White's-side-up
// (rank 8 first, rank 1 last); pstValue mirrors White's squares onto this
// layout and indexes Black's directly. The pawn, knight, bishop and king
// tables are lifted from the teacher's core/evaluate.go PieceSquareTables;
// the rook and queen tables are not from the teacher.
var pieceSquareTables = [7][64]int{
	piece.Pawn: {
		25, 25, 25, 25, 25, 25, 25, 25,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-5, -5, -5, -5, -5, -5, -5, -5,
		-15, -2, 3, 15, 15, 3, -2, -15,
		-15, 2, 5, 5, 5, 5, 2, -15,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	piece.Knight: {
		-15, -15, -15, -15, -15, -15, -15, -15,
		-2, -2, -2, -2, -2, -2, -2, -2,
		-5, 0, 2, 2, 2, 2, 0, -5,
		-5, 0, 15, 25, 25, 15, 0, -5,
		-5, 0, 15, 25, 25, 15, 0, -5,
		-5, 0, 25, 25, 25, 25, 0, -5,
		-2, -2, -2, -2, -2, -2, -2, -2,
		-15, -15, -15, -15, -15, -15, -15, -15,
	},
	piece.Bishop: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		2, 5, 5, 0, 0, 5, 5, 2,
		2, 15, 5, 0, 0, 5, 15, 2,
		2, -5, -25, 0, 0, -25, -5, 2,
	},
	piece.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	piece.Queen: {
		-10, -5, -5, -2, -2, -5, -5, -10,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-2, 0, 5, 5, 5, 5, 0, -2,
		0, 0, 5, 5, 5, 5, 0, -2,
		-5, 5, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 0, 0, 0, 0, -5,
		-10, -5, -5, -2, -2, -5, -5, -10,
	},
	piece.King: {
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		25, 25, -10, -50, -50, -10, 25, 25,
		75, 50, 0, 0, 0, 0, 50, 75,
	},
}

var kingEndgameTable = [64]int{
	-10, -10, -10, -10, -10, -10, -10, -10,
	-10, -5, -5, -5, -5, -5, -5, -10,
	-10, 2, 5, 5, 5, 5, 2, -10,
	-10, 2, 5, 25, 25, 5, 2, -10,
	-10, 2, 5, 25, 25, 5, 2, -10,
	-10, 2, 5, 5, 5, 5, 2, -10,
	-10, -5, -5, -5, -5, -5, -5, -10,
	-10, -10, -10, -10, -10, -10, -10, -10,
}

// kingSafetyDeltas are the eight mailbox-120 squares touching the king,
// reusing square.KingDeltas.
var kingSafetyDeltas = square.KingDeltas[:]

// kingDangerValue weights how threatening an enemy piece is when it sits
// adjacent to the king, matching the teacher's piecesAroundKingValues.
var kingDangerValue = [7]int{
	piece.Pawn:   8,
	piece.Knight: 12,
	piece.Bishop: 12,
	piece.Rook:   16,
	piece.Queen:  88,
	piece.King:   4,
}
