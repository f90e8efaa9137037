package position

import (
	"github.com/cdean-eng/knightfall/internal/attacks"
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/square"
	"github.com/cdean-eng/knightfall/internal/zobrist"
)

// MakeMove applies m and reports whether the resulting position is legal
// (the side that just moved must not leave its own king in check). On an
// illegal result the move has already been unwound, matching the
// generate-and-test legality strategy of spec.md section 4.5: callers
// generate pseudo-legal moves, call MakeMove, and simply skip any move
// that returns false.
//
// Step order follows spec.md section 4.6 exactly: capture removal before
// the mover relocates, halfmove-clock update, en-passant-square clearing
// before a new one is set, the mover's relocation (promoting in place if
// applicable), the rook hop for castling, castling-rights recomputation,
// and finally the side-to-move flip — each step folding its own
// contribution into the Zobrist key as it happens, so the key never needs
// a from-scratch recompute.
func (p *Position) MakeMove(m move.Move) bool {
	from, to := m.From(), m.To()
	mover := p.board[from]
	moverColor := mover.Color()
	moverKind := mover.Kind()

	entry := undoEntry{
		move:           m,
		castlingRights: p.castlingRights,
		epSquare:       p.epSquare,
		halfMoveClock:  p.halfMoveClock,
		zobristKey:     p.zobristKey,
		capturedKind:   piece.None,
		capturedSq:     square.NoSquare120,
	}

	if m.IsCapture() {
		capSq := to
		if m.IsEnPassant() {
			if moverColor == piece.White {
				capSq = to + square.South
			} else {
				capSq = to + square.North
			}
		}
		captured := p.removePiece(capSq)
		entry.capturedKind = captured.Kind()
		entry.capturedSq = capSq
	}

	if moverKind == piece.Pawn || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if p.epSquare != square.NoSquare120 {
		p.zobristKey ^= zobrist.EPFile[p.epSquare.To64().File()]
	}
	p.epSquare = square.NoSquare120

	p.removePiece(from)
	if m.IsPromotion() {
		p.putPiece(piece.Make(moverColor, m.Promoted()), to)
	} else {
		p.putPiece(mover, to)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(moverColor, to)
		p.movePiece(rookFrom, rookTo)
	}

	if m.IsDoublePawnPush() {
		var epSq square.Sq120
		if moverColor == piece.White {
			epSq = from + square.North
		} else {
			epSq = from + square.South
		}
		p.epSquare = epSq
		p.zobristKey ^= zobrist.EPFile[epSq.To64().File()]
	}

	p.recomputeCastlingRights()
	if p.castlingRights != entry.castlingRights {
		p.zobristKey ^= zobrist.Castling[entry.castlingRights]
		p.zobristKey ^= zobrist.Castling[p.castlingRights]
	}

	p.sideToMove = p.sideToMove.Other()
	p.zobristKey ^= zobrist.SideToMove
	if p.sideToMove == piece.White {
		p.fullMoveNumber++
	}

	p.undoStack = append(p.undoStack, entry)
	p.ply++

	if attacks.IsAttacked(p, p.kingSq[moverColor], moverColor.Other()) {
		p.UnmakeMove()
		return false
	}
	return true
}

// UnmakeMove reverses the most recent MakeMove, restoring every derived
// cache exactly: it is the mirror image of MakeMove's step order, run
// backwards.
func (p *Position) UnmakeMove() {
	last := len(p.undoStack) - 1
	entry := p.undoStack[last]
	p.undoStack = p.undoStack[:last]
	p.ply--

	m := entry.move
	from, to := m.From(), m.To()

	if p.sideToMove == piece.White {
		p.fullMoveNumber--
	}
	p.sideToMove = p.sideToMove.Other()
	moverColor := p.sideToMove

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(moverColor, to)
		p.movePiece(rookTo, rookFrom)
	}

	removed := p.removePiece(to)
	if m.IsPromotion() {
		p.putPiece(piece.Make(moverColor, piece.Pawn), from)
	} else {
		p.putPiece(removed, from)
	}

	if m.IsCapture() {
		capturedColor := moverColor.Other()
		p.putPiece(piece.Make(capturedColor, entry.capturedKind), entry.capturedSq)
	}

	p.castlingRights = entry.castlingRights
	p.epSquare = entry.epSquare
	p.halfMoveClock = entry.halfMoveClock
	p.zobristKey = entry.zobristKey
}

// MakeNull flips the side to move without moving a piece, clearing the
// en-passant square (spec.md section 4.6's null-move variant; the search
// package does not call it). UnmakeNull reverses it.
func (p *Position) MakeNull() {
	entry := undoEntry{
		move:          move.Null,
		epSquare:      p.epSquare,
		halfMoveClock: p.halfMoveClock,
		zobristKey:    p.zobristKey,
		capturedKind:  piece.None,
		capturedSq:    square.NoSquare120,
	}
	entry.castlingRights = p.castlingRights

	if p.epSquare != square.NoSquare120 {
		p.zobristKey ^= zobrist.EPFile[p.epSquare.To64().File()]
	}
	p.epSquare = square.NoSquare120
	p.halfMoveClock++

	p.sideToMove = p.sideToMove.Other()
	p.zobristKey ^= zobrist.SideToMove
	if p.sideToMove == piece.White {
		p.fullMoveNumber++
	}

	p.undoStack = append(p.undoStack, entry)
	p.ply++
}

func (p *Position) UnmakeNull() {
	last := len(p.undoStack) - 1
	entry := p.undoStack[last]
	p.undoStack = p.undoStack[:last]
	p.ply--

	if p.sideToMove == piece.White {
		p.fullMoveNumber--
	}
	p.sideToMove = p.sideToMove.Other()
	p.epSquare = entry.epSquare
	p.halfMoveClock = entry.halfMoveClock
	p.zobristKey = entry.zobristKey
	p.castlingRights = entry.castlingRights
}

// castleRookSquares returns the rook's from/to squares for the king move
// to (the castle's destination king square) by color.
func castleRookSquares(c piece.Color, kingTo square.Sq120) (from, to square.Sq120) {
	switch {
	case c == piece.White && kingTo == g1:
		return h1, f1
	case c == piece.White && kingTo == c1:
		return a1, d1
	case c == piece.Black && kingTo == g8:
		return h8, f8
	default: // c == piece.Black && kingTo == c8
		return a8, d8
	}
}

// recomputeCastlingRights clears any right whose king or corner rook is no
// longer in its home square, mirroring the teacher's DoMove castling-rights
// block (core/board.go) against mailbox-120 squares.
func (p *Position) recomputeCastlingRights() {
	cr := p.castlingRights
	if p.board[e1] != piece.Make(piece.White, piece.King) {
		cr &^= WhiteKingside | WhiteQueenside
	}
	if p.board[h1] != piece.Make(piece.White, piece.Rook) {
		cr &^= WhiteKingside
	}
	if p.board[a1] != piece.Make(piece.White, piece.Rook) {
		cr &^= WhiteQueenside
	}
	if p.board[e8] != piece.Make(piece.Black, piece.King) {
		cr &^= BlackKingside | BlackQueenside
	}
	if p.board[h8] != piece.Make(piece.Black, piece.Rook) {
		cr &^= BlackKingside
	}
	if p.board[a8] != piece.Make(piece.Black, piece.Rook) {
		cr &^= BlackQueenside
	}
	p.castlingRights = cr
}
