// Package position implements the authoritative board state of spec.md
// section 3: the mailbox-120 board kept in lockstep with per-color
// bitboards, piece lists, material score, king squares, castling rights,
// en-passant square, move counters, and the incrementally-maintained
// Zobrist key, plus the make/unmake stack of spec.md section 4.6.
//
// Grounded on the teacher's core/board.go (algerbrex/blunder), whose
// Board type already keeps a mailbox array and a parallel set of
// bitboards in sync on every mutation; this package widens the mailbox
// from 64 to 120 squares (with off-board sentinels) per spec.md section 3,
// and replaces the teacher's bitboard-only pin-aware move generation with
// piece lists walked directly over mailbox-120 offsets, per spec.md
// section 4.5's "generate-and-test" alternative.
package position

import (
	"github.com/cdean-eng/knightfall/internal/bitboard"
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/square"
	"github.com/cdean-eng/knightfall/internal/zobrist"
)

// Castling right bits.
const (
	WhiteKingside uint8 = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Corner and king home squares, computed once at init from file/rank so the
// castling-rights bookkeeping below reads the same way the teacher's does
// (core/board.go's DoMove castling-rights block), just against Sq120.
var (
	e1, g1, c1, a1, h1, f1, d1 square.Sq120
	e8, g8, c8, a8, h8, f8, d8 square.Sq120
)

func init() {
	e1, g1, c1, a1, h1, f1, d1 = sq(4, 0), sq(6, 0), sq(2, 0), sq(0, 0), sq(7, 0), sq(5, 0), sq(3, 0)
	e8, g8, c8, a8, h8, f8, d8 = sq(4, 7), sq(6, 7), sq(2, 7), sq(0, 7), sq(7, 7), sq(5, 7), sq(3, 7)
}

func sq(file, rank int) square.Sq120 {
	return square.FromFileRank(file, rank).To120()
}

// undoEntry is the minimal inverse-delta snapshot needed to reverse a
// make-move exactly: spec.md section 3's "Undo entry" notes a pure
// inverse-delta is acceptable in place of a full derived-state snapshot
// provided every mutation is reversible, which the put/remove/move piece
// helpers below guarantee.
type undoEntry struct {
	move           move.Move
	castlingRights uint8
	epSquare       square.Sq120
	halfMoveClock  int
	zobristKey     uint64
	capturedKind   piece.Kind
	capturedSq     square.Sq120
}

// Position is the mutable board state described by spec.md section 3.
type Position struct {
	board [120]piece.Piece

	pieceBB  [2][7]bitboard.Board // indexed [color][kind], kind 0 (None) unused
	colorBB  [2]bitboard.Board
	occupied bitboard.Board

	pieceList  [2][7][]square.Sq64
	listIndex  [120]int // index of the occupant of board[sq] within its pieceList
	pieceCount [2][7]int

	materialScore [2]int
	kingSq        [2]square.Sq120

	sideToMove     piece.Color
	epSquare       square.Sq120
	castlingRights uint8
	halfMoveClock  int
	fullMoveNumber int
	ply            int
	zobristKey     uint64

	undoStack []undoEntry
}

// New returns an empty position. Call LoadFEN to populate it.
func New() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// Reset clears the position to the empty board with White to move, no
// castling rights, and no en-passant square.
func (p *Position) Reset() {
	for sq120 := range p.board {
		if square.Sq120(sq120).IsOnBoard() {
			p.board[sq120] = piece.Empty
		} else {
			p.board[sq120] = piece.Off
		}
	}
	p.pieceBB = [2][7]bitboard.Board{}
	p.colorBB = [2]bitboard.Board{}
	p.occupied = 0
	for c := 0; c < 2; c++ {
		for k := 0; k < 7; k++ {
			p.pieceList[c][k] = p.pieceList[c][k][:0]
			p.pieceCount[c][k] = 0
		}
	}
	p.materialScore = [2]int{}
	p.kingSq = [2]square.Sq120{square.NoSquare120, square.NoSquare120}
	p.sideToMove = piece.White
	p.epSquare = square.NoSquare120
	p.castlingRights = 0
	p.halfMoveClock = 0
	p.fullMoveNumber = 1
	p.ply = 0
	p.zobristKey = 0
	p.undoStack = p.undoStack[:0]
}

// --- read accessors ---

func (p *Position) PieceAt(sq120 square.Sq120) piece.Piece { return p.board[sq120] }
func (p *Position) SideToMove() piece.Color                { return p.sideToMove }
func (p *Position) EPSquare() square.Sq120                 { return p.epSquare }
func (p *Position) CastlingRights() uint8                  { return p.castlingRights }
func (p *Position) HalfMoveClock() int                     { return p.halfMoveClock }
func (p *Position) FullMoveNumber() int                    { return p.fullMoveNumber }
func (p *Position) Ply() int                               { return p.ply }
func (p *Position) ZobristKey() uint64                      { return p.zobristKey }
func (p *Position) KingSquare(c piece.Color) square.Sq120   { return p.kingSq[c] }
func (p *Position) MaterialScore(c piece.Color) int         { return p.materialScore[c] }
func (p *Position) PieceCount(c piece.Color, k piece.Kind) int { return p.pieceCount[c][k] }
func (p *Position) Occupied() bitboard.Board                { return p.occupied }
func (p *Position) ColorBB(c piece.Color) bitboard.Board    { return p.colorBB[c] }
func (p *Position) PieceBB(c piece.Color, k piece.Kind) bitboard.Board { return p.pieceBB[c][k] }

// PieceList returns the squares occupied by (c, k), for fast iteration
// without scanning the board (spec.md section 3's piece_lists attribute).
// The returned slice aliases internal storage and must not be retained
// across a mutating call.
func (p *Position) PieceList(c piece.Color, k piece.Kind) []square.Sq64 {
	return p.pieceList[c][k]
}

// TotalPieceCount returns the number of non-empty squares, used for the
// endgame/material-draw heuristics in search and eval.
func (p *Position) TotalPieceCount() int {
	return p.occupied.PopCount()
}

// --- mutation primitives; each keeps every derived cache and the Zobrist
// key's piece-square contribution in lockstep, per spec.md invariant 1. ---

func (p *Position) putPiece(pc piece.Piece, sq120 square.Sq120) {
	sq64 := sq120.To64()
	c, k := pc.Color(), pc.Kind()
	p.board[sq120] = pc
	p.pieceBB[c][k].Set(int(sq64))
	p.colorBB[c].Set(int(sq64))
	p.occupied.Set(int(sq64))
	p.pieceList[c][k] = append(p.pieceList[c][k], sq64)
	p.pieceCount[c][k]++
	p.listIndex[sq120] = len(p.pieceList[c][k]) - 1
	if k == piece.King {
		p.kingSq[c] = sq120
	} else {
		p.materialScore[c] += piece.Value[k]
	}
	p.zobristKey ^= zobrist.PieceSquare[c][k-1][sq64]
}

func (p *Position) removePiece(sq120 square.Sq120) piece.Piece {
	pc := p.board[sq120]
	sq64 := sq120.To64()
	c, k := pc.Color(), pc.Kind()

	p.board[sq120] = piece.Empty
	p.pieceBB[c][k].Clear(int(sq64))
	p.colorBB[c].Clear(int(sq64))
	p.occupied.Clear(int(sq64))

	list := p.pieceList[c][k]
	idx := p.listIndex[sq120]
	last := len(list) - 1
	movedSq := list[last]
	list[idx] = movedSq
	p.listIndex[movedSq.To120()] = idx
	p.pieceList[c][k] = list[:last]
	p.pieceCount[c][k]--

	if k != piece.King {
		p.materialScore[c] -= piece.Value[k]
	}
	p.zobristKey ^= zobrist.PieceSquare[c][k-1][sq64]
	return pc
}

// movePiece relocates the occupant of from to to (to must be empty); it is
// implemented as remove-then-put so every derived cache, including the
// Zobrist key's two piece-square XORs, stays correct with no special cases.
func (p *Position) movePiece(from, to square.Sq120) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}
