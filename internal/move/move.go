// Package move implements the compact move encoding of spec.md section 4.4:
// from-square and to-square as mailbox-120 indices (7 bits each, so the
// full 0..119 range is addressable even though only interior squares are
// ever encoded), captured/promoted piece kind (3 bits each), and flag bits.
//
// Grounded on the teacher's core/movegen.go 16-bit MakeMove/GetMoveInfo
// pair (algerbrex/blunder), widened to a 32-bit word to carry mailbox-120
// squares and both capture and promotion kinds simultaneously (the teacher
// instead used one of eleven mutually-exclusive "move type" constants).
package move

import (
	"fmt"

	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/square"
)

// Move is a single applied-move encoding.
type Move uint32

const (
	fromShift     = 0
	toShift       = 7
	capturedShift = 14
	promotedShift = 17
	flagShift     = 20

	squareMask = 0x7F
	kindMask   = 0x7
)

// Flag bits, per spec.md section 4.4.
const (
	FlagCapture uint32 = 1 << iota
	FlagCastle
	FlagEnPassant
	FlagDoublePush
)

// Null is the zero move, never returned as a real search result.
const Null Move = 0

// New encodes a move. captured/promoted should be piece.None when not
// applicable.
func New(from, to square.Sq120, captured, promoted piece.Kind, flags uint32) Move {
	return Move(
		uint32(from)&squareMask<<fromShift |
			uint32(to)&squareMask<<toShift |
			uint32(captured)&kindMask<<capturedShift |
			uint32(promoted)&kindMask<<promotedShift |
			flags<<flagShift,
	)
}

func (m Move) From() square.Sq120     { return square.Sq120((uint32(m) >> fromShift) & squareMask) }
func (m Move) To() square.Sq120       { return square.Sq120((uint32(m) >> toShift) & squareMask) }
func (m Move) Captured() piece.Kind   { return piece.Kind((uint32(m) >> capturedShift) & kindMask) }
func (m Move) Promoted() piece.Kind   { return piece.Kind((uint32(m) >> promotedShift) & kindMask) }
func (m Move) flags() uint32          { return uint32(m) >> flagShift }
func (m Move) IsCapture() bool        { return m.flags()&FlagCapture != 0 }
func (m Move) IsCastle() bool         { return m.flags()&FlagCastle != 0 }
func (m Move) IsEnPassant() bool      { return m.flags()&FlagEnPassant != 0 }
func (m Move) IsDoublePawnPush() bool { return m.flags()&FlagDoublePush != 0 }
func (m Move) IsPromotion() bool      { return m.Promoted() != piece.None }

// String renders a move in long algebraic notation: four or five lowercase
// ASCII characters, e.g. "e2e4", "e7e8q" (spec.md section 6).
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if l := piece.PromotionLetter(m.Promoted()); l != 0 {
		s += string(l)
	}
	return s
}

// ParseEndpoints splits the endpoint and optional promotion-suffix portion
// of a UCI long-algebraic move string, e.g. "e7e8q". The engine package
// uses this to resolve a full Move against live board state, by matching
// the endpoints against the legal moves of the current position (which
// know the moving piece, capture, en-passant and castle status).
func ParseEndpoints(s string) (from, to square.Sq64, promoted piece.Kind, err error) {
	if len(s) != 4 && len(s) != 5 {
		return square.NoSquare64, square.NoSquare64, piece.None, fmt.Errorf("move: malformed uci move %q", s)
	}
	from, err = square.FromCoordinate(s[0:2])
	if err != nil {
		return square.NoSquare64, square.NoSquare64, piece.None, fmt.Errorf("move: %w", err)
	}
	to, err = square.FromCoordinate(s[2:4])
	if err != nil {
		return square.NoSquare64, square.NoSquare64, piece.None, fmt.Errorf("move: %w", err)
	}
	if len(s) == 5 {
		promoted = piece.PromotionKind(s[4])
		if promoted == piece.None {
			return square.NoSquare64, square.NoSquare64, piece.None, fmt.Errorf("move: invalid promotion letter in %q", s)
		}
	}
	return from, to, promoted, nil
}

// Scored pairs a move with its move-ordering score (spec.md section 4.5).
type Scored struct {
	Move  Move
	Score int32
}

// List is a fixed-capacity, allocation-free move buffer: spec.md section 9
// calls for a flat array of up to ~256 moves per ply with no per-node heap
// allocation in the generator's inner loop.
type List struct {
	moves [256]Scored
	n     int
}

func (l *List) Add(m Move, score int32) {
	l.moves[l.n] = Scored{Move: m, Score: score}
	l.n++
}

func (l *List) Len() int { return l.n }

func (l *List) At(i int) Scored { return l.moves[i] }

// SetScore overwrites the move-ordering score of the i'th entry in place,
// used by movegen's scoring pass after the list has already been populated.
func (l *List) SetScore(i int, score int32) { l.moves[i].Score = score }

func (l *List) Reset() { l.n = 0 }

// Slice returns the populated prefix of the underlying array. The returned
// slice aliases List's storage and is invalidated by further mutation.
func (l *List) Slice() []Scored { return l.moves[:l.n] }

// SortDescending orders moves by descending score using a stable
// insertion sort, matching the teacher's sortMoves (core/search.go):
// with at most a few hundred moves per ply, insertion sort's simplicity
// outweighs an O(n log n) sort's constant-factor advantage here, and it is
// trivially stable.
func (l *List) SortDescending() {
	s := l.moves[:l.n]
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1].Score < s[j].Score; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
