// Package square defines the two coordinate systems the engine keeps in
// lockstep: a mailbox-120 board (a 10x12 grid bordered by off-board
// sentinels, in the VICE tutorial-engine idiom this lineage descends from)
// and the compact 0..63 index used by bitboards and piece-square tables.
package square

import "fmt"

// Sq120 is a mailbox-120 index. The 64 real squares occupy rows 2..9 of a
// 10-wide, 12-tall grid; rows 0,1,10,11 and the two border columns are
// off-board sentinels so that directional walks can stop on any step that
// leaves the board without a bounds check.
type Sq120 int

// Sq64 is the compact 0..63 index used by bitboards and piece-square tables.
type Sq64 int

const (
	NoSquare120 Sq120 = -1
	OffBoard    Sq120 = -2
	NoSquare64  Sq64  = -1
)

// Directional deltas in mailbox-120 terms.
const (
	North Sq120 = 10
	South Sq120 = -10
	East  Sq120 = 1
	West  Sq120 = -1

	NorthEast Sq120 = North + East
	NorthWest Sq120 = North + West
	SouthEast Sq120 = South + East
	SouthWest Sq120 = South + West
)

// KnightDeltas, KingDeltas, BishopDeltas and RookDeltas are the offset
// tables movegen and attack queries walk from a given square.
var (
	KnightDeltas = [8]Sq120{-21, -19, -12, -8, 8, 12, 19, 21}
	KingDeltas   = [8]Sq120{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
	BishopDeltas = [4]Sq120{NorthEast, NorthWest, SouthEast, SouthWest}
	RookDeltas   = [4]Sq120{North, South, East, West}
)

// sq120ToSq64 and sq64ToSq120 are the fixed bidirectional mapping tables,
// computed once at package init. Every off-board mailbox-120 index maps to
// NoSquare64.
var (
	sq120ToSq64 [120]Sq64
	sq64ToSq120 [64]Sq120
)

func init() {
	for i := range sq120ToSq64 {
		sq120ToSq64[i] = NoSquare64
	}
	sq64 := Sq64(0)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq120 := Sq120(21 + rank*10 + file)
			sq120ToSq64[sq120] = sq64
			sq64ToSq120[sq64] = sq120
			sq64++
		}
	}
}

// To64 converts a mailbox-120 index to its compact index, or NoSquare64 if
// s is off-board or NoSquare120.
func (s Sq120) To64() Sq64 {
	if s < 0 || int(s) >= len(sq120ToSq64) {
		return NoSquare64
	}
	return sq120ToSq64[s]
}

// IsOnBoard reports whether s names one of the 64 real squares.
func (s Sq120) IsOnBoard() bool {
	return s.To64() != NoSquare64
}

// To120 converts a compact index to its mailbox-120 index.
func (s Sq64) To120() Sq120 {
	if s < 0 || int(s) >= len(sq64ToSq120) {
		return NoSquare120
	}
	return sq64ToSq120[s]
}

// File and Rank are 0-indexed, file 0 = a-file, rank 0 = rank 1.
func (s Sq64) File() int { return int(s) % 8 }
func (s Sq64) Rank() int { return int(s) / 8 }

func FromFileRank(file, rank int) Sq64 { return Sq64(rank*8 + file) }

// FromCoordinate parses algebraic coordinates such as "e4" into a Sq64.
func FromCoordinate(coord string) (Sq64, error) {
	if len(coord) != 2 {
		return NoSquare64, fmt.Errorf("square: malformed coordinate %q", coord)
	}
	file := int(coord[0] - 'a')
	rank := int(coord[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare64, fmt.Errorf("square: coordinate out of range %q", coord)
	}
	return FromFileRank(file, rank), nil
}

// String renders a Sq64 as algebraic coordinates, e.g. "e4".
func (s Sq64) String() string {
	if s == NoSquare64 {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

func (s Sq120) String() string {
	return s.To64().String()
}
