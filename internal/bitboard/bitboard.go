// Package bitboard implements the 64-bit-per-board population primitives
// and precomputed masks described in spec.md section 4.1. Bit i corresponds
// to square.Sq64(i); square A1 is bit 0.
//
// Grounded on the teacher's core/utils.go bit-twiddling helpers
// (algerbrex/blunder), adapted from its MSB-first convention to the more
// common LSB-first one so math/bits' native trailing-zero scan can be used
// directly instead of a manual reverse.
package bitboard

import "math/bits"

// Board is a 64-bit set of squares.
type Board uint64

// Test reports whether sq is a member of b.
func (b Board) Test(sq int) bool { return b&(1<<uint(sq)) != 0 }

// Set adds sq to b.
func (b *Board) Set(sq int) { *b |= 1 << uint(sq) }

// Clear removes sq from b.
func (b *Board) Clear(sq int) { *b &^= 1 << uint(sq) }

// PopCount returns the number of squares in b.
func (b Board) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the index of the lowest set bit. Calling it on an empty board
// is undefined (returns 64).
func (b Board) LSB() int { return bits.TrailingZeros64(uint64(b)) }

// PopLSB clears and returns the index of the lowest set bit.
func (b *Board) PopLSB() int {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Empty reports whether the board has no squares set.
func (b Board) Empty() bool { return b == 0 }

const (
	FileA = 0
	FileH = 7
	Rank1 = 0
	Rank8 = 7
)

// FileMask, RankMask are indexed by file/rank 0..7.
var (
	FileMask [8]Board
	RankMask [8]Board
)

// PassedPawnMask[c][sq] is the set of squares on sq's file and the two
// adjacent files, strictly ahead of sq from color c's perspective — the
// "passed-pawn block zone" of spec.md section 4.1.
var PassedPawnMask [2][64]Board

func init() {
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			FileMask[f].Set(r*8 + f)
			RankMask[r].Set(r*8 + f)
		}
	}

	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var adjacentFiles Board
		for _, f := range []int{file - 1, file, file + 1} {
			if f >= 0 && f <= 7 {
				adjacentFiles |= FileMask[f]
			}
		}

		var whiteAhead, blackAhead Board
		for r := 0; r < 8; r++ {
			if r > rank {
				whiteAhead |= RankMask[r]
			}
			if r < rank {
				blackAhead |= RankMask[r]
			}
		}
		PassedPawnMask[0][sq] = adjacentFiles & whiteAhead // White
		PassedPawnMask[1][sq] = adjacentFiles & blackAhead // Black
	}
}
