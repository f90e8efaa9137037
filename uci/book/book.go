// Package book loads a binary opening book in the Polyglot entry layout
// (16 bytes per entry: an 8-byte position key, a 2-byte encoded move, a
// 2-byte weight, and a 4-byte learn value, all big-endian) and answers
// book-move lookups by position key.
//
// Grounded on the teacher's interface package, which references a
// book.bin file and a PolyglotEntry type (interface/uci.go's
// LoadPolyglotFile/PolyglotEntry) that the retrieved teacher sources do
// not themselves include; this package reimplements that entry format
// from the public Polyglot specification using stdlib encoding/binary, in
// place of a fabricated third-party dependency. Interoperating with a
// book.bin produced by an external Polyglot-compatible tool additionally
// requires that tool's published table of 781 random constants for
// computing the position key; this package does not embed that table; it
// keys entries by this engine's own Zobrist key, so it reads a book built
// by this engine (for instance, by recording game positions and moves),
// not an arbitrary third-party book.bin.
package book

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/cdean-eng/knightfall/internal/square"
)

const entrySize = 16

// Entry is one decoded book entry.
type Entry struct {
	Key    uint64
	Move   string
	Weight uint16
	Learn  uint32
}

// Book is an in-memory opening book keyed by position Zobrist key. Later
// entries for the same key accumulate as alternatives; Lookup returns the
// highest-weighted one.
type Book struct {
	byKey map[uint64][]Entry
}

// Load reads every entry from a Polyglot-layout book file at path.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("book: open %s: %w", path, err)
	}
	defer f.Close()

	b := &Book{byKey: make(map[uint64][]Entry)}
	buf := make([]byte, entrySize)
	for {
		if _, err := io.ReadFull(f, buf); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("book: read %s: %w", path, err)
		}
		e := Entry{
			Key:    binary.BigEndian.Uint64(buf[0:8]),
			Weight: binary.BigEndian.Uint16(buf[10:12]),
			Learn:  binary.BigEndian.Uint32(buf[12:16]),
		}
		e.Move = decodeMove(binary.BigEndian.Uint16(buf[8:10]))
		b.byKey[e.Key] = append(b.byKey[e.Key], e)
	}
	return b, nil
}

// Lookup returns the highest-weighted book move for the position described
// by fen, if any entry matches its Zobrist key.
func (b *Book) Lookup(fen string) (string, bool) {
	p, err := position.LoadFEN(fen)
	if err != nil {
		return "", false
	}
	entries := b.byKey[p.ZobristKey()]
	if len(entries) == 0 {
		return "", false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Weight > best.Weight {
			best = e
		}
	}
	return best.Move, true
}

// decodeMove unpacks Polyglot's 16-bit move encoding: bits 0-2 to-file,
// 3-5 to-rank, 6-8 from-file, 9-11 from-rank, 12-14 promotion piece
// (0=none, 1=knight, 2=bishop, 3=rook, 4=queen), into UCI long algebraic
// notation.
func decodeMove(raw uint16) string {
	toFile := int(raw & 0x7)
	toRank := int((raw >> 3) & 0x7)
	fromFile := int((raw >> 6) & 0x7)
	fromRank := int((raw >> 9) & 0x7)
	promo := int((raw >> 12) & 0x7)

	from := square.FromFileRank(fromFile, fromRank)
	to := square.FromFileRank(toFile, toRank)

	s := from.String() + to.String()
	switch promo {
	case 1:
		s += string(piece.PromotionLetter(piece.Knight))
	case 2:
		s += string(piece.PromotionLetter(piece.Bishop))
	case 3:
		s += string(piece.PromotionLetter(piece.Rook))
	case 4:
		s += string(piece.PromotionLetter(piece.Queen))
	}
	return s
}
