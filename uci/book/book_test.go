package book

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, f *os.File, key uint64, rawMove uint16, weight uint16, learn uint32) {
	t.Helper()
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], key)
	binary.BigEndian.PutUint16(buf[8:10], rawMove)
	binary.BigEndian.PutUint16(buf[10:12], weight)
	binary.BigEndian.PutUint32(buf[12:16], learn)
	_, err := f.Write(buf[:])
	require.NoError(t, err)
}

func TestLookupReturnsHighestWeightedEntry(t *testing.T) {
	p, err := position.LoadFEN(position.StartFEN)
	require.NoError(t, err)
	key := p.ZobristKey()

	// e2e4 encoded per Polyglot bit layout: to=e4 (file4,rank3), from=e2 (file4,rank1).
	e2e4 := uint16(4) | uint16(3)<<3 | uint16(4)<<6 | uint16(1)<<9
	// d2d4 as the lower-weighted alternative: to=d4 (file3,rank3), from=d2 (file3,rank1).
	d2d4 := uint16(3) | uint16(3)<<3 | uint16(3)<<6 | uint16(1)<<9

	path := filepath.Join(t.TempDir(), "test.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	writeEntry(t, f, key, d2d4, 10, 0)
	writeEntry(t, f, key, e2e4, 50, 0)
	require.NoError(t, f.Close())

	b, err := Load(path)
	require.NoError(t, err)
	move, ok := b.Lookup(position.StartFEN)
	require.True(t, ok, "expected a book hit for the starting position")
	require.Equal(t, "e2e4", move, "Lookup should return the higher-weighted entry")
}

func TestLookupMissReturnsFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	b, err := Load(path)
	require.NoError(t, err)
	_, ok := b.Lookup(position.StartFEN)
	require.False(t, ok, "expected no match for an empty book")
}
