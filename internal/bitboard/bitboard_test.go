package bitboard

import "testing"

func TestSetClearTest(t *testing.T) {
	var b Board
	b.Set(10)
	b.Set(63)
	if !b.Test(10) || !b.Test(63) {
		t.Fatal("expected bits 10 and 63 set")
	}
	b.Clear(10)
	if b.Test(10) {
		t.Fatal("bit 10 still set after Clear")
	}
	if b.PopCount() != 1 {
		t.Fatalf("PopCount() = %d, want 1", b.PopCount())
	}
}

func TestPopLSB(t *testing.T) {
	var b Board
	b.Set(3)
	b.Set(20)
	b.Set(40)

	var got []int
	for !b.Empty() {
		got = append(got, b.PopLSB())
	}
	want := []int{3, 20, 40}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFileAndRankMasks(t *testing.T) {
	if FileMask[FileA].PopCount() != 8 {
		t.Fatalf("FileMask[FileA] has %d bits, want 8", FileMask[FileA].PopCount())
	}
	if RankMask[Rank1].PopCount() != 8 {
		t.Fatalf("RankMask[Rank1] has %d bits, want 8", RankMask[Rank1].PopCount())
	}
	if !FileMask[FileA].Test(0) {
		t.Fatal("FileMask[FileA] should contain a1 (bit 0)")
	}
}

func TestPassedPawnMaskExcludesOwnFileBehind(t *testing.T) {
	// A white pawn on e4 (square 28) is not blocked by anything behind it.
	e4 := 4 + 3*8
	mask := PassedPawnMask[0][e4]
	if mask.Test(e4) {
		t.Fatal("passed pawn mask must not include the pawn's own square")
	}
	// Every masked square must be strictly ahead (higher rank) of e4 for White.
	for sq := 0; sq < 64; sq++ {
		if mask.Test(sq) && sq/8 <= e4/8 {
			t.Fatalf("square %d is not strictly ahead of e4 for White", sq)
		}
	}
}
