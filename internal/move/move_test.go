package move

import (
	"testing"

	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/square"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	from, _ := square.FromCoordinate("e2")
	to, _ := square.FromCoordinate("e4")
	m := New(from.To120(), to.To120(), piece.None, piece.None, FlagDoublePush)

	if m.From() != from.To120() {
		t.Fatalf("From() = %v, want %v", m.From(), from.To120())
	}
	if m.To() != to.To120() {
		t.Fatalf("To() = %v, want %v", m.To(), to.To120())
	}
	if !m.IsDoublePawnPush() {
		t.Fatal("IsDoublePawnPush() = false")
	}
	if m.IsCapture() || m.IsCastle() || m.IsEnPassant() {
		t.Fatal("unexpected flag set")
	}
}

func TestPromotionEncoding(t *testing.T) {
	from, _ := square.FromCoordinate("e7")
	to, _ := square.FromCoordinate("e8")
	m := New(from.To120(), to.To120(), piece.None, piece.Queen, 0)

	if !m.IsPromotion() {
		t.Fatal("IsPromotion() = false")
	}
	if m.Promoted() != piece.Queen {
		t.Fatalf("Promoted() = %v, want Queen", m.Promoted())
	}
	if got, want := m.String(), "e7e8q"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCaptureEncoding(t *testing.T) {
	from, _ := square.FromCoordinate("d4")
	to, _ := square.FromCoordinate("e5")
	m := New(from.To120(), to.To120(), piece.Knight, piece.None, FlagCapture)

	if !m.IsCapture() {
		t.Fatal("IsCapture() = false")
	}
	if m.Captured() != piece.Knight {
		t.Fatalf("Captured() = %v, want Knight", m.Captured())
	}
}

func TestParseEndpoints(t *testing.T) {
	from, to, promoted, err := ParseEndpoints("e7e8q")
	if err != nil {
		t.Fatalf("ParseEndpoints: %v", err)
	}
	if from.String() != "e7" || to.String() != "e8" {
		t.Fatalf("got from=%v to=%v", from, to)
	}
	if promoted != piece.Queen {
		t.Fatalf("promoted = %v, want Queen", promoted)
	}

	if _, _, _, err := ParseEndpoints("bad"); err == nil {
		t.Fatal("expected error for malformed move string")
	}
}

func TestListSortDescending(t *testing.T) {
	var l List
	l.Add(Move(1), 5)
	l.Add(Move(2), 50)
	l.Add(Move(3), 1)
	l.SortDescending()

	if l.At(0).Score != 50 || l.At(1).Score != 5 || l.At(2).Score != 1 {
		t.Fatalf("list not sorted descending: %+v", l.Slice())
	}
}
