package piece

import "testing"

func TestMakeRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for _, k := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
			p := Make(c, k)
			if p.Color() != c {
				t.Fatalf("Make(%v,%v).Color() = %v", c, k, p.Color())
			}
			if p.Kind() != k {
				t.Fatalf("Make(%v,%v).Kind() = %v", c, k, p.Kind())
			}
		}
	}
}

func TestLetterRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for _, k := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
			p := Make(c, k)
			l := p.Letter()
			got, ok := FromLetter(l)
			if !ok {
				t.Fatalf("FromLetter(%q): not ok", l)
			}
			if got != p {
				t.Fatalf("FromLetter(Letter(%v)) = %v, want %v", p, got, p)
			}
		}
	}
}

func TestEmptyIsDistinctFromOff(t *testing.T) {
	if Empty == Off {
		t.Fatal("Empty and Off must be distinct sentinels")
	}
	if !Empty.IsEmpty() {
		t.Fatal("Empty.IsEmpty() = false")
	}
	if Off.IsEmpty() {
		t.Fatal("Off.IsEmpty() = true, want false")
	}
}

func TestPromotionLetterRoundTrip(t *testing.T) {
	for _, k := range []Kind{Queen, Rook, Bishop, Knight} {
		l := PromotionLetter(k)
		if got := PromotionKind(l); got != k {
			t.Fatalf("PromotionKind(PromotionLetter(%v)) = %v", k, got)
		}
	}
}
