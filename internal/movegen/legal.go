package movegen

import (
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/position"
)

// GenerateLegal appends every strictly legal move for the side to move in p
// to list. It generates pseudo-legal moves and discards any that leave the
// mover's own king in check, per spec.md section 4.5.
func GenerateLegal(p *position.Position, list *move.List) {
	var pseudo move.List
	GeneratePseudoLegal(p, &pseudo)
	list.Reset()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i).Move
		if p.MakeMove(m) {
			p.UnmakeMove()
			list.Add(m, 0)
		}
	}
}

// GenerateLegalCaptures is GenerateLegal restricted to captures and
// promotions, for quiescence search.
func GenerateLegalCaptures(p *position.Position, list *move.List) {
	var pseudo move.List
	GeneratePseudoLegalCaptures(p, &pseudo)
	list.Reset()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i).Move
		if p.MakeMove(m) {
			p.UnmakeMove()
			list.Add(m, 0)
		}
	}
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full list — used to detect checkmate and
// stalemate cheaply.
func HasLegalMove(p *position.Position) bool {
	var pseudo move.List
	GeneratePseudoLegal(p, &pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i).Move
		if p.MakeMove(m) {
			p.UnmakeMove()
			return true
		}
	}
	return false
}
