package position

import (
	"github.com/cdean-eng/knightfall/internal/attacks"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/square"
)

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return attacks.IsAttacked(p, p.kingSq[p.sideToMove], p.sideToMove.Other())
}

// IsSquareAttacked exposes the attack oracle directly, for callers (castling
// generation, search) that need to test an arbitrary square rather than the
// side-to-move's own king.
func (p *Position) IsSquareAttacked(sq square.Sq120, by piece.Color) bool {
	return attacks.IsAttacked(p, sq, by)
}
