package movegen

import (
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/position"
)

// Perft counts the leaf nodes reachable from p at exactly depth plies,
// exercising move generation and make/unmake together. Grounded on the
// teacher's perft (core/movegen.go); unlike the teacher's version this
// walks a single shared *position.Position with make/unmake rather than
// copying a Board value per call, since mailbox-120 positions carry more
// state (piece lists, listIndex) than is cheap to copy at every node.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var moves move.List
	GeneratePseudoLegal(p, &moves)

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).Move
		if !p.MakeMove(m) {
			continue
		}
		nodes += Perft(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}

// Divide returns the perft count for each legal root move at depth-1,
// keyed by the move's long-algebraic string, plus the total across all
// moves. SPEC_FULL.md's supplemented Divide operation (grounded on the
// teacher's dividePerft) exists to localize a move-generator bug to a
// single root move instead of an entire subtree.
func Divide(p *position.Position, depth int) (perMove map[string]uint64, total uint64) {
	perMove = make(map[string]uint64)
	var moves move.List
	GeneratePseudoLegal(p, &moves)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).Move
		if !p.MakeMove(m) {
			continue
		}
		var n uint64
		if depth <= 1 {
			n = 1
		} else {
			n = Perft(p, depth-1)
		}
		perMove[m.String()] = n
		total += n
		p.UnmakeMove()
	}
	return perMove, total
}
