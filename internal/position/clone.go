package position

import "github.com/cdean-eng/knightfall/internal/square"

// Clone returns a deep copy of p with its own independent undo stack, per
// SPEC_FULL.md's supplemented Clone feature (grounded on original_source's
// position_copy_test.cpp, which exercises an equivalent independent-copy
// operation against the pre-distillation implementation). A caller
// searching in parallel can use this to hand a worker an isolated position
// without racing its own in-progress make/unmake sequence.
func (p *Position) Clone() *Position {
	c := &Position{
		board:          p.board,
		pieceBB:        p.pieceBB,
		colorBB:        p.colorBB,
		occupied:       p.occupied,
		listIndex:      p.listIndex,
		pieceCount:     p.pieceCount,
		materialScore:  p.materialScore,
		kingSq:         p.kingSq,
		sideToMove:     p.sideToMove,
		epSquare:       p.epSquare,
		castlingRights: p.castlingRights,
		halfMoveClock:  p.halfMoveClock,
		fullMoveNumber: p.fullMoveNumber,
		ply:            p.ply,
		zobristKey:     p.zobristKey,
	}
	for color := 0; color < 2; color++ {
		for kind := 0; kind < 7; kind++ {
			c.pieceList[color][kind] = append([]square.Sq64(nil), p.pieceList[color][kind]...)
		}
	}
	c.undoStack = append([]undoEntry(nil), p.undoStack...)
	return c
}
