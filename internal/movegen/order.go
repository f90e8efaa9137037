package movegen

import (
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/position"
)

// Move-ordering score bands, grounded on the teacher's orderMoves
// (core/search.go): captures and promotions sort ahead of quiet moves,
// which sort by killer-move and history-heuristic score. Keeping each band
// in its own disjoint range means a quiet move's history score can never
// accidentally outrank a losing capture.
const (
	ScoreCapture   int32 = 1_000_000
	ScorePromotion int32 = 900_000
	ScoreKiller1   int32 = 90_000
	ScoreKiller2   int32 = 89_000
)

// HistoryTable accumulates the quiet-move ordering score the teacher calls
// searchHistory: indexed [from64][to64], incremented by depth*depth whenever
// a quiet move causes a beta cutoff.
type HistoryTable [64][64]int32

// Killers holds the two most recent quiet moves that caused a beta cutoff
// at a given ply (core/search.go's killerMoves).
type Killers [2]move.Move

// Score assigns each move in list its move-ordering score in place: MVV-LVA
// for captures, a promotion bonus plus the promoted piece's value for
// promotions, killer-move bonuses, and the
// history table for everything else.
func Score(p *position.Position, list *move.List, killers Killers, history *HistoryTable) {
	for i := 0; i < list.Len(); i++ {
		m := list.At(i).Move
		var s int32
		switch {
		case m.IsCapture():
			attacker := p.PieceAt(m.From()).Kind()
			victim := m.Captured()
			s = ScoreCapture + int32(piece.Value[victim]*16-piece.Value[attacker])
		case m.IsPromotion():
			s = ScorePromotion + int32(piece.Value[m.Promoted()])
		case m == killers[0]:
			s = ScoreKiller1
		case m == killers[1]:
			s = ScoreKiller2
		default:
			s = history[m.From().To64()][m.To().To64()]
		}
		list.SetScore(i, s)
	}
}
