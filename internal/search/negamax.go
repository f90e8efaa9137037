package search

import (
	"context"

	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/movegen"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/position"
)

// negamax searches p to depth plies via alpha-beta pruning, returning the
// score from the side-to-move's perspective. Grounded on the teacher's
// negamax (core/search.go): TT probe before generating moves, full move
// ordering via MVV-LVA/killers/history, killer and history updates on a
// quiet beta cutoff, TT store on the way back up.
func (s *Searcher) negamax(ctx context.Context, p *position.Position, depth, ply int, alpha, beta int32) int32 {
	s.nodes++
	if s.timeUp(ctx) {
		return 0
	}
	key := p.ZobristKey()
	if ply > 0 {
		if p.HalfMoveClock() >= 100 || isInsufficientMaterial(p) || s.isRepetition(key, ply) {
			return Draw
		}
		s.pathKeys[ply] = key
	}

	alphaOrig := alpha
	var ttBest move.Move
	if entry, ok := s.tt.probe(key); ok {
		ttBest = entry.best
		if entry.depth >= depth {
			switch entry.bound {
			case boundExact:
				return entry.score
			case boundLower:
				if entry.score > alpha {
					alpha = entry.score
				}
			case boundUpper:
				if entry.score < beta {
					beta = entry.score
				}
			}
			if alpha >= beta {
				return entry.score
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(ctx, p, ply, 0, alpha, beta)
	}

	var moves move.List
	movegen.GenerateLegal(p, &moves)
	if moves.Len() == 0 {
		if p.InCheck() {
			return -Mate + int32(ply)
		}
		return Draw
	}

	var killers movegen.Killers
	if ply < maxPly {
		killers = s.killers[ply]
	}
	movegen.Score(p, &moves, killers, &s.history)
	if ttBest != move.Null {
		promoteMove(&moves, ttBest)
	}
	moves.SortDescending()

	best := int32(-Infinity)
	var bestMove move.Move
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).Move
		if !p.MakeMove(m) {
			continue
		}
		score := -s.negamax(ctx, p, depth-1, ply+1, -beta, -alpha)
		p.UnmakeMove()

		if score > best {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			if !m.IsCapture() && !m.IsPromotion() && ply < maxPly {
				s.recordKiller(ply, m)
				s.history[m.From().To64()][m.To().To64()] += int32(depth * depth)
			}
			break
		}
	}

	var b bound
	switch {
	case best <= alphaOrig:
		b = boundUpper
	case best >= beta:
		b = boundLower
	default:
		b = boundExact
	}
	s.tt.store(key, depth, best, b, bestMove)

	return best
}

// quiescence extends the search over captures and promotions only, past
// the nominal depth limit, to avoid the horizon effect of cutting search
// off mid-exchange (spec.md section 4.8). qply counts plies spent inside
// quiescence itself (reset to 0 at the depth-0 handoff from negamax) and is
// capped at s.qMaxPly independently of ply's absolute, array-bound cap.
func (s *Searcher) quiescence(ctx context.Context, p *position.Position, ply, qply int, alpha, beta int32) int32 {
	s.nodes++
	if s.timeUp(ctx) {
		return 0
	}

	standPat := int32(s.eval.Evaluate(p))
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= maxPly-1 || qply >= s.qMaxPly {
		return standPat
	}

	var moves move.List
	movegen.GenerateLegalCaptures(p, &moves)
	movegen.Score(p, &moves, movegen.Killers{}, &s.history)
	moves.SortDescending()

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).Move
		if !p.MakeMove(m) {
			continue
		}
		score := -s.quiescence(ctx, p, ply+1, qply+1, -beta, -alpha)
		p.UnmakeMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// recordKiller pushes m into ply's killer slots, displacing the older one,
// unless m is already the most recent killer at this ply.
func (s *Searcher) recordKiller(ply int, m move.Move) {
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// promoteMove gives the transposition table's remembered best move the
// highest possible ordering score, so it is searched first regardless of
// its MVV-LVA/history score.
func promoteMove(list *move.List, best move.Move) {
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Move == best {
			list.SetScore(i, ScoreCaptureTTBonus)
			return
		}
	}
}

// ScoreCaptureTTBonus exceeds every other ordering score band in
// movegen.Score, guaranteeing the TT move is tried first.
const ScoreCaptureTTBonus int32 = 2_000_000

// isRepetition reports whether key has already occurred at least twice
// before this node — once anywhere in the actual game history, or anywhere
// shallower in the current search path — meaning this node is the third
// occurrence and the position is a draw by repetition.
func (s *Searcher) isRepetition(key uint64, ply int) bool {
	count := 0
	for _, k := range s.gameKeys {
		if k == key {
			count++
		}
	}
	for i := 0; i < ply; i++ {
		if s.pathKeys[i] == key {
			count++
		}
	}
	return count >= 2
}

// isRepetitionAtRoot reports whether the root position itself already
// completes a threefold repetition, before any move is searched from it.
// gameKeys' last entry is always this root position's own key (SetHistory's
// documented contract), so a genuine threefold repeat shows up as three
// total matches rather than isRepetition's two.
func (s *Searcher) isRepetitionAtRoot(key uint64) bool {
	count := 0
	for _, k := range s.gameKeys {
		if k == key {
			count++
		}
	}
	return count >= 3
}

func isInsufficientMaterial(p *position.Position) bool {
	for _, c := range [2]piece.Color{piece.White, piece.Black} {
		if p.PieceCount(c, piece.Pawn) > 0 || p.PieceCount(c, piece.Rook) > 0 || p.PieceCount(c, piece.Queen) > 0 {
			return false
		}
	}
	whiteMinor := p.PieceCount(piece.White, piece.Knight) + p.PieceCount(piece.White, piece.Bishop)
	blackMinor := p.PieceCount(piece.Black, piece.Knight) + p.PieceCount(piece.Black, piece.Bishop)
	return whiteMinor <= 1 && blackMinor <= 1
}
