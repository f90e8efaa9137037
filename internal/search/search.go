// Package search implements iterative-deepening negamax alpha-beta search
// with quiescence, a transposition table, and killer/history move
// ordering, per spec.md sections 4.7 and 4.8.
//
// Grounded on the teacher's core/search.go Searcher (algerbrex/blunder):
// the same shape (iterative deepening driving rootNegamax, a fixed-size TT
// array, per-ply killer moves, a from/to history table), adapted to
// mailbox-120 positions and a context.Context-based stop signal instead of
// the teacher's StopSearch bool, following the cancellation idiom this
// engine's ambient stack (github.com/seekerror/logw) is built around.
package search

import (
	"context"
	"time"

	"github.com/cdean-eng/knightfall/internal/eval"
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/movegen"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/seekerror/logw"
)

// Mate and Infinity bound the search's score range; a checkmate found at
// ply p is reported as Mate-p (for the winning side) so that shallower
// mates always outscore deeper ones.
const (
	Infinity = 32001
	Mate     = 32000
	Draw     = 0

	maxPly = 128
)

// Limits bounds a single search call. A zero value means "unbounded" for
// that dimension; callers should set at least one.
type Limits struct {
	MaxDepth int
	MaxNodes uint64
	MoveTime time.Duration
}

// Result is a finished (or interrupted) search's outcome.
type Result struct {
	BestMove move.Move
	Score    int32
	Depth    int
	Nodes    uint64
	PV       []move.Move
}

// Searcher holds everything a search call needs that must persist across
// iterative-deepening iterations: the transposition table and the
// killer/history move-ordering tables. A Searcher is not safe for
// concurrent use; callers searching in parallel should give each goroutine
// its own Searcher over a position.Position.Clone().
type Searcher struct {
	eval    eval.Evaluator
	tt      *table
	killers [maxPly]movegen.Killers
	history movegen.HistoryTable

	// gameKeys holds the Zobrist keys of positions actually reached earlier
	// in the game (set by the caller via SetHistory), and pathKeys holds
	// the keys visited along the current search path, indexed by ply.
	// Together they let negamax detect a genuine threefold repetition
	// instead of only the fifty-move and insufficient-material draws.
	gameKeys []uint64
	pathKeys [maxPly]uint64

	qMaxPly      int
	moveOverhead time.Duration

	nodes        uint64
	nodeInterval uint64
	start        time.Time
	limits       Limits
	stopped      bool // set once timeUp trips; stays set until the next Search
}

// Tuning holds the config-driven search parameters beyond the
// transposition table size. A zero QuiescenceMaxPly or NodeCheckInterval
// falls back to the teacher's original hardcoded constant (16 and 2048); a
// zero MoveOverheadMS reserves no overhead.
type Tuning struct {
	// QuiescenceMaxPly caps how many plies quiescence search may recurse
	// past the nominal depth limit before settling for the stand-pat score.
	QuiescenceMaxPly int
	// NodeCheckInterval is how many nodes pass between checks of the time,
	// node, and cancellation budget.
	NodeCheckInterval int
	// MoveOverheadMS is subtracted from a movetime budget to leave headroom
	// for the GUI/network latency of actually reporting the move.
	MoveOverheadMS int
}

// SetHistory records the Zobrist keys of positions already reached earlier
// in the game, oldest first, so Search can recognize a repetition that
// completes across the board boundary rather than only within its own
// search tree. Callers should include the root position's own key.
func (s *Searcher) SetHistory(keys []uint64) {
	s.gameKeys = keys
}

// New returns a Searcher with the given evaluator, transposition table size
// in megabytes, and tuning parameters.
func New(evaluator eval.Evaluator, ttMegabytes int, tuning Tuning) *Searcher {
	qMaxPly := tuning.QuiescenceMaxPly
	if qMaxPly <= 0 {
		qMaxPly = 16
	}
	nodeInterval := uint64(tuning.NodeCheckInterval)
	if nodeInterval == 0 {
		nodeInterval = 2048
	}
	return &Searcher{
		eval:         evaluator,
		tt:           newTable(ttMegabytes),
		nodeInterval: nodeInterval,
		qMaxPly:      qMaxPly,
		moveOverhead: time.Duration(tuning.MoveOverheadMS) * time.Millisecond,
	}
}

// Search runs iterative deepening from the root position until limits is
// exhausted or ctx is canceled, returning the best move found at the
// deepest fully-completed iteration. It never returns a move from a
// depth that was interrupted partway through, since a partial iteration's
// score and best move may not reflect a full-width search.
func (s *Searcher) Search(ctx context.Context, p *position.Position, limits Limits) Result {
	s.nodes = 0
	s.stopped = false
	s.start = time.Now()
	s.limits = limits
	s.killers = [maxPly]movegen.Killers{}
	s.history = movegen.HistoryTable{}
	s.pathKeys = [maxPly]uint64{}

	var best Result
	maxDepth := limits.MaxDepth
	if maxDepth <= 0 || maxDepth > maxPly-1 {
		maxDepth = maxPly - 1
	}

	for depth := 1; depth <= maxDepth; depth++ {
		score, bestMove, ok := s.rootSearch(ctx, p, depth)
		if !ok {
			break
		}
		best = Result{
			BestMove: bestMove,
			Score:    score,
			Depth:    depth,
			Nodes:    s.nodes,
			PV:       s.collectPV(p, depth),
		}
		logw.Infof(ctx, "depth %d complete: score=%d nodes=%d move=%v", depth, score, s.nodes, bestMove)
		if score >= Mate-int32(maxPly) || score <= -Mate+int32(maxPly) {
			break
		}
	}
	return best
}

// rootSearch runs one iterative-deepening iteration at depth, returning
// ok=false if it was interrupted before completing (in which case score
// and bestMove must be discarded).
func (s *Searcher) rootSearch(ctx context.Context, p *position.Position, depth int) (score int32, bestMove move.Move, ok bool) {
	if p.HalfMoveClock() >= 100 || isInsufficientMaterial(p) || s.isRepetitionAtRoot(p.ZobristKey()) {
		return Draw, move.Null, true
	}

	var moves move.List
	movegen.GenerateLegal(p, &moves)
	movegen.Score(p, &moves, s.killers[0], &s.history)
	moves.SortDescending()

	if moves.Len() == 0 {
		if p.InCheck() {
			return -Mate, move.Null, true
		}
		return Draw, move.Null, true
	}

	alpha, beta := int32(-Infinity), int32(Infinity)
	best := int32(-Infinity)
	var bestM move.Move

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).Move
		if !p.MakeMove(m) {
			continue
		}
		childScore := -s.negamax(ctx, p, depth-1, 1, -beta, -alpha)
		p.UnmakeMove()

		if s.timeUp(ctx) {
			return 0, move.Null, false
		}

		if childScore > best {
			best = childScore
			bestM = m
		}
		if best > alpha {
			alpha = best
		}
	}

	return best, bestM, true
}

// timeUp reports whether the current search call has exhausted its node,
// time, or cancellation budget. It is cheap enough to call on every node
// but is only actually evaluated every nodeInterval nodes to keep the
// common case branch-free, matching the teacher's StopSearch poll cadence.
// Once it has reported true it keeps reporting true for the rest of the
// search call, so every caller up to rootSearch sees the interruption.
func (s *Searcher) timeUp(ctx context.Context) bool {
	if s.stopped {
		return true
	}
	if s.nodes%s.nodeInterval != 0 {
		return false
	}
	if s.limits.MaxNodes != 0 && s.nodes >= s.limits.MaxNodes {
		s.stopped = true
		return true
	}
	if s.limits.MoveTime != 0 {
		budget := s.limits.MoveTime - s.moveOverhead
		if budget < 0 {
			budget = 0
		}
		if time.Since(s.start) >= budget {
			s.stopped = true
			return true
		}
	}
	select {
	case <-ctx.Done():
		s.stopped = true
		return true
	default:
		return false
	}
}

// collectPV walks the transposition table's stored best moves from the
// root to reconstruct the principal variation for UCI reporting. It stops
// at the first missing or inconsistent entry rather than trusting the
// table blindly, since TT entries can be overwritten by unrelated lines
// between the search that found them and the walk.
func (s *Searcher) collectPV(p *position.Position, maxLen int) []move.Move {
	pv := make([]move.Move, 0, maxLen)
	seen := make(map[uint64]bool)
	for i := 0; i < maxLen; i++ {
		entry, ok := s.tt.probe(p.ZobristKey())
		if !ok || entry.best == move.Null {
			break
		}
		if seen[p.ZobristKey()] {
			break
		}
		seen[p.ZobristKey()] = true
		if !p.MakeMove(entry.best) {
			break
		}
		pv = append(pv, entry.best)
	}
	for range pv {
		p.UnmakeMove()
	}
	return pv
}
