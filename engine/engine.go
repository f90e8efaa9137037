// Package engine wires position state, move generation, and search into a
// single game-playing object, the shape the uci and cmd/chessengine
// packages drive.
//
// Grounded on the teacher's pack-mate herohde-morlock's pkg/engine/engine.go
// (the teacher itself, algerbrex/blunder, inlines this logic directly into
// interface/uci.go rather than factoring out an Engine type): the
// functional-options constructor, the ctx-threaded logw logging at every
// lifecycle event, and the mutex-guarded single shared position are all
// taken from morlock's Engine.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/cdean-eng/knightfall/internal/config"
	"github.com/cdean-eng/knightfall/internal/eval"
	"github.com/cdean-eng/knightfall/internal/move"
	"github.com/cdean-eng/knightfall/internal/movegen"
	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/cdean-eng/knightfall/internal/search"
	"github.com/seekerror/logw"
)

// Options are engine creation options, fixed when New builds the engine.
// The uci package accepts setoption commands but does not apply them, so
// these options cannot be changed at runtime.
type Options struct {
	// HashMB is the transposition table size in megabytes.
	HashMB int
	// DefaultDepth caps search depth when a "go" command supplies no other
	// limit. Zero means unbounded (subject to search's own maxPly cap).
	DefaultDepth int
	// QuiescenceMaxPly caps quiescence search recursion depth.
	QuiescenceMaxPly int
	// NodeCheckInterval is how many nodes pass between time/node/cancel checks.
	NodeCheckInterval int
	// MoveOverheadMS reserves latency headroom out of a movetime budget.
	MoveOverheadMS int
}

func (o Options) String() string {
	return fmt.Sprintf("{hash=%vMB, depth=%v, qply=%v, nodeInterval=%v, overheadMS=%v}",
		o.HashMB, o.DefaultDepth, o.QuiescenceMaxPly, o.NodeCheckInterval, o.MoveOverheadMS)
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithHashMB sets the transposition table size in megabytes.
func WithHashMB(mb int) Option {
	return func(e *Engine) { e.opts.HashMB = mb }
}

// WithDefaultDepth sets the depth used when a search is requested with no
// explicit depth, node, or time limit.
func WithDefaultDepth(depth int) Option {
	return func(e *Engine) { e.opts.DefaultDepth = depth }
}

// WithTuning applies every field of a config.Search block at once, the
// shape the CLI's --config flag feeds into New.
func WithTuning(cfg config.Search) Option {
	return func(e *Engine) {
		e.opts.HashMB = cfg.TranspositionMB
		e.opts.DefaultDepth = cfg.MaxDepth
		e.opts.QuiescenceMaxPly = cfg.QuiescenceMaxPly
		e.opts.NodeCheckInterval = cfg.NodeCheckInterval
		e.opts.MoveOverheadMS = cfg.MoveOverheadMS
	}
}

// WithEvaluator overrides the built-in material/piece-square evaluator.
func WithEvaluator(evaluator eval.Evaluator) Option {
	return func(e *Engine) { e.evaluator = evaluator }
}

// Engine owns the authoritative game position and drives search over it.
type Engine struct {
	name, author string
	opts         Options
	evaluator    eval.Evaluator

	mu         sync.Mutex
	pos        *position.Position
	searcher   *search.Searcher
	keyHistory []uint64 // Zobrist keys of every position reached this game, oldest first
}

// New constructs an Engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	defaults := config.Default().Search
	e := &Engine{
		name:   name,
		author: author,
		opts: Options{
			HashMB:            defaults.TranspositionMB,
			DefaultDepth:      0,
			QuiescenceMaxPly:  defaults.QuiescenceMaxPly,
			NodeCheckInterval: defaults.NodeCheckInterval,
			MoveOverheadMS:    defaults.MoveOverheadMS,
		},
		evaluator: eval.Default{},
	}
	for _, fn := range opts {
		fn(e)
	}
	e.searcher = search.New(e.evaluator, e.opts.HashMB, search.Tuning{
		QuiescenceMaxPly:  e.opts.QuiescenceMaxPly,
		NodeCheckInterval: e.opts.NodeCheckInterval,
		MoveOverheadMS:    e.opts.MoveOverheadMS,
	})

	_ = e.Reset(ctx, position.StartFEN)
	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine's display name, for the UCI "id name" response.
func (e *Engine) Name() string { return e.name }

// Author returns the engine's author, for the UCI "id author" response.
func (e *Engine) Author() string { return e.author }

// Reset replaces the current game with the position described by fen.
func (e *Engine) Reset(ctx context.Context, fen string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := position.LoadFEN(fen)
	if err != nil {
		return fmt.Errorf("engine: reset: %w", err)
	}
	e.pos = p
	e.keyHistory = append(e.keyHistory[:0], p.ZobristKey())
	logw.Infof(ctx, "Reset to %v", fen)
	return nil
}

// FEN returns the current position in Forsyth-Edwards notation.
func (e *Engine) FEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos.FEN()
}

// WhiteToMove reports whether White is to move in the current position,
// used by the UCI layer to pick the right side of the clock.
func (e *Engine) WhiteToMove() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos.SideToMove() == piece.White
}

// Push applies uciMove (long algebraic notation, e.g. "e2e4" or "e7e8q")
// to the game, rejecting it if it does not match a currently legal move.
func (e *Engine) Push(ctx context.Context, uciMove string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	from, to, promoted, err := move.ParseEndpoints(uciMove)
	if err != nil {
		return fmt.Errorf("engine: push: %w", err)
	}

	var legal move.List
	movegen.GenerateLegal(e.pos, &legal)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i).Move
		if m.From() == from.To120() && m.To() == to.To120() && m.Promoted() == promoted {
			if !e.pos.MakeMove(m) {
				return fmt.Errorf("engine: push: move %v leaves king in check", uciMove)
			}
			e.keyHistory = append(e.keyHistory, e.pos.ZobristKey())
			logw.Infof(ctx, "Push %v: %v", uciMove, e.pos.FEN())
			return nil
		}
	}
	return fmt.Errorf("engine: push: %q is not a legal move in %v", uciMove, e.pos.FEN())
}

// Search runs a search over the current position and returns its result.
// If limits has no depth, node, or time bound set, the engine's configured
// default depth is used.
func (e *Engine) Search(ctx context.Context, limits search.Limits) search.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if limits.MaxDepth == 0 && limits.MaxNodes == 0 && limits.MoveTime == 0 {
		limits.MaxDepth = e.opts.DefaultDepth
	}

	e.searcher.SetHistory(e.keyHistory)
	logw.Infof(ctx, "Search %v, limits=%+v", e.pos.FEN(), limits)
	result := e.searcher.Search(ctx, e.pos, limits)
	logw.Infof(ctx, "Search result: move=%v score=%v depth=%v nodes=%v", result.BestMove, result.Score, result.Depth, result.Nodes)
	return result
}
