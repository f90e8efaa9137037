package search

import (
	"context"
	"testing"

	"github.com/cdean-eng/knightfall/internal/eval"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/stretchr/testify/require"
)

func TestSearchDepthOneReturnsLegalMove(t *testing.T) {
	p, err := position.LoadFEN(position.StartFEN)
	require.NoError(t, err)
	s := New(eval.Default{}, 1, Tuning{})
	result := s.Search(context.Background(), p, Limits{MaxDepth: 1})
	require.NotEmpty(t, result.BestMove.String())
	require.Equal(t, 1, result.Depth)
}

func TestSearchFindsMateInOne(t *testing.T) {
	p, err := position.LoadFEN("k7/8/1K6/8/8/8/8/7Q w - - 0 1")
	require.NoError(t, err)
	s := New(eval.Default{}, 1, Tuning{})
	result := s.Search(context.Background(), p, Limits{MaxDepth: 3})
	// The queen on h1 already bears on a8 along the long diagonal, so both
	// Qh8 and Qb7 (protected by the king on b6) are mate in one.
	require.Contains(t, []string{"h1h8", "h1b7"}, result.BestMove.String())
	require.Greater(t, result.Score, int32(31900))
}

func TestSearchStalemateScoresDraw(t *testing.T) {
	// Black to move, no legal moves, not in check: stalemate.
	p, err := position.LoadFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)
	s := New(eval.Default{}, 1, Tuning{})
	result := s.Search(context.Background(), p, Limits{MaxDepth: 1})
	require.Equal(t, int32(Draw), result.Score)
}

func TestFiftyMoveClockForcesDraw(t *testing.T) {
	// Halfmove clock already at 99; the single reported move below must
	// push it to 100 inside the search tree and be scored as a draw.
	p, err := position.LoadFEN("k7/8/1K6/8/8/8/8/7R w - - 99 60")
	require.NoError(t, err)
	s := New(eval.Default{}, 1, Tuning{})
	result := s.Search(context.Background(), p, Limits{MaxDepth: 2})
	require.Equal(t, int32(Draw), result.Score)
}

func TestHalfMoveClockAtRootForcesImmediateDraw(t *testing.T) {
	// The root position itself has already reached the fifty-move clock;
	// rootSearch must score it a draw before generating or searching any
	// move, not only once a child node reaches the clock.
	p, err := position.LoadFEN("k7/8/1K6/8/8/8/8/7R w - - 100 60")
	require.NoError(t, err)
	s := New(eval.Default{}, 1, Tuning{})
	result := s.Search(context.Background(), p, Limits{MaxDepth: 2})
	require.Equal(t, int32(Draw), result.Score)
}

func TestRootRepetitionForcesImmediateDraw(t *testing.T) {
	// The root position is itself the third occurrence of a key already
	// seen twice in game history; rootSearch must recognize this without
	// searching deeper, mirroring negamax's non-root repetition handling.
	p, err := position.LoadFEN("k7/8/1K6/8/8/8/8/7R w - - 0 1")
	require.NoError(t, err)
	key := p.ZobristKey()
	s := New(eval.Default{}, 1, Tuning{})
	s.SetHistory([]uint64{key, 0x1111, key, 0x2222, key})
	result := s.Search(context.Background(), p, Limits{MaxDepth: 2})
	require.Equal(t, int32(Draw), result.Score)
}

func TestIsRepetitionAtRootRequiresThreeTotalMatches(t *testing.T) {
	s := &Searcher{}
	const key = uint64(0x4242)
	s.gameKeys = []uint64{key, key}
	require.False(t, s.isRepetitionAtRoot(key), "two total matches (one genuine prior occurrence plus the root's own trailing entry) is only a twofold repeat")
	s.gameKeys = append(s.gameKeys, key)
	require.True(t, s.isRepetitionAtRoot(key), "three total matches means two genuine prior occurrences plus this root: a real threefold repetition")
}

func TestIsRepetitionDetectsThirdOccurrence(t *testing.T) {
	s := &Searcher{}
	const key = uint64(0xabc123)
	s.gameKeys = []uint64{key}
	s.pathKeys[1] = key
	require.True(t, s.isRepetition(key, 2), "a third occurrence (once in game history, once in the search path) must count as a repetition")
}

func TestIsRepetitionNotYetTriggeredOnSecondOccurrence(t *testing.T) {
	s := &Searcher{}
	const key = uint64(0x999)
	s.gameKeys = []uint64{key}
	require.False(t, s.isRepetition(key, 0), "a single prior occurrence is only a twofold repeat, not a draw")
}
