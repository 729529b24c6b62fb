package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/algerbrex/gryphon/internal/chess"
)

func searchToDepth(t *testing.T, fen string, depth int) (chess.Move, *chess.Board) {
	t.Helper()
	b := &chess.Board{}
	require.NoError(t, b.SetFEN(fen))
	s := NewSearcher(b, 1)
	deadline := time.Now().Add(10 * time.Second)
	move := s.Search(depth, deadline, nil)
	require.False(t, move.IsNull(), "search found no move for %s", fen)
	return move, b
}

// TestScenarioBackRankMateInOne: scenario 1.
func TestScenarioBackRankMateInOne(t *testing.T) {
	fen := "6k1/5ppp/8/8/8/8/8/4Q2K w - - 0 1"
	move, b := searchToDepth(t, fen, 2)

	undo := b.MakeMove(move, false)
	defer b.UndoMove(undo)

	require.True(t, b.InCheck(chess.Black))
	require.Empty(t, chess.LegalMoves(b), "black should have no legal reply to mate")
}

// TestScenarioBishopTakesQueen: scenario 2.
func TestScenarioBishopTakesQueen(t *testing.T) {
	fen := "8/6B1/8/8/3q4/8/8/4K2k w - - 0 1"
	move, _ := searchToDepth(t, fen, 2)

	row, col := move.To.RowCol()
	require.Equal(t, 4, row)
	require.Equal(t, 3, col)
}

// TestScenarioMaterialAdvantageScored: scenario 3.
func TestScenarioMaterialAdvantageScored(t *testing.T) {
	b := &chess.Board{}
	require.NoError(t, b.SetFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1"))
	require.Greater(t, Evaluate(b), 800)
}

// TestScenarioTranspositionHashOrderIndependent: scenario 4.
func TestScenarioTranspositionHashOrderIndependent(t *testing.T) {
	play := func(moves []string) uint64 {
		b := chess.NewBoard()
		for _, mv := range moves {
			m, err := chess.ParseUCIMove(b, mv)
			require.NoError(t, err)
			b.MakeMove(m, false)
		}
		return b.Hash
	}

	a := play([]string{"e2e4", "e7e5", "g1f3", "b8c6"})
	c := play([]string{"g1f3", "b8c6", "e2e4", "e7e5"})
	require.Equal(t, a, c)
}

// TestScenarioEnPassantGenerated: scenario 5.
func TestScenarioEnPassantGenerated(t *testing.T) {
	b := &chess.Board{}
	require.NoError(t, b.SetFEN("8/8/8/4Pp2/8/8/8/8 w - f6 0 1"))

	e5, _ := chess.ParseSquare("e5")
	found := false
	for _, m := range chess.GenerateMoves(b) {
		if m.From == e5 && m.Type == chess.EnPassant {
			found = true
			row, col := m.To.RowCol()
			require.Equal(t, 2, row)
			require.Equal(t, 5, col)
		}
	}
	require.True(t, found, "expected an en-passant move generated from e5")
}

// TestScenarioCastlingBothSidesAndBlockedByAttack: scenario 6.
func TestScenarioCastlingBothSidesAndBlockedByAttack(t *testing.T) {
	b := &chess.Board{}
	require.NoError(t, b.SetFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"))

	e1, _ := chess.ParseSquare("e1")
	var kingside, queenside bool
	for _, m := range chess.GenerateMoves(b) {
		if m.From != e1 || m.Type != chess.Castle {
			continue
		}
		row, col := m.To.RowCol()
		require.Equal(t, 7, row)
		if col == 6 {
			kingside = true
		}
		if col == 2 {
			queenside = true
		}
	}
	require.True(t, kingside)
	require.True(t, queenside)

	// Placing a black rook so it attacks f1 (the kingside crossing
	// square) should suppress only the kingside castle.
	require.NoError(t, b.SetFEN("r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1"))
	kingside, queenside = false, false
	for _, m := range chess.GenerateMoves(b) {
		if m.From != e1 || m.Type != chess.Castle {
			continue
		}
		_, col := m.To.RowCol()
		if col == 6 {
			kingside = true
		}
		if col == 2 {
			queenside = true
		}
	}
	require.False(t, kingside, "kingside castle should be illegal through an attacked f1")
	require.True(t, queenside)
}

// TestScenarioBackRankMateForBlackIsSignedNegative mirrors scenario 1
// with Black to move and mated White: scores are always signed from
// White's perspective, so a forced mate *for* Black must come back
// strongly negative here, not positive the way a side-relative
// (negamax) root score would report it.
func TestScenarioBackRankMateForBlackIsSignedNegative(t *testing.T) {
	fen := "4q2k/8/8/8/8/8/5PPP/6K1 b - - 0 1"

	b := &chess.Board{}
	require.NoError(t, b.SetFEN(fen))
	s := NewSearcher(b, 1)
	deadline := time.Now().Add(10 * time.Second)

	var lastScore int
	move := s.Search(2, deadline, func(info Info) { lastScore = info.Score })
	require.False(t, move.IsNull())
	require.Less(t, lastScore, -mateScore+MaxPly, "mate for Black must be reported as a strongly negative, White-signed score")

	undo := b.MakeMove(move, false)
	defer b.UndoMove(undo)

	require.True(t, b.InCheck(chess.White))
	require.Empty(t, chess.LegalMoves(b), "white should have no legal reply to mate")
}

// TestMateDistanceMonotonicity: invariant 5 — searching at depth >=
// 2N for a forced mate in N returns a score >= MATE - 2N.
func TestMateDistanceMonotonicity(t *testing.T) {
	fen := "6k1/5ppp/8/8/8/8/8/4Q2K w - - 0 1" // mate in 1 (N=1)
	const n = 1

	b := &chess.Board{}
	require.NoError(t, b.SetFEN(fen))
	s := NewSearcher(b, 1)
	deadline := time.Now().Add(10 * time.Second)

	var lastScore int
	s.Search(2*n, deadline, func(info Info) {
		lastScore = info.Score
	})
	require.GreaterOrEqual(t, lastScore, mateScore-2*n)
}
