package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIncrementalHashMatchesFromScratch walks every legal move from a
// handful of positions and checks that the incrementally maintained
// Board.Hash always equals a hash computed from scratch off the
// resulting piece placement, side to move, castling rights, and
// en-passant square.
func TestIncrementalHashMatchesFromScratch(t *testing.T) {
	positions := []string{
		FENStartPosition,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range positions {
		b := &Board{}
		require.NoError(t, b.SetFEN(fen))
		require.Equal(t, computeHash(&b.pieces, b.SideToMove, b.Castling, b.EPSquare), b.Hash)

		for _, m := range GenerateMoves(b) {
			undo := b.MakeMove(m, false)
			want := computeHash(&b.pieces, b.SideToMove, b.Castling, b.EPSquare)
			require.Equal(t, want, b.Hash, "fen %s move %s", fen, m)
			b.UndoMove(undo)
		}
	}
}

// TestZobristIsDeterministic checks that the same FEN always produces
// the same hash across independent Board instances, as required by a
// fixed-seed Zobrist scheme.
func TestZobristIsDeterministic(t *testing.T) {
	a, c := &Board{}, &Board{}
	require.NoError(t, a.SetFEN(FENStartPosition))
	require.NoError(t, c.SetFEN(FENStartPosition))
	require.Equal(t, a.Hash, c.Hash)
}
