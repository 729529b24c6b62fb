package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStartPositionMoveCount pins down the textbook 20-move count for
// the starting position, catching any off-by-one in pawn double-push
// or knight-jump generation.
func TestStartPositionMoveCount(t *testing.T) {
	b := NewBoard()
	require.Len(t, LegalMoves(b), 20)
}

// TestPerftKnownPositions cross-checks full-tree node counts against
// the well-known Chess Programming Wiki perft positions, the
// standard way to catch subtle move-generation bugs (castling
// legality, en-passant discovered checks, pinned pieces) that a
// single-position spot check would miss.
func TestPerftKnownPositions(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
		want  uint64
	}{
		{FENStartPosition, 3, 8902},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, c := range cases {
		b := &Board{}
		require.NoError(t, b.SetFEN(c.fen))
		require.Equal(t, c.want, perft(b, c.depth), "fen %s depth %d", c.fen, c.depth)
	}
}

func perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range LegalMoves(b) {
		undo := b.MakeMove(m, false)
		nodes += perft(b, depth-1)
		b.UndoMove(undo)
	}
	return nodes
}

// TestEnPassantOnlyGeneratedWhenAvailable checks that a pawn capture
// onto the en-passant target is only offered when EPSquare is set,
// and that a diagonal move onto an empty square without an
// en-passant target is never generated.
func TestEnPassantOnlyGeneratedWhenAvailable(t *testing.T) {
	b := &Board{}
	require.NoError(t, b.SetFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"))
	d6, _ := ParseSquare("d6")
	e5, _ := ParseSquare("e5")

	found := false
	for _, m := range GenerateMoves(b) {
		if m.From == e5 && m.To == d6 {
			found = true
			require.Equal(t, EnPassant, m.Type)
		}
	}
	require.True(t, found, "expected en passant capture to e5xd6")

	require.NoError(t, b.SetFEN("4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1"))
	for _, m := range GenerateMoves(b) {
		require.False(t, m.From == e5 && m.To == d6, "en passant offered without a target square set")
	}
}

// TestCastlingBlockedByAttackedSquare checks that a king cannot
// castle out of check (its own square e1 is attacked), even when the
// squares between king and rook are otherwise empty.
func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	b := &Board{}
	require.NoError(t, b.SetFEN("4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1"))
	for _, m := range GenerateMoves(b) {
		require.NotEqual(t, Castle, m.Type, "castling should be illegal while the king on e1 is in check")
	}
}

// TestCastlingBlockedByAttackedDestination checks that a king cannot
// castle into check even when its current square and the square it
// crosses are both safe — only the landing square is attacked here.
func TestCastlingBlockedByAttackedDestination(t *testing.T) {
	b := &Board{}
	require.NoError(t, b.SetFEN("6r1/8/8/8/8/8/8/R3K2R w KQ - 0 1"))

	var sawQueenside bool
	for _, m := range GenerateMoves(b) {
		if m.Type != Castle {
			continue
		}
		_, col := m.To.RowCol()
		require.NotEqual(t, 6, col, "castling onto g1 should be illegal while a rook attacks it")
		if col == 2 {
			sawQueenside = true
		}
	}
	require.True(t, sawQueenside, "queenside castle should still be legal")
}
