package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMakeUndoRestoresState plays every legal move from a set of
// representative positions and checks that UndoMove restores the
// exact board state MakeMove started from: piece placement, side to
// move, castling rights, en-passant square, and Zobrist hash.
func TestMakeUndoRestoresState(t *testing.T) {
	positions := []string{
		FENStartPosition,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range positions {
		b := &Board{}
		require.NoError(t, b.SetFEN(fen))

		before := *b
		for _, m := range GenerateMoves(b) {
			undo := b.MakeMove(m, false)
			b.UndoMove(undo)

			require.Equal(t, before.pieces, b.pieces, "fen %s move %s: pieces diverged", fen, m)
			require.Equal(t, before.byColor, b.byColor, "fen %s move %s: byColor diverged", fen, m)
			require.Equal(t, before.byKind, b.byKind, "fen %s move %s: byKind diverged", fen, m)
			require.Equal(t, before.SideToMove, b.SideToMove, "fen %s move %s: side to move diverged", fen, m)
			require.Equal(t, before.Castling, b.Castling, "fen %s move %s: castling diverged", fen, m)
			require.Equal(t, before.EPSquare, b.EPSquare, "fen %s move %s: en passant diverged", fen, m)
			require.Equal(t, before.Hash, b.Hash, "fen %s move %s: hash diverged", fen, m)
		}
	}
}

// TestCastlingRightsLostOnRookCapture covers spec.md's resolved Open
// Question: capturing an enemy rook on its home square revokes that
// side's castling right even though the capturing side never moved
// its own king or rook.
func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	b := &Board{}
	// A white bishop on e5 can capture the black rook sitting on h8.
	require.NoError(t, b.SetFEN("4k2r/8/8/4B3/8/8/8/4K3 w k - 0 1"))
	require.True(t, b.Castling.has(BlackKingside))

	e5, _ := ParseSquare("e5")
	h8 := H8
	m := Move{From: e5, To: h8, Type: Normal}
	b.MakeMove(m, false)
	require.False(t, b.Castling.has(BlackKingside))
}

// TestEnPassantCaptureRemovesPawn checks that playing an en-passant
// capture removes the captured pawn from its actual square, not the
// destination square.
func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	b := &Board{}
	require.NoError(t, b.SetFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"))

	e5, _ := ParseSquare("e5")
	d5, _ := ParseSquare("d5")
	d6, _ := ParseSquare("d6")
	m := Move{From: e5, To: d6, Type: EnPassant}
	undo := b.MakeMove(m, false)
	require.True(t, b.PieceAt(d5).IsEmpty())
	require.Equal(t, Piece{Pawn, White}, b.PieceAt(d6))

	b.UndoMove(undo)
	require.Equal(t, Piece{Pawn, Black}, b.PieceAt(d5))
	require.True(t, b.PieceAt(d6).IsEmpty())
}
