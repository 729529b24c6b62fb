package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		FENStartPosition,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range cases {
		b := &Board{}
		require.NoError(t, b.SetFEN(fen))
		require.Equal(t, fen, b.FEN(), "round-trip of %s", fen)
	}
}

func TestSetFENRejectsMalformedInput(t *testing.T) {
	badFENs := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBXR w KQkq - 0 1",
	}
	for _, fen := range badFENs {
		b := &Board{}
		err := b.SetFEN(fen)
		require.Error(t, err, "fen %q should be rejected", fen)
		require.ErrorIs(t, err, ErrMalformed)
	}
}
