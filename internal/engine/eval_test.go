package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algerbrex/gryphon/internal/chess"
)

// TestEvaluateStartPositionIsBalanced checks that the symmetric
// starting position scores exactly zero, since neither side has any
// material or positional edge yet.
func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	b := chess.NewBoard()
	require.Zero(t, Evaluate(b))
}

// TestEvaluateMirroredPositionIsAntisymmetric checks that swapping
// White and Black piece-for-piece across the board (color and rank
// mirrored) negates the score, since Evaluate is always reported from
// White's perspective.
func TestEvaluateMirroredPositionIsAntisymmetric(t *testing.T) {
	white := &chess.Board{}
	require.NoError(t, white.SetFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"))
	black := &chess.Board{}
	require.NoError(t, black.SetFEN("4k3/4p3/8/8/8/8/8/4K3 w - - 0 1"))

	require.Equal(t, Evaluate(white), -Evaluate(black))
}
