package engine

import "github.com/algerbrex/gryphon/internal/chess"

// Perft counts the leaf nodes of the full game tree below b to the
// given depth, the standard move-generator correctness benchmark: any
// mismatch against a known-good EPD node count points at a bug in
// move generation, castling rights, or en-passant handling.
func Perft(b *chess.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range chess.LegalMoves(b) {
		undo := b.MakeMove(m, false)
		nodes += Perft(b, depth-1)
		b.UndoMove(undo)
	}
	return nodes
}

// DividePerft returns the Perft count contributed by each legal move
// at the root, keyed by its UCI string, for tracking down exactly
// which branch of the tree diverges from an expected count.
func DividePerft(b *chess.Board, depth int) map[string]uint64 {
	results := make(map[string]uint64)
	if depth == 0 {
		return results
	}
	for _, m := range chess.LegalMoves(b) {
		undo := b.MakeMove(m, false)
		results[m.String()] = Perft(b, depth-1)
		b.UndoMove(undo)
	}
	return results
}
