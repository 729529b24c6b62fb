package chess

// CastleRights is a 4-bit mask of which castling moves are still
// available. It mirrors the six per-side "king/rook has moved"
// booleans spec.md's data model describes: losing the right is
// permanent, whether because the king or the matching rook moved, or
// because the rook was captured on its home square (see MakeMove).
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

func (r CastleRights) has(right CastleRights) bool { return r&right != 0 }
