package chess

import "math/rand"

// zobristSeed is fixed so that hashes are reproducible across runs
// and processes, per spec.md's "initialised once with a fixed seed"
// requirement. Its value has no significance beyond being constant.
const zobristSeed = 0x5EED_C0FFEE_1298

var (
	pieceKeys      [2][numPieceKinds][64]uint64
	sideToMoveKey  uint64
	castleKeys     [4]uint64 // indexed by bit position of a single CastleRights flag
	epFileKeys     [8]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for color := 0; color < 2; color++ {
		for kind := 0; kind < numPieceKinds; kind++ {
			for sq := 0; sq < 64; sq++ {
				pieceKeys[color][kind][sq] = rng.Uint64()
			}
		}
	}
	sideToMoveKey = rng.Uint64()
	for i := range castleKeys {
		castleKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

func pieceKey(p Piece, sq Square) uint64 {
	return pieceKeys[p.Color][p.Kind][sq]
}

// castleRightKey returns the key for a single named right (one of the
// four CastleRights constants), not the whole mask.
func castleRightKey(right CastleRights) uint64 {
	switch right {
	case WhiteKingside:
		return castleKeys[0]
	case WhiteQueenside:
		return castleKeys[1]
	case BlackKingside:
		return castleKeys[2]
	case BlackQueenside:
		return castleKeys[3]
	default:
		panic("chess: castleRightKey given non-singleton mask")
	}
}

// epKey returns the Zobrist contribution of an en-passant target
// square, keyed only by file as spec.md specifies.
func epKey(sq Square) uint64 {
	if sq == NoSquare {
		return 0
	}
	return epFileKeys[sq.File()]
}

// castleHashDelta XORs in the keys for every right present in `from`
// but absent from `to` (rights are only ever lost, never regained
// mid-game, so this is always the set of newly-lost rights).
func castleHashDelta(from, to CastleRights) uint64 {
	lost := from &^ to
	var delta uint64
	for _, right := range [4]CastleRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if lost.has(right) {
			delta ^= castleRightKey(right)
		}
	}
	return delta
}

// computeHash derives a Zobrist hash from scratch given full board
// state. Used when loading a FEN and to cross-check incremental
// maintenance in tests; never called from the hot path.
func computeHash(pieces *[64]Piece, sideToMove Color, castling CastleRights, epSquare Square) uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		p := pieces[sq]
		if !p.IsEmpty() {
			h ^= pieceKey(p, sq)
		}
	}
	if sideToMove == Black {
		h ^= sideToMoveKey
	}
	for _, right := range [4]CastleRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if castling.has(right) {
			h ^= castleRightKey(right)
		}
	}
	h ^= epKey(epSquare)
	return h
}
