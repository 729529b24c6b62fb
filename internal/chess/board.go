package chess

// FENStartPosition is the standard chess starting position.
const FENStartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is the authoritative position: a mailbox of pieces mirrored
// by per-color and per-kind bitboards, side to move, castling rights,
// an optional en-passant target, and a running Zobrist hash kept in
// sync with every mutation.
type Board struct {
	pieces     [64]Piece
	byColor    [2]Bitboard
	byKind     [numPieceKinds]Bitboard
	SideToMove Color
	Castling   CastleRights
	EPSquare   Square
	Hash       uint64
}

// NewBoard returns the board set up at the standard starting
// position.
func NewBoard() *Board {
	b := &Board{}
	if err := b.SetFEN(FENStartPosition); err != nil {
		panic("chess: built-in starting FEN failed to parse: " + err.Error())
	}
	return b
}

// PieceAt returns the piece occupying sq (Empty if none).
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[sq] }

// KingSquare returns the square holding color's king, and false if
// that king is not on the board (a scratch/test position).
func (b *Board) KingSquare(color Color) (Square, bool) {
	kingBB := b.byKind[King] & b.byColor[color]
	if kingBB == 0 {
		return NoSquare, false
	}
	return lsbSquare(kingBB), true
}

func (b *Board) occupancy() Bitboard { return b.byColor[White] | b.byColor[Black] }

// setSquare places p on sq, which must currently be empty, and
// updates the incremental hash.
func (b *Board) setSquare(sq Square, p Piece) {
	b.pieces[sq] = p
	setBit(&b.byColor[p.Color], sq)
	setBit(&b.byKind[p.Kind], sq)
	b.Hash ^= pieceKey(p, sq)
}

// clearSquare removes whatever occupies sq, updating the incremental
// hash. A no-op on an already-empty square.
func (b *Board) clearSquare(sq Square) {
	p := b.pieces[sq]
	if p.IsEmpty() {
		return
	}
	clearBit(&b.byColor[p.Color], sq)
	clearBit(&b.byKind[p.Kind], sq)
	b.Hash ^= pieceKey(p, sq)
	b.pieces[sq] = Empty
}

// relocate moves whatever occupies from onto to, clearing any piece
// already on to first (a capture, if one is present).
func (b *Board) relocate(from, to Square) {
	p := b.pieces[from]
	b.clearSquare(to)
	b.clearSquare(from)
	b.setSquare(to, p)
}

// IsCapture reports whether the pseudo-legal move m captures a piece,
// including en passant. It must be called before m is played.
func (b *Board) IsCapture(m Move) bool {
	if m.Type == EnPassant {
		return true
	}
	return !b.pieces[m.To].IsEmpty()
}

// MakeMove plays m, mutating the board in place, and returns the
// record needed to reverse it. When hypothetical is true, the side to
// move is left unchanged and the caller is expected to discard the
// resulting position rather than call UndoMove on it; this supports
// scratch what-if probes distinct from the make/undo pairing the
// search loop uses for legality filtering.
func (b *Board) MakeMove(m Move, hypothetical bool) MoveUndo {
	moved := b.pieces[m.From]
	var captured Piece
	if m.Type == EnPassant {
		captured = b.pieces[enPassantCaptureSquare(m)]
	} else {
		captured = b.pieces[m.To]
	}

	assert(captured.Kind != King, "illegal king capture")

	undo := MoveUndo{
		Move:            m,
		Captured:        captured,
		Moved:           moved,
		PriorEPSquare:   b.EPSquare,
		PriorCastling:   b.Castling,
		PriorHash:       b.Hash,
		wasHypothetical: hypothetical,
	}

	b.Hash ^= epKey(b.EPSquare)
	newEP := NoSquare

	switch m.Type {
	case Normal:
		b.relocate(m.From, m.To)
		if moved.Kind == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
			// The crossed square becomes the en-passant target only when an
			// enemy pawn stands ready to capture onto it, so positions that
			// differ only by an uncapturable double push hash the same.
			crossed := NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
			if pawnAttacks[moved.Color][crossed]&b.byKind[Pawn]&b.byColor[moved.Color.Opposite()] != 0 {
				newEP = crossed
			}
		}
	case Promotion:
		b.clearSquare(m.From)
		b.clearSquare(m.To)
		b.setSquare(m.To, Piece{Kind: m.Promotion, Color: moved.Color})
	case Castle:
		b.relocate(m.From, m.To)
		rookFrom, rookTo := castleRookSquares(m.To)
		b.relocate(rookFrom, rookTo)
	case EnPassant:
		b.clearSquare(enPassantCaptureSquare(m))
		b.relocate(m.From, m.To)
	}

	b.Hash ^= epKey(newEP)
	b.EPSquare = newEP

	newCastling := b.recomputeCastlingRights()
	b.Hash ^= castleHashDelta(b.Castling, newCastling)
	b.Castling = newCastling

	if !hypothetical {
		b.SideToMove = b.SideToMove.Opposite()
		b.Hash ^= sideToMoveKey
	}

	return undo
}

// UndoMove reverses the MakeMove call that produced undo. Calling it
// with the undo record from a hypothetical MakeMove is supported but
// not required; MakeMove's own doc comment explains why callers
// normally never do that.
func (b *Board) UndoMove(undo MoveUndo) {
	if !undo.wasHypothetical {
		b.SideToMove = b.SideToMove.Opposite()
		b.Hash ^= sideToMoveKey
	}

	b.Hash ^= castleHashDelta(undo.PriorCastling, b.Castling)
	b.Castling = undo.PriorCastling

	b.Hash ^= epKey(b.EPSquare)
	b.EPSquare = undo.PriorEPSquare
	b.Hash ^= epKey(b.EPSquare)

	m := undo.Move
	switch m.Type {
	case Normal:
		b.relocate(m.To, m.From)
		if !undo.Captured.IsEmpty() {
			b.setSquare(m.To, undo.Captured)
		}
	case Promotion:
		b.clearSquare(m.To)
		if !undo.Captured.IsEmpty() {
			b.setSquare(m.To, undo.Captured)
		}
		b.setSquare(m.From, undo.Moved)
	case Castle:
		rookFrom, rookTo := castleRookSquares(m.To)
		b.relocate(rookTo, rookFrom)
		b.relocate(m.To, m.From)
	case EnPassant:
		b.relocate(m.To, m.From)
		b.setSquare(enPassantCaptureSquare(m), undo.Captured)
	}
}

// enPassantCaptureSquare returns the square of the pawn an en-passant
// move captures: the destination file, the origin's rank.
func enPassantCaptureSquare(m Move) Square {
	return NewSquare(m.To.File(), m.From.Rank())
}

// castleRookSquares returns the rook's home square and the square it
// crosses to, given the king's destination square.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	default:
		panic("chess: castleRookSquares given a non-castling destination")
	}
}

// recomputeCastlingRights derives the rights still available from
// current occupancy of the four home squares plus the two king home
// squares: a right is lost (and never regained) the moment its king
// leaves home, its rook leaves home, or its rook is captured there.
// This covers the captured-rook case uniformly, since it looks at
// what is actually on the home square rather than who just moved.
func (b *Board) recomputeCastlingRights() CastleRights {
	rights := b.Castling
	if b.pieces[E1] != (Piece{King, White}) {
		rights &^= WhiteKingside | WhiteQueenside
	}
	if b.pieces[H1] != (Piece{Rook, White}) {
		rights &^= WhiteKingside
	}
	if b.pieces[A1] != (Piece{Rook, White}) {
		rights &^= WhiteQueenside
	}
	if b.pieces[E8] != (Piece{King, Black}) {
		rights &^= BlackKingside | BlackQueenside
	}
	if b.pieces[H8] != (Piece{Rook, Black}) {
		rights &^= BlackKingside
	}
	if b.pieces[A8] != (Piece{Rook, Black}) {
		rights &^= BlackQueenside
	}
	return rights
}
