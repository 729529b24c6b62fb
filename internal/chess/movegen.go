package chess

// GenerateMoves returns every pseudo-legal move for the side to move:
// legal in every respect except that it may leave its own king in
// check. LegalMoves filters those out by make/check/undo.
func GenerateMoves(b *Board) []Move {
	moves := make([]Move, 0, 48)
	us, them := b.SideToMove, b.SideToMove.Opposite()
	occ := b.occupancy()
	ours := b.byColor[us]

	moves = genPawnMoves(b, us, occ, moves)

	for _, kind := range [3]PieceKind{Knight, Bishop, Rook} {
		bb := b.byKind[kind] & ours
		for bb != 0 {
			from := popLSB(&bb)
			targets := pieceAttacks(kind, from, occ) &^ ours
			moves = appendTargets(moves, from, targets, NoPieceKind)
		}
	}
	queens := b.byKind[Queen] & ours
	for queens != 0 {
		from := popLSB(&queens)
		targets := queenAttacks(from, occ) &^ ours
		moves = appendTargets(moves, from, targets, NoPieceKind)
	}

	kingBB := b.byKind[King] & ours
	if kingBB != 0 {
		from := lsbSquare(kingBB)
		targets := kingAttacks[from] &^ ours
		moves = appendTargets(moves, from, targets, NoPieceKind)
		moves = genCastles(b, us, occ, from, moves)
	}

	_ = them
	return moves
}

// pieceAttacks dispatches to the right attack table for a non-pawn,
// non-king, non-queen kind.
func pieceAttacks(kind PieceKind, sq Square, occ Bitboard) Bitboard {
	switch kind {
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return bishopAttacks(sq, occ)
	case Rook:
		return rookAttacks(sq, occ)
	default:
		panic("chess: pieceAttacks given an unsupported kind")
	}
}

func appendTargets(moves []Move, from Square, targets Bitboard, _ PieceKind) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		moves = append(moves, Move{From: from, To: to, Type: Normal})
	}
	return moves
}

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

func genPawnMoves(b *Board, us Color, occ Bitboard, moves []Move) []Move {
	pawns := b.byKind[Pawn] & b.byColor[us]
	them := b.byColor[us.Opposite()]

	forward := 1
	startRank, promoRank, doublePushRank := 1, 7, rank3
	if us == Black {
		forward = -1
		startRank, promoRank, doublePushRank = 6, 0, rank6
	}

	for bb := pawns; bb != 0; {
		from := popLSB(&bb)
		rank := from.Rank()

		one := NewSquare(from.File(), rank+forward)
		if !hasBit(occ, one) {
			moves = appendPawnAdvance(moves, from, one, promoRank)
			if rank == startRank {
				two := NewSquare(from.File(), rank+2*forward)
				if doublePushRank == one.Rank() && !hasBit(occ, two) {
					moves = append(moves, Move{From: from, To: two, Type: Normal})
				}
			}
		}

		attacks := pawnAttacks[us][from]
		captures := attacks & them
		for captures != 0 {
			to := popLSB(&captures)
			moves = appendPawnAdvance(moves, from, to, promoRank)
		}
		if b.EPSquare != NoSquare && hasBit(attacks, b.EPSquare) {
			moves = append(moves, Move{From: from, To: b.EPSquare, Type: EnPassant})
		}
	}
	return moves
}

func appendPawnAdvance(moves []Move, from, to Square, promoRank int) []Move {
	if to.Rank() == promoRank {
		for _, k := range promotionKinds {
			moves = append(moves, Move{From: from, To: to, Type: Promotion, Promotion: k})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Type: Normal})
}

// genCastles appends any pseudo-legal castling moves: rights still
// held, the squares between king and rook empty, and the king not
// currently in check nor passing through or landing on an attacked
// square — the full "current, crossed, and destination square" check
// spec requires, not just the first two.
func genCastles(b *Board, us Color, occ Bitboard, kingFrom Square, moves []Move) []Move {
	them := us.Opposite()
	type castle struct {
		right         CastleRights
		kingTo        Square
		mustBeEmpty   Bitboard
		mustNotAttack [3]Square
	}
	var candidates []castle
	if us == White {
		candidates = []castle{
			{WhiteKingside, G1, singleBit(F1) | singleBit(G1), [3]Square{E1, F1, G1}},
			{WhiteQueenside, C1, singleBit(B1) | singleBit(C1) | singleBit(D1), [3]Square{E1, D1, C1}},
		}
	} else {
		candidates = []castle{
			{BlackKingside, G8, singleBit(F8) | singleBit(G8), [3]Square{E8, F8, G8}},
			{BlackQueenside, C8, singleBit(B8) | singleBit(C8) | singleBit(D8), [3]Square{E8, D8, C8}},
		}
	}
	for _, c := range candidates {
		if !b.Castling.has(c.right) {
			continue
		}
		if occ&c.mustBeEmpty != 0 {
			continue
		}
		attacked := false
		for _, sq := range c.mustNotAttack {
			if b.SquareAttacked(sq, them) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		moves = append(moves, Move{From: kingFrom, To: c.kingTo, Type: Castle})
	}
	return moves
}

// GenerateCaptures filters GenerateMoves down to captures and
// promotions, the set quiescence search probes. Deriving it from the
// full generator rather than writing a second, leaner one trades a
// little speed for one fewer place pawn/slider logic can diverge.
func GenerateCaptures(b *Board) []Move {
	all := GenerateMoves(b)
	captures := make([]Move, 0, len(all))
	for _, m := range all {
		if b.IsCapture(m) || m.Type == Promotion {
			captures = append(captures, m)
		}
	}
	return captures
}

// LegalMoves filters GenerateMoves down to moves that do not leave
// the mover's own king in check, by playing each on b itself, checking,
// and undoing it again (no copy of the board is made).
func LegalMoves(b *Board) []Move {
	pseudo := GenerateMoves(b)
	legal := make([]Move, 0, len(pseudo))
	us := b.SideToMove
	for _, m := range pseudo {
		undo := b.MakeMove(m, false)
		if !b.InCheck(us) {
			legal = append(legal, m)
		}
		b.UndoMove(undo)
	}
	return legal
}
