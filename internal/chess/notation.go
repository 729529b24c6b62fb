package chess

// ParseUCIMove decodes a UCI move string ("e2e4", "e7e8q") against b,
// inferring its Type from context the wire format itself omits: a
// king moving two files is a castle, a pawn moving diagonally onto an
// empty square is en passant, a fifth character is a promotion, and
// anything else is a normal move.
func ParseUCIMove(b *Board, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, parseErrorf("move", "%q must be 4 or 5 characters", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, parseErrorf("move.from", "%q: %v", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, parseErrorf("move.to", "%q: %v", s, err)
	}

	moved := b.PieceAt(from)

	if len(s) == 5 {
		kind, _, err := pieceFromLetter(s[4])
		if err != nil || kind == King || kind == Pawn {
			return Move{}, parseErrorf("move.promotion", "%q: bad promotion piece %q", s, string(s[4]))
		}
		return Move{From: from, To: to, Type: Promotion, Promotion: kind}, nil
	}

	if moved.Kind == King && abs(to.File()-from.File()) == 2 {
		return Move{From: from, To: to, Type: Castle}, nil
	}

	if moved.Kind == Pawn && from.File() != to.File() && b.PieceAt(to).IsEmpty() {
		return Move{From: from, To: to, Type: EnPassant}, nil
	}

	return Move{From: from, To: to, Type: Normal}, nil
}

// String renders m in UCI's long algebraic form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Type == Promotion {
		s += string(pieceLetters[m.Promotion])
	}
	return s
}
