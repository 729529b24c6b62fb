package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// SetFEN resets b to the position described by fen. Only the first
// four of FEN's six space-separated fields carry semantic weight here
// (piece placement, side to move, castling rights, en-passant
// target); any fields after the fourth, such as the halfmove clock
// and fullmove number, are neither parsed nor validated, and Board
// does not track them.
func (b *Board) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return parseErrorf("fen", "%q needs at least 4 fields, got %d", fen, len(fields))
	}

	var pieces [64]Piece
	for i := range pieces {
		pieces[i] = Empty
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return parseErrorf("fen.placement", "%q must have 8 ranks, got %d", fields[0], len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, color, err := pieceFromLetter(byte(ch))
			if err != nil {
				return parseErrorf("fen.placement", "rank %d: %v", i+1, err)
			}
			if file > 7 {
				return parseErrorf("fen.placement", "rank %d overflows the board", i+1)
			}
			pieces[NewSquare(file, rank)] = Piece{Kind: kind, Color: color}
			file++
		}
		if file != 8 {
			return parseErrorf("fen.placement", "rank %d has %d files, want 8", i+1, file)
		}
	}

	var sideToMove Color
	switch fields[1] {
	case "w":
		sideToMove = White
	case "b":
		sideToMove = Black
	default:
		return parseErrorf("fen.sideToMove", "%q must be w or b", fields[1])
	}

	var castling CastleRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling |= WhiteKingside
			case 'Q':
				castling |= WhiteQueenside
			case 'k':
				castling |= BlackKingside
			case 'q':
				castling |= BlackQueenside
			default:
				return parseErrorf("fen.castling", "bad castling character %q", string(ch))
			}
		}
	}

	epSquare := NoSquare
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return parseErrorf("fen.epSquare", "%v", err)
		}
		epSquare = sq
	}

	b.pieces = pieces
	b.byColor = [2]Bitboard{}
	b.byKind = [numPieceKinds]Bitboard{}
	for sq := Square(0); sq < 64; sq++ {
		p := pieces[sq]
		if p.IsEmpty() {
			continue
		}
		setBit(&b.byColor[p.Color], sq)
		setBit(&b.byKind[p.Kind], sq)
	}
	b.SideToMove = sideToMove
	b.Castling = castling
	b.EPSquare = epSquare
	b.Hash = computeHash(&b.pieces, sideToMove, castling, epSquare)
	return nil
}

func pieceFromLetter(ch byte) (PieceKind, Color, error) {
	color := White
	lower := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
	} else {
		lower = ch + ('a' - 'A')
	}
	for kind, letter := range pieceLetters {
		if letter == lower {
			return PieceKind(kind), color, nil
		}
	}
	return NoPieceKind, NoColor, fmt.Errorf("unrecognized piece character %q", string(ch))
}

// FEN renders b's current position. The halfmove clock and fullmove
// number are not tracked by Board, so they are always emitted as "0
// 1"; callers that need accurate counters track them outside this
// package, as spec.md directs.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[NewSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.Castling == 0 {
		sb.WriteByte('-')
	} else {
		for _, rc := range []struct {
			right CastleRights
			ch    byte
		}{
			{WhiteKingside, 'K'}, {WhiteQueenside, 'Q'},
			{BlackKingside, 'k'}, {BlackQueenside, 'q'},
		} {
			if b.Castling.has(rc.right) {
				sb.WriteByte(rc.ch)
			}
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.EPSquare.String())
	sb.WriteString(" 0 1")
	return sb.String()
}
