package board

import (
	"fmt"
	"strconv"
	"strings"

	bb "bitknight/bitboard"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceFromChar = map[byte]struct {
	kind   bb.PieceKind
	colour bb.Colour
}{
	'P': {bb.Pawn, bb.White}, 'N': {bb.Knight, bb.White}, 'B': {bb.Bishop, bb.White},
	'R': {bb.Rook, bb.White}, 'Q': {bb.Queen, bb.White}, 'K': {bb.King, bb.White},
	'p': {bb.Pawn, bb.Black}, 'n': {bb.Knight, bb.Black}, 'b': {bb.Bishop, bb.Black},
	'r': {bb.Rook, bb.Black}, 'q': {bb.Queen, bb.Black}, 'k': {bb.King, bb.Black},
}

var charFromPiece = map[bb.PieceKind][2]byte{
	bb.Pawn:   {'P', 'p'},
	bb.Knight: {'N', 'n'},
	bb.Bishop: {'B', 'b'},
	bb.Rook:   {'R', 'r'},
	bb.Queen:  {'Q', 'q'},
	bb.King:   {'K', 'k'},
}

// ParseFEN parses a FEN string into a new Position. Unlike the bare
// best-effort reading of a FEN some engines do, this rejects structurally
// broken input outright rather than silently producing an inconsistent
// Position: a malformed piece-placement field, an out-of-range rank count,
// or a garbled side-to-move/castling/en-passant field is an error. Numeric
// fields (halfmove clock, fullmove number) fall back to 0 and 1 instead,
// since those two are advisory bookkeeping rather than structural.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: malformed FEN %q: need at least 4 fields, got %d", fen, len(fields))
	}

	p := &Position{EnPassant: bb.NoSquare, FullmoveNum: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: malformed FEN placement %q: need 8 ranks, got %d", fields[0], len(ranks))
	}
	for r := 0; r < 8; r++ {
		rank := ranks[7-r]
		file := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			info, ok := pieceFromChar[c]
			if !ok {
				return nil, fmt.Errorf("board: malformed FEN placement: unknown piece letter %q", c)
			}
			if file >= 8 {
				return nil, fmt.Errorf("board: malformed FEN placement: rank %d overflows 8 files", r+1)
			}
			sq := bb.Square(r*8 + file)
			idx := bb.PieceIndex(info.colour, info.kind)
			p.Pieces[idx] = bb.SetBit(p.Pieces[idx], sq)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("board: malformed FEN placement: rank %d covers %d files, want 8", r+1, file)
		}
	}

	switch fields[1] {
	case "w":
		p.ToMove = bb.White
	case "b":
		p.ToMove = bb.Black
	default:
		return nil, fmt.Errorf("board: malformed FEN side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.CastleRights |= CastleWK
			case 'Q':
				p.CastleRights |= CastleWQ
			case 'k':
				p.CastleRights |= CastleBK
			case 'q':
				p.CastleRights |= CastleBQ
			default:
				return nil, fmt.Errorf("board: malformed FEN castling rights %q", fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := parseSquareName(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: malformed FEN en-passant target: %w", err)
		}
		p.EnPassant = sq
	}

	p.HalfmoveClock = 0
	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil && v >= 0 {
			p.HalfmoveClock = v
		}
	}
	p.FullmoveNum = 1
	if len(fields) > 5 {
		if v, err := strconv.Atoi(fields[5]); err == nil && v >= 1 {
			p.FullmoveNum = v
		}
	}

	p.rebuildOccupancy()
	p.Hash = p.computeHash()
	return p, nil
}

func parseSquareName(s string) (bb.Square, error) {
	if len(s) != 2 {
		return bb.NoSquare, fmt.Errorf("square %q must be 2 characters", s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return bb.NoSquare, fmt.Errorf("square %q out of range", s)
	}
	return bb.Square(int(rank-'1')*8 + int(file-'a')), nil
}

func squareName(sq bb.Square) string {
	file := byte('a' + sq.File())
	rank := byte('1' + sq.Rank())
	return string([]byte{file, rank})
}

// ToFEN renders p in Forsyth-Edwards notation.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := bb.Square(r*8 + f)
			kind, colour, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece[kind][colour])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.ToMove == bb.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.CastleRights == 0 {
		sb.WriteByte('-')
	} else {
		if p.CastleRights&CastleWK != 0 {
			sb.WriteByte('K')
		}
		if p.CastleRights&CastleWQ != 0 {
			sb.WriteByte('Q')
		}
		if p.CastleRights&CastleBK != 0 {
			sb.WriteByte('k')
		}
		if p.CastleRights&CastleBQ != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.EnPassant == bb.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(squareName(p.EnPassant))
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNum)
	return sb.String()
}
