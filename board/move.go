package board

import (
	"fmt"

	bb "bitknight/bitboard"
)

// Move packs a chess move into 16 bits: bits 0-5 the from-square, bits 6-11
// the to-square, bits 12-15 a flag from the table below.
type Move uint16

// Move flags, per the bit layout that also encodes is_capture (bit 2) and
// is_promotion (bit 3) as derived predicates.
const (
	FlagQuiet Move = iota
	FlagDoublePawnPush
	FlagKingCastle
	FlagQueenCastle
	FlagCapture
	FlagEnPassant
	_reserved6
	_reserved7
	FlagKnightPromo
	FlagBishopPromo
	FlagRookPromo
	FlagQueenPromo
	FlagKnightPromoCapture
	FlagBishopPromoCapture
	FlagRookPromoCapture
	FlagQueenPromoCapture
)

const (
	moveFromMask  = 0x3F
	moveToShift   = 6
	moveToMask    = 0x3F
	moveFlagShift = 12
)

// NewMove packs from, to and flag into a Move.
func NewMove(from, to bb.Square, flag Move) Move {
	return Move(uint16(from)&moveFromMask) |
		Move(uint16(to)&moveToMask)<<moveToShift |
		flag<<moveFlagShift
}

// From returns the move's source square.
func (m Move) From() bb.Square { return bb.Square(m & moveFromMask) }

// To returns the move's destination square.
func (m Move) To() bb.Square { return bb.Square((m >> moveToShift) & moveToMask) }

// Flag returns the move's special-move flag.
func (m Move) Flag() Move { return (m >> moveFlagShift) & 0xF }

// IsCapture reports whether the move's flag has the capture bit set.
func (m Move) IsCapture() bool { return m.Flag()&FlagCapture != 0 }

// IsPromotion reports whether the move's flag has the promotion bit set.
func (m Move) IsPromotion() bool { return m.Flag()&FlagKnightPromo != 0 }

// IsCastle reports whether the move is a king-side or queen-side castle.
func (m Move) IsCastle() bool { f := m.Flag(); return f == FlagKingCastle || f == FlagQueenCastle }

// PromotionKind returns the piece kind a promotion move promotes to. Only
// meaningful when IsPromotion is true.
func (m Move) PromotionKind() bb.PieceKind {
	switch m.Flag() &^ FlagCapture {
	case FlagKnightPromo:
		return bb.Knight
	case FlagBishopPromo:
		return bb.Bishop
	case FlagRookPromo:
		return bb.Rook
	default:
		return bb.Queen
	}
}

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

var promoLetters = [6]byte{0, 'n', 'b', 'r', 'q', 0}

// String renders the move in long algebraic form, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := squareNames[m.From()] + squareNames[m.To()]
	if m.IsPromotion() {
		s += string(promoLetters[m.PromotionKind()])
	}
	return s
}

// GoString satisfies fmt.GoStringer for debugging output.
func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s, flag=%d)", m.String(), m.Flag())
}
