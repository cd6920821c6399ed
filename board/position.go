// Package board implements the position representation, make/undo, FEN
// parsing, and pseudo-legal move generation that the rest of bitknight is
// built on. Legality (is the mover's king left in check) is deliberately
// NOT filtered here: callers (search, perft) make a pseudo-legal move and
// then ask bitboard.IsAttacked about the mover's king, undoing if it
// answers yes. Keeping that split out of Position keeps make/undo a pure,
// unconditional bitboard transformation.
package board

import bb "bitknight/bitboard"

// Castling rights bits.
const (
	CastleWK = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ
)

// UndoRecord captures everything make() cannot cheaply recompute, so undo()
// can restore a position in constant time.
type UndoRecord struct {
	CastleRights  uint8
	EnPassant     bb.Square
	HalfmoveClock int
	Hash          uint64
	CapturedKind  bb.PieceKind
	CapturedColor bb.Colour
	HadCapture    bool
}

// Position is the mutable chess position: piece bitboards, derived
// occupancy, game-state fields and the incremental Zobrist hash.
type Position struct {
	Pieces    [12]bb.Bitboard
	Occupancy [3]bb.Bitboard

	ToMove        bb.Colour
	CastleRights  uint8
	EnPassant     bb.Square
	HalfmoveClock int
	FullmoveNum   int
	Hash          uint64

	history []UndoRecord
}

// Occupancy slots.
const (
	OccWhite = 0
	OccBlack = 1
	OccAll   = 2
)

// PieceAt returns the piece kind and colour occupying sq, and whether any
// piece is there at all.
func (p *Position) PieceAt(sq bb.Square) (kind bb.PieceKind, colour bb.Colour, ok bool) {
	if !bb.TestBit(p.Occupancy[OccAll], sq) {
		return 0, 0, false
	}
	for idx := 0; idx < 12; idx++ {
		if bb.TestBit(p.Pieces[idx], sq) {
			return bb.PieceKind(idx % 6), bb.Colour(idx / 6), true
		}
	}
	return 0, 0, false
}

// King returns the square of colour's king.
func (p *Position) King(colour bb.Colour) bb.Square {
	k := p.Pieces[bb.PieceIndex(colour, bb.King)]
	return bb.Square(bb.TrailingZeros(k))
}

// IsAttacked reports whether sq is attacked by colour by, given the
// position's current occupancy.
func (p *Position) IsAttacked(sq bb.Square, by bb.Colour) bool {
	base := int(by) * 6
	return bb.IsAttacked(sq, p.Occupancy[OccAll], by,
		p.Pieces[base+int(bb.Pawn)],
		p.Pieces[base+int(bb.Knight)],
		p.Pieces[base+int(bb.Bishop)],
		p.Pieces[base+int(bb.Rook)],
		p.Pieces[base+int(bb.Queen)],
		p.Pieces[base+int(bb.King)])
}

// InCheck reports whether colour's king is currently attacked.
func (p *Position) InCheck(colour bb.Colour) bool {
	return p.IsAttacked(p.King(colour), colour.Other())
}

// HistoryDepth returns the number of make operations not yet undone.
func (p *Position) HistoryDepth() int { return len(p.history) }

// rebuildOccupancy recomputes all three occupancy bitboards from Pieces.
// Used after FEN load; never on the hot make/undo path, where occupancy is
// kept incrementally in sync instead.
func (p *Position) rebuildOccupancy() {
	var white, black bb.Bitboard
	for k := 0; k < 6; k++ {
		white |= p.Pieces[k]
		black |= p.Pieces[6+k]
	}
	p.Occupancy[OccWhite] = white
	p.Occupancy[OccBlack] = black
	p.Occupancy[OccAll] = white | black
}

// computeHash recomputes the Zobrist hash from scratch. Used after FEN
// load and by tests to check incremental-hash consistency; never on the
// make/undo hot path.
func (p *Position) computeHash() uint64 {
	var h uint64
	for idx := 0; idx < 12; idx++ {
		bbv := p.Pieces[idx]
		for bbv != 0 {
			sq := bb.PopLSB(&bbv)
			h ^= bb.PieceKeys[idx][sq]
		}
	}
	h ^= bb.CastleKeys[p.CastleRights]
	if p.EnPassant != bb.NoSquare {
		h ^= bb.EnPassantKeys[p.EnPassant.File()]
	}
	if p.ToMove == bb.Black {
		h ^= bb.SideKey
	}
	return h
}
