package board

import bb "bitknight/bitboard"

// castleRightsMask[sq] is ANDed into CastleRights whenever a move's from or
// to square is sq, clearing any right whose rook or king home square was
// touched. Untouched squares carry all four bits and so change nothing.
var castleRightsMask [64]uint8

func init() {
	for i := range castleRightsMask {
		castleRightsMask[i] = CastleWK | CastleWQ | CastleBK | CastleBQ
	}
	castleRightsMask[int(bb.Square(4))] &^= CastleWK | CastleWQ  // e1
	castleRightsMask[int(bb.Square(60))] &^= CastleBK | CastleBQ // e8
	castleRightsMask[int(bb.Square(0))] &^= CastleWQ             // a1
	castleRightsMask[int(bb.Square(7))] &^= CastleWK             // h1
	castleRightsMask[int(bb.Square(56))] &^= CastleBQ            // a8
	castleRightsMask[int(bb.Square(63))] &^= CastleBK             // h8
}

// rookCastleSquares gives the (from, to) rook squares for each castling flag.
var rookCastleSquares = map[Move][2]bb.Square{
	FlagKingCastle:  {7, 5},   // h1 -> f1 (white); mirrored below for black
	FlagQueenCastle: {0, 3},   // a1 -> d1
}

func rookSquaresFor(flag Move, colour bb.Colour) (from, to bb.Square) {
	pair := rookCastleSquares[flag]
	if colour == bb.White {
		return pair[0], pair[1]
	}
	return pair[0] + 56, pair[1] + 56
}

func (p *Position) setPiece(colour bb.Colour, kind bb.PieceKind, sq bb.Square) {
	idx := bb.PieceIndex(colour, kind)
	p.Pieces[idx] = bb.SetBit(p.Pieces[idx], sq)
	p.Occupancy[colour] = bb.SetBit(p.Occupancy[colour], sq)
	p.Occupancy[OccAll] = bb.SetBit(p.Occupancy[OccAll], sq)
	p.Hash ^= bb.PieceKeys[idx][sq]
}

func (p *Position) clearPiece(colour bb.Colour, kind bb.PieceKind, sq bb.Square) {
	idx := bb.PieceIndex(colour, kind)
	p.Pieces[idx] = bb.ClearBit(p.Pieces[idx], sq)
	p.Occupancy[colour] = bb.ClearBit(p.Occupancy[colour], sq)
	p.Occupancy[OccAll] = bb.ClearBit(p.Occupancy[OccAll], sq)
	p.Hash ^= bb.PieceKeys[idx][sq]
}

// rawSetPiece and rawClearPiece move bits without touching Hash: Unmake
// restores the hash directly from the UndoRecord (spec-mandated, and an
// implicit consistency check against a from-scratch recomputation in
// tests), so there is no reason to toggle it piecemeal while undoing.
func (p *Position) rawSetPiece(colour bb.Colour, kind bb.PieceKind, sq bb.Square) {
	idx := bb.PieceIndex(colour, kind)
	p.Pieces[idx] = bb.SetBit(p.Pieces[idx], sq)
	p.Occupancy[colour] = bb.SetBit(p.Occupancy[colour], sq)
	p.Occupancy[OccAll] = bb.SetBit(p.Occupancy[OccAll], sq)
}

func (p *Position) rawClearPiece(colour bb.Colour, kind bb.PieceKind, sq bb.Square) {
	idx := bb.PieceIndex(colour, kind)
	p.Pieces[idx] = bb.ClearBit(p.Pieces[idx], sq)
	p.Occupancy[colour] = bb.ClearBit(p.Occupancy[colour], sq)
	p.Occupancy[OccAll] = bb.ClearBit(p.Occupancy[OccAll], sq)
}

// Make performs m unconditionally: it does not check whether the mover's
// king ends up in check. Callers that need legality call IsAttacked on the
// mover's king after Make and Unmake if it answers yes.
func (p *Position) Make(m Move) {
	us := p.ToMove
	them := us.Other()
	from, to, flag := m.From(), m.To(), m.Flag()

	rec := UndoRecord{
		CastleRights:  p.CastleRights,
		EnPassant:     p.EnPassant,
		HalfmoveClock: p.HalfmoveClock,
		Hash:          p.Hash,
	}

	if p.EnPassant != bb.NoSquare {
		p.Hash ^= bb.EnPassantKeys[p.EnPassant.File()]
	}
	p.Hash ^= bb.CastleKeys[p.CastleRights]

	movedKind, _, _ := p.PieceAt(from)
	p.clearPiece(us, movedKind, from)

	p.HalfmoveClock++
	if movedKind == bb.Pawn {
		p.HalfmoveClock = 0
	}

	if flag == FlagEnPassant {
		var capSq bb.Square
		if us == bb.White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		p.clearPiece(them, bb.Pawn, capSq)
		rec.HadCapture = true
		rec.CapturedKind = bb.Pawn
		rec.CapturedColor = them
		p.HalfmoveClock = 0
	} else if m.IsCapture() {
		capKind, _, _ := p.PieceAt(to)
		p.clearPiece(them, capKind, to)
		rec.HadCapture = true
		rec.CapturedKind = capKind
		rec.CapturedColor = them
		p.HalfmoveClock = 0
	}

	placeKind := movedKind
	if m.IsPromotion() {
		placeKind = m.PromotionKind()
	}
	p.setPiece(us, placeKind, to)

	if m.IsCastle() {
		rookFrom, rookTo := rookSquaresFor(flag, us)
		p.clearPiece(us, bb.Rook, rookFrom)
		p.setPiece(us, bb.Rook, rookTo)
	}

	p.CastleRights &= castleRightsMask[from] & castleRightsMask[to]

	if flag == FlagDoublePawnPush {
		if us == bb.White {
			p.EnPassant = from + 8
		} else {
			p.EnPassant = from - 8
		}
	} else {
		p.EnPassant = bb.NoSquare
	}

	p.Hash ^= bb.CastleKeys[p.CastleRights]
	if p.EnPassant != bb.NoSquare {
		p.Hash ^= bb.EnPassantKeys[p.EnPassant.File()]
	}
	p.Hash ^= bb.SideKey
	p.ToMove = them
	if p.ToMove == bb.White {
		p.FullmoveNum++
	}

	p.history = append(p.history, rec)
}

// Unmake reverses the most recent Make(m) using the popped UndoRecord.
func (p *Position) Unmake(m Move) {
	n := len(p.history) - 1
	rec := p.history[n]
	p.history = p.history[:n]

	them := p.ToMove
	us := them.Other()
	p.ToMove = us
	if them == bb.White {
		p.FullmoveNum--
	}

	from, to, flag := m.From(), m.To(), m.Flag()

	placeKind := func() bb.PieceKind {
		k, _, _ := p.PieceAt(to)
		return k
	}()
	movedKind := placeKind
	if m.IsPromotion() {
		movedKind = bb.Pawn
	}

	p.rawClearPiece(us, placeKind, to)

	if m.IsCastle() {
		rookFrom, rookTo := rookSquaresFor(flag, us)
		p.rawClearPiece(us, bb.Rook, rookTo)
		p.rawSetPiece(us, bb.Rook, rookFrom)
	}

	p.rawSetPiece(us, movedKind, from)

	if rec.HadCapture {
		if flag == FlagEnPassant {
			var capSq bb.Square
			if us == bb.White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			p.rawSetPiece(rec.CapturedColor, rec.CapturedKind, capSq)
		} else {
			p.rawSetPiece(rec.CapturedColor, rec.CapturedKind, to)
		}
	}

	p.CastleRights = rec.CastleRights
	p.EnPassant = rec.EnPassant
	p.HalfmoveClock = rec.HalfmoveClock
	p.Hash = rec.Hash
}
