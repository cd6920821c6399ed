package board

import bb "bitknight/bitboard"

// MoveList is a preallocated move buffer; 256 entries comfortably covers
// any reachable chess position's move count.
type MoveList struct {
	Moves [256]Move
	Count int
}

func (l *MoveList) add(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

const (
	rank4 = bb.Bitboard(0x00000000FF000000)
	rank5 = bb.Bitboard(0x000000FF00000000)
)

func promotionRank(us bb.Colour) bb.Bitboard {
	if us == bb.White {
		return bb.Rank8
	}
	return bb.Rank1
}

func pawnPushDelta(us bb.Colour) int {
	if us == bb.White {
		return 8
	}
	return -8
}

func shiftPawns(bbv bb.Bitboard, delta int) bb.Bitboard {
	if delta > 0 {
		return bbv << uint(delta)
	}
	return bbv >> uint(-delta)
}

// GenerateMoves appends every pseudo-legal move for the side to move into
// out. Pseudo-legal: geometrically valid, with correct captures, quiets,
// promotions and castling preconditions, but NOT filtered for leaving the
// mover's own king in check.
func (p *Position) GenerateMoves(out *MoveList) {
	p.generatePawnMoves(out, false)
	p.generatePieceMoves(out, bb.Knight, false)
	p.generatePieceMoves(out, bb.Bishop, false)
	p.generatePieceMoves(out, bb.Rook, false)
	p.generatePieceMoves(out, bb.Queen, false)
	p.generateKingMoves(out, false)
	p.generateCastles(out)
}

// GenerateCaptures appends the capture-only subset: ordinary captures,
// en-passant, and promotions (with or without capture). Used by
// quiescence search.
func (p *Position) GenerateCaptures(out *MoveList) {
	p.generatePawnMoves(out, true)
	p.generatePieceMoves(out, bb.Knight, true)
	p.generatePieceMoves(out, bb.Bishop, true)
	p.generatePieceMoves(out, bb.Rook, true)
	p.generatePieceMoves(out, bb.Queen, true)
	p.generateKingMoves(out, true)
}

func (p *Position) generatePawnMoves(out *MoveList, capturesOnly bool) {
	us := p.ToMove
	them := us.Other()
	delta := pawnPushDelta(us)
	promoRank := promotionRank(us)
	pawns := p.Pieces[bb.PieceIndex(us, bb.Pawn)]
	allOcc := p.Occupancy[OccAll]
	enemyOcc := p.Occupancy[them]

	push1 := shiftPawns(pawns, delta) &^ allOcc
	promoPushes := push1 & promoRank
	if !capturesOnly {
		quietPushes := push1 &^ promoRank
		for bbv := quietPushes; bbv != 0; {
			to := bb.Square(bb.PopLSB(&bbv))
			out.add(NewMove(to-bb.Square(delta), to, FlagQuiet))
		}
	}
	for bbv := promoPushes; bbv != 0; {
		to := bb.Square(bb.PopLSB(&bbv))
		from := to - bb.Square(delta)
		out.add(NewMove(from, to, FlagKnightPromo))
		out.add(NewMove(from, to, FlagBishopPromo))
		out.add(NewMove(from, to, FlagRookPromo))
		out.add(NewMove(from, to, FlagQueenPromo))
	}
	if !capturesOnly {
		doubleRank := rank4
		if us == bb.Black {
			doubleRank = rank5
		}
		doublePush := shiftPawns(push1&^promoRank, delta) & doubleRank &^ allOcc
		for bbv := doublePush; bbv != 0; {
			to := bb.Square(bb.PopLSB(&bbv))
			out.add(NewMove(to-bb.Square(2*delta), to, FlagDoublePawnPush))
		}
	}

	for bbv := pawns; bbv != 0; {
		from := bb.Square(bb.PopLSB(&bbv))
		attacks := bb.PawnAttacks[us][from]

		captures := attacks & enemyOcc
		for c := captures; c != 0; {
			to := bb.Square(bb.PopLSB(&c))
			if bb.TestBit(promoRank, to) {
				out.add(NewMove(from, to, FlagKnightPromoCapture))
				out.add(NewMove(from, to, FlagBishopPromoCapture))
				out.add(NewMove(from, to, FlagRookPromoCapture))
				out.add(NewMove(from, to, FlagQueenPromoCapture))
			} else {
				out.add(NewMove(from, to, FlagCapture))
			}
		}

		if p.EnPassant != bb.NoSquare && bb.TestBit(attacks, p.EnPassant) {
			out.add(NewMove(from, p.EnPassant, FlagEnPassant))
		}
	}
}

func attacksFor(kind bb.PieceKind, sq bb.Square, occ bb.Bitboard) bb.Bitboard {
	switch kind {
	case bb.Knight:
		return bb.KnightAttacks[sq]
	case bb.Bishop:
		return bb.BishopAttacks(int(sq), occ)
	case bb.Rook:
		return bb.RookAttacks(int(sq), occ)
	case bb.Queen:
		return bb.QueenAttacks(int(sq), occ)
	default:
		return 0
	}
}

func (p *Position) generatePieceMoves(out *MoveList, kind bb.PieceKind, capturesOnly bool) {
	us := p.ToMove
	pieces := p.Pieces[bb.PieceIndex(us, kind)]
	allOcc := p.Occupancy[OccAll]
	usOcc := p.Occupancy[us]
	enemyOcc := p.Occupancy[us.Other()]

	for bbv := pieces; bbv != 0; {
		from := bb.Square(bb.PopLSB(&bbv))
		targets := attacksFor(kind, from, allOcc) &^ usOcc

		captures := targets & enemyOcc
		for c := captures; c != 0; {
			to := bb.Square(bb.PopLSB(&c))
			out.add(NewMove(from, to, FlagCapture))
		}
		if capturesOnly {
			continue
		}
		quiets := targets &^ enemyOcc
		for q := quiets; q != 0; {
			to := bb.Square(bb.PopLSB(&q))
			out.add(NewMove(from, to, FlagQuiet))
		}
	}
}

func (p *Position) generateKingMoves(out *MoveList, capturesOnly bool) {
	us := p.ToMove
	from := p.King(us)
	targets := bb.KingAttacks[from] &^ p.Occupancy[us]
	enemyOcc := p.Occupancy[us.Other()]

	captures := targets & enemyOcc
	for c := captures; c != 0; {
		to := bb.Square(bb.PopLSB(&c))
		out.add(NewMove(from, to, FlagCapture))
	}
	if capturesOnly {
		return
	}
	quiets := targets &^ enemyOcc
	for q := quiets; q != 0; {
		to := bb.Square(bb.PopLSB(&q))
		out.add(NewMove(from, to, FlagQuiet))
	}
}

// castleGeometry names, per colour, the squares relevant to each side's
// castle: the king's home/pass-through/destination squares and the
// between-squares that must be empty.
type castleGeometry struct {
	kingFrom, kingPass, kingTo bb.Square
	emptySquares               bb.Bitboard
	rightBit                   uint8
}

func castleGeometries(us bb.Colour) (kingSide, queenSide castleGeometry) {
	base := bb.Square(0)
	if us == bb.Black {
		base = 56
	}
	kingSide = castleGeometry{
		kingFrom: base + 4, kingPass: base + 5, kingTo: base + 6,
		emptySquares: bb.SetBit(bb.SetBit(0, base+5), base+6),
	}
	queenSide = castleGeometry{
		kingFrom: base + 4, kingPass: base + 3, kingTo: base + 2,
		emptySquares: bb.SetBit(bb.SetBit(bb.SetBit(0, base+1), base+2), base+3),
	}
	if us == bb.White {
		kingSide.rightBit, queenSide.rightBit = CastleWK, CastleWQ
	} else {
		kingSide.rightBit, queenSide.rightBit = CastleBK, CastleBQ
	}
	return
}

func (p *Position) generateCastles(out *MoveList) {
	us := p.ToMove
	them := us.Other()
	kingSide, queenSide := castleGeometries(us)
	allOcc := p.Occupancy[OccAll]

	if p.CastleRights&kingSide.rightBit != 0 && allOcc&kingSide.emptySquares == 0 {
		if !p.IsAttacked(kingSide.kingFrom, them) &&
			!p.IsAttacked(kingSide.kingPass, them) &&
			!p.IsAttacked(kingSide.kingTo, them) {
			out.add(NewMove(kingSide.kingFrom, kingSide.kingTo, FlagKingCastle))
		}
	}
	if p.CastleRights&queenSide.rightBit != 0 && allOcc&queenSide.emptySquares == 0 {
		// The b-file square must be empty (checked above via emptySquares)
		// but, unlike c/d, need not be unattacked.
		if !p.IsAttacked(queenSide.kingFrom, them) &&
			!p.IsAttacked(queenSide.kingPass, them) &&
			!p.IsAttacked(queenSide.kingTo, them) {
			out.add(NewMove(queenSide.kingFrom, queenSide.kingTo, FlagQueenCastle))
		}
	}
}
