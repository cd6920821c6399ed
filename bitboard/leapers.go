package bitboard

// PawnAttacks[colour][sq] is the set of squares a pawn of colour attacks from sq.
var PawnAttacks [2][64]Bitboard

// KnightAttacks[sq] is the set of squares a knight attacks from sq.
var KnightAttacks [64]Bitboard

// KingAttacks[sq] is the set of squares a king attacks from sq.
var KingAttacks [64]Bitboard

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func initLeaperTables() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var knight Bitboard
		for _, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				knight = SetBit(knight, Square(rf*8+ff))
			}
		}
		KnightAttacks[sq] = knight

		var king Bitboard
		for _, off := range kingOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				king = SetBit(king, Square(rf*8+ff))
			}
		}
		KingAttacks[sq] = king

		var whitePawn, blackPawn Bitboard
		if rank < 7 {
			if file > 0 {
				whitePawn = SetBit(whitePawn, Square((rank+1)*8+file-1))
			}
			if file < 7 {
				whitePawn = SetBit(whitePawn, Square((rank+1)*8+file+1))
			}
		}
		if rank > 0 {
			if file > 0 {
				blackPawn = SetBit(blackPawn, Square((rank-1)*8+file-1))
			}
			if file < 7 {
				blackPawn = SetBit(blackPawn, Square((rank-1)*8+file+1))
			}
		}
		PawnAttacks[White][sq] = whitePawn
		PawnAttacks[Black][sq] = blackPawn
	}
}
