// Package material provides a minimal material-plus-piece-square-table
// evaluator. It exists as a usable stand-in for the host-supplied
// Evaluator the core search package expects (evaluation itself is a host
// concern, opaque to the core); it is not a serious chess evaluation
// function.
package material

import "math/bits"

// Values are centipawn piece values, indexed by kind (Pawn=0 .. King=5).
var Values = [6]int32{100, 320, 330, 500, 900, 20000}

// pst[kind][sq] nudges material toward common good squares; indexed
// a1=0..h8=63 from White's perspective. Black's lookup mirrors the square
// vertically.
var pst = [6][64]int32{
	// Pawn: encourage central advance, discourage edge files.
	{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Knight: favor the center, penalize the rim.
	{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	// Bishop: long diagonals over the rim.
	{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	// Rook: open files and the seventh rank.
	{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Queen: mild central bonus.
	{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	// King: favor safety in the corner during the middlegame.
	{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

func mirror(sq int) int { return sq ^ 56 }

// Eval implements search.Evaluator's signature: pieces[0..5] are White's
// pawn..king bitboards, pieces[6..11] Black's; occupancy[0..2] are
// white/black/all. It returns a centipawn score from sideToMove's
// perspective.
func Eval(pieces [12]uint64, occupancy [3]uint64, sideToMove int) int32 {
	var white, black int32
	for kind := 0; kind < 6; kind++ {
		white += scoreBitboard(pieces[kind], kind, false)
		black += scoreBitboard(pieces[6+kind], kind, true)
	}
	if sideToMove == 0 {
		return white - black
	}
	return black - white
}

func scoreBitboard(bb uint64, kind int, isBlack bool) int32 {
	var total int32
	for bb != 0 {
		sq := bits.TrailingZeros64(bb)
		bb &= bb - 1
		total += Values[kind]
		if isBlack {
			total += pst[kind][mirror(sq)]
		} else {
			total += pst[kind][sq]
		}
	}
	return total
}
