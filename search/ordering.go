package search

import (
	brd "bitknight/board"
)

// mvvLva[victim][attacker] gives the highest scores to capturing a
// high-value victim with a low-value attacker, added on top of
// scoreCaptureBase so every capture outranks promotions, killers, and any
// quiet move whose history score is below that base.
var mvvLva = [6][6]int32{
	{15, 14, 13, 12, 11, 10}, // victim Pawn
	{25, 24, 23, 22, 21, 20}, // victim Knight
	{35, 34, 33, 32, 31, 30}, // victim Bishop
	{45, 44, 43, 42, 41, 40}, // victim Rook
	{55, 54, 53, 52, 51, 50}, // victim Queen
	{0, 0, 0, 0, 0, 0},       // victim King: unreachable in legal play
}

const (
	scoreCaptureBase   = 10000
	scorePromotion     = 9000
	scoreKillerFirst   = 8000
	scoreKillerSecond  = 7000
	scorePVMove        = 1 << 20
)

type scoredMove struct {
	move  brd.Move
	score int32
}

// scoreMoves assigns an ordering score to every move in list, using the
// position to look up each capture's victim kind and the session's
// killer/history tables for quiet-move ordering. pvMove, if not the zero
// Move, is pushed to the very front (iterative deepening's root-move
// stabilization).
func (s *Session) scoreMoves(pos *brd.Position, list *brd.MoveList, ply int, pvMove brd.Move) []scoredMove {
	scored := make([]scoredMove, list.Count)
	us := sideIndex(pos.ToMove)
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		scored[i].move = m

		switch {
		case pvMove != 0 && m == pvMove:
			scored[i].score = scorePVMove
		case m.Flag() == brd.FlagEnPassant:
			scored[i].score = scoreCaptureBase + mvvLva[0][0]
		case m.IsCapture():
			victimKind, _, ok := pos.PieceAt(m.To())
			attackerKind, _, _ := pos.PieceAt(m.From())
			if !ok {
				victimKind = 0
			}
			scored[i].score = scoreCaptureBase + mvvLva[victimKind][attackerKind]
		case m.IsPromotion():
			scored[i].score = scorePromotion
		case s.killers[ply][0] == uint16(m):
			scored[i].score = scoreKillerFirst
		case s.killers[ply][1] == uint16(m):
			scored[i].score = scoreKillerSecond
		default:
			scored[i].score = s.history[us][m.From()][m.To()]
		}
	}
	return scored
}

// nextBest performs one pass of incremental selection sort starting at
// from, swapping the highest-scoring remaining move into place. Move
// ordering rarely needs every move sorted up front: alpha-beta usually
// cuts off long before the tail of the list is examined, so selecting one
// best-of-the-rest at a time pays off over a full upfront sort.
func nextBest(scored []scoredMove, from int) {
	best := from
	for i := from + 1; i < len(scored); i++ {
		if scored[i].score > scored[best].score {
			best = i
		}
	}
	scored[from], scored[best] = scored[best], scored[from]
}

// recordKiller stores m as the newest killer at ply: the existing first
// slot shifts to the second, duplicates are ignored.
func (s *Session) recordKiller(ply int, m brd.Move) {
	enc := uint16(m)
	if s.killers[ply][0] == enc {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = enc
}

// recordHistoryCutoff bumps the (side, from, to) history counter by
// depth², rescaling the whole table if any entry would saturate.
func (s *Session) recordHistoryCutoff(us int, m brd.Move, depth int) {
	bonus := int32(depth * depth)
	entry := &s.history[us][m.From()][m.To()]
	*entry += bonus
	if *entry > historyHighWatermark {
		for c := 0; c < 2; c++ {
			for f := 0; f < 64; f++ {
				for t := 0; t < 64; t++ {
					s.history[c][f][t] /= 2
				}
			}
		}
	}
}
