package search

import (
	"testing"

	brd "bitknight/board"
)

// materialEval is a minimal evaluator for tests: simple material count
// from the side-to-move's perspective. The real reference evaluator lives
// in package material; this local copy keeps the search package's tests
// independent of it.
func materialEval(pieces [12]uint64, occupancy [3]uint64, sideToMove int) int32 {
	values := [6]int32{100, 320, 330, 500, 900, 0}
	var white, black int32
	for kind := 0; kind < 6; kind++ {
		white += int32(popcount(pieces[kind])) * values[kind]
		black += int32(popcount(pieces[6+kind])) * values[kind]
	}
	if sideToMove == 0 {
		return white - black
	}
	return black - white
}

func popcount(x uint64) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

func TestMateInOneIsFound(t *testing.T) {
	// Black king boxed in on a8 by its own pawns on a6,b6,c6,a7,b7,c7;
	// White's rook reaches the open back rank from h1 and delivers
	// back-rank mate in one.
	pos, err := brd.ParseFEN("k7/ppp5/ppp5/8/8/8/8/4K2R w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	s := NewSession(materialEval)
	result := s.IterativeDeepening(pos, 3)

	if result.Score <= Mate-10 {
		t.Fatalf("expected a near-mate score, got %d", result.Score)
	}
	if result.Best.From() != 7 || result.Best.To() != 63 {
		t.Fatalf("expected Rh1-h8 delivering mate, got %s", result.Best)
	}
}

func TestMVVLVAOrdersHighValueVictimFirst(t *testing.T) {
	// Two captures available to White: pawn takes queen (d4xc5 or
	// similar high-value victim / low-value attacker) should outscore
	// rook takes pawn.
	if got, low := mvvLva[4][0], mvvLva[0][3]; got <= low {
		t.Fatalf("expected capturing a queen with a pawn (%d) to outscore a rook capturing a pawn (%d)", got, low)
	}
}

func TestIterativeDeepeningReturnsDeepestResult(t *testing.T) {
	pos, err := brd.ParseFEN(brd.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	s := NewSession(materialEval)
	result := s.IterativeDeepening(pos, 2)
	if result.Depth != 2 {
		t.Fatalf("expected reported depth 2, got %d", result.Depth)
	}
	if result.Best == 0 {
		t.Fatalf("expected a best move from the start position")
	}
}

func TestSearchReturnsZeroOnImmediateDraw(t *testing.T) {
	pos, err := brd.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	s := NewSession(materialEval)
	var pv pvLine
	score := s.search(pos, 2, -Mate, Mate, 1, &pv)
	if score != 0 {
		t.Fatalf("expected a drawn score of 0, got %d", score)
	}
}

func TestKillerTableStoresMostRecentFirst(t *testing.T) {
	s := NewSession(materialEval)
	m1 := brd.NewMove(12, 28, brd.FlagQuiet)
	m2 := brd.NewMove(11, 27, brd.FlagQuiet)

	s.recordKiller(3, m1)
	s.recordKiller(3, m2)

	if s.killers[3][0] != uint16(m2) {
		t.Fatalf("expected most recent killer in slot 0")
	}
	if s.killers[3][1] != uint16(m1) {
		t.Fatalf("expected previous killer shifted to slot 1")
	}
}

func TestHistoryTableHalvesAtWatermark(t *testing.T) {
	s := NewSession(materialEval)
	m := brd.NewMove(8, 16, brd.FlagQuiet)
	s.history[0][8][16] = historyHighWatermark
	s.recordHistoryCutoff(0, m, 20) // +400 pushes it over the watermark
	if s.history[0][8][16] >= historyHighWatermark {
		t.Fatalf("expected history table to rescale once it crosses the watermark, got %d", s.history[0][8][16])
	}
}
