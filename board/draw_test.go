package board

import (
	"testing"

	bb "bitknight/bitboard"
)

func TestFiftyMoveRuleTriggersDraw(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 99 50")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.IsDraw() {
		t.Fatalf("did not expect a draw before the 100th half-move")
	}
	p.Make(NewMove(bb.Square(4), bb.Square(5), FlagQuiet)) // Ke1-f1
	if !p.IsDraw() {
		t.Fatalf("expected a draw once the halfmove clock reaches 100")
	}
}

// TestThreefoldRepetitionTriggersDraw covers two kings plus one knight
// each, with both sides shuffling their knight out and back. One full
// out-and-back cycle is 4 plies; the starting position recurs at the end
// of every cycle, so it is the third time seen after two full cycles
// (ply 0, ply 4, ply 8).
func TestThreefoldRepetitionTriggersDraw(t *testing.T) {
	p, err := ParseFEN("1n5k/8/8/8/8/8/8/1N5K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	whiteOut := NewMove(bb.Square(1), bb.Square(18), FlagQuiet)  // Nb1-c3
	whiteBack := NewMove(bb.Square(18), bb.Square(1), FlagQuiet) // Nc3-b1
	blackOut := NewMove(bb.Square(57), bb.Square(42), FlagQuiet)  // Nb8-c6
	blackBack := NewMove(bb.Square(42), bb.Square(57), FlagQuiet) // Nc6-b8

	cycle := []Move{whiteOut, blackOut, whiteBack, blackBack}

	for cycleNum := 0; cycleNum < 2; cycleNum++ {
		for _, m := range cycle {
			p.Make(m)
		}
		if cycleNum == 0 {
			if p.IsDraw() {
				t.Fatalf("did not expect a draw after only the second occurrence")
			}
		} else {
			if !p.IsDraw() {
				t.Fatalf("expected a draw at the third occurrence of the starting position")
			}
		}
	}
}
