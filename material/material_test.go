package material

import "testing"

func TestEvalIsZeroForSymmetricPosition(t *testing.T) {
	var pieces [12]uint64
	pieces[0] = 1 << 8  // a white pawn
	pieces[6] = 1 << 48 // a mirrored black pawn
	if got := Eval(pieces, [3]uint64{}, 0); got != 0 {
		t.Fatalf("expected a symmetric single-pawn position to score 0, got %d", got)
	}
}

func TestEvalFavorsMaterialAdvantage(t *testing.T) {
	var pieces [12]uint64
	pieces[4] = 1 << 27 // White queen on d4
	if got := Eval(pieces, [3]uint64{}, 0); got <= Values[4] {
		t.Fatalf("expected a lone White queen to score above its base material value, got %d", got)
	}
}

func TestEvalFlipsSignForBlackToMove(t *testing.T) {
	var pieces [12]uint64
	pieces[4] = 1 << 27 // White queen on d4
	white := Eval(pieces, [3]uint64{}, 0)
	black := Eval(pieces, [3]uint64{}, 1)
	if white != -black {
		t.Fatalf("expected evaluation to flip sign for the side not to move: white=%d black=%d", white, black)
	}
}
