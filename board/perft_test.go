package board

import "testing"

func TestPerftInitialPosition(t *testing.T) {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		if got := p.Perft(c.depth); got != c.want {
			t.Fatalf("perft depth %d: got %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftInitialPositionDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-5 perft in short mode")
	}
	p, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := p.Perft(5); got != 4865609 {
		t.Fatalf("perft depth 5: got %d, want 4865609", got)
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := p.Perft(4); got != 4085603 {
		t.Fatalf("perft Kiwipete depth 4: got %d, want 4085603", got)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	divide := p.PerftDivide(3)
	var sum uint64
	for _, n := range divide {
		sum += n
	}
	if want := p.Perft(3); sum != want {
		t.Fatalf("divide sum = %d, want %d", sum, want)
	}
}
