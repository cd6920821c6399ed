package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// oracleDragontoothmgPerft recomputes perft using dylhunn/dragontoothmg as an
// independent move generator, so these tests catch a bug shared between
// this package's own generator and its hand-written slow-reference walkers.
func oracleDragontoothmgPerft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return oracleDragontoothmgPerftNode(&board, depth)
}

func oracleDragontoothmgPerftNode(board *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		nodes += oracleDragontoothmgPerftNode(board, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftMatchesDragontoothmgOracleStartPosition(t *testing.T) {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for depth := 1; depth <= 3; depth++ {
		got := p.Perft(depth)
		want := oracleDragontoothmgPerft(StartFEN, depth)
		if got != want {
			t.Fatalf("perft depth %d: got %d, dragontoothmg oracle %d", depth, got, want)
		}
	}
}

func TestPerftMatchesDragontoothmgOracleKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for depth := 1; depth <= 3; depth++ {
		got := p.Perft(depth)
		want := oracleDragontoothmgPerft(fen, depth)
		if got != want {
			t.Fatalf("perft Kiwipete depth %d: got %d, dragontoothmg oracle %d", depth, got, want)
		}
	}
}
