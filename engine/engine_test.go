package engine

import (
	"testing"

	brd "bitknight/board"
	mtl "bitknight/material"
)

func TestRunHeadlessGameFindsMateQuickly(t *testing.T) {
	// Same back-rank mate-in-one position used by the search package's
	// test: White should resolve this within a handful of moves.
	fen := "k7/ppp5/ppp5/8/8/8/8/4K2R w - - 0 1"
	outcome, err := RunHeadlessGame(mtl.Eval, mtl.Eval, 3, fen, 5)
	if err != nil {
		t.Fatalf("RunHeadlessGame: %v", err)
	}
	if outcome != WhiteWin {
		t.Fatalf("expected WhiteWin, got %v", outcome)
	}
}

func TestRunHeadlessGameRejectsMalformedFEN(t *testing.T) {
	if _, err := RunHeadlessGame(mtl.Eval, mtl.Eval, 2, "not a fen", 10); err == nil {
		t.Fatalf("expected an error for a malformed FEN")
	}
}

func TestRunHeadlessGameReportsExceeded(t *testing.T) {
	outcome, err := RunHeadlessGame(mtl.Eval, mtl.Eval, 1, brd.StartFEN, 1)
	if err != nil {
		t.Fatalf("RunHeadlessGame: %v", err)
	}
	if outcome != Exceeded {
		t.Fatalf("expected Exceeded after a single-move budget from the start position, got %v", outcome)
	}
}
