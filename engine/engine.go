// Package engine exposes the host-facing entry points: one-time table
// initialization (handled transparently by importing bitknight/bitboard,
// whose package init builds every table) and a headless self-play driver
// that dispatches between two evaluators by side to move.
package engine

import (
	brd "bitknight/board"
	srch "bitknight/search"
)

// Outcome is the result of a completed self-play game.
type Outcome int

const (
	Draw Outcome = iota
	WhiteWin
	BlackWin
	Exceeded Outcome = -1
)

// Init performs one-time initialization of the attack and Zobrist tables.
// In this module those tables are built by bitknight/bitboard's package
// init, so Init is a deliberate no-op kept only so hosts ported from a
// source that calls an explicit Init() compile unchanged against this
// one.
func Init() {}

// sideSelector holds which evaluator to dispatch to before a search call.
// It is read and written only by RunHeadlessGame itself, never
// concurrently, so a plain field (not an atomic) suffices; the core stays
// strictly single-threaded.
type sideSelector struct {
	white, black srch.Evaluator
}

func (s *sideSelector) dispatch(side int) srch.Evaluator {
	if side == 0 {
		return s.white
	}
	return s.black
}

// RunHeadlessGame plays a full self-play game from fen, alternating
// search calls between whiteEval and blackEval at a fixed search depth,
// until checkmate, a draw, or maxMoves full moves are played without
// resolution.
func RunHeadlessGame(whiteEval, blackEval srch.Evaluator, depth int, fen string, maxMoves int) (Outcome, error) {
	pos, err := brd.ParseFEN(fen)
	if err != nil {
		return Draw, err
	}

	sel := sideSelector{white: whiteEval, black: blackEval}
	dispatcher := func(pieces [12]uint64, occupancy [3]uint64, sideToMove int) int32 {
		return sel.dispatch(sideToMove)(pieces, occupancy, sideToMove)
	}
	session := srch.NewSession(dispatcher)

	for ply := 0; ply < 2*maxMoves; ply++ {
		var list brd.MoveList
		pos.GenerateMoves(&list)
		if !anyLegalMove(pos, &list) {
			if pos.InCheck(pos.ToMove) {
				if pos.ToMove == 0 {
					return BlackWin, nil
				}
				return WhiteWin, nil
			}
			return Draw, nil
		}
		if pos.IsDraw() {
			return Draw, nil
		}

		result := session.IterativeDeepening(pos, depth)
		if result.Best == 0 {
			return Draw, nil
		}
		pos.Make(result.Best)
	}
	return Exceeded, nil
}

func anyLegalMove(pos *brd.Position, list *brd.MoveList) bool {
	us := pos.ToMove
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		pos.Make(m)
		attacked := pos.IsAttacked(pos.King(us), pos.ToMove)
		pos.Unmake(m)
		if !attacked {
			return true
		}
	}
	return false
}
