package search

import (
	brd "bitknight/board"
)

// pvLine accumulates the principal variation as the negamax recursion
// unwinds. It is off the hot per-node path (only the actual best-move
// chain touches it, not every move tried).
type pvLine struct {
	moves []brd.Move
}

// set replaces the line with [m] followed by child, truncating or growing
// as needed. Each frame's bestLine has its own backing array, so this copy
// never aliases the child's.
func (pv *pvLine) set(m brd.Move, child pvLine) {
	pv.moves = append(pv.moves[:0], m)
	pv.moves = append(pv.moves, child.moves...)
}

// best returns the line's first move, or the zero Move if the line is
// empty (no legal moves were found at that node).
func (pv pvLine) best() brd.Move {
	if len(pv.moves) == 0 {
		return 0
	}
	return pv.moves[0]
}

