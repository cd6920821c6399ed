// Package search implements negamax with alpha-beta pruning, principal
// variation search, quiescence search, MVV-LVA capture ordering, killer
// moves, the history heuristic, and iterative deepening, driven entirely
// off the board package's pseudo-legal generator: legality is checked
// post-make via bitboard.IsAttacked, exactly as the board package leaves
// it for callers to do.
package search

import bb "bitknight/bitboard"

// Evaluator scores pos from the side-to-move's perspective (positive is
// good for whoever is to move). It is supplied by the host and must be
// pure: it must not mutate the bitboards it is handed, and its data does
// not outlive the call. The engine never interprets the returned units;
// centipawns are conventional, and |score| > MateThreshold is reserved
// for mate-distance scores.
type Evaluator func(pieces [12]uint64, occupancy [3]uint64, sideToMove int) int32

// Mate and search-bound constants, per the leaf evaluation contract.
const (
	Mate          = 100000
	MateThreshold = 90000
	MaxPly        = 128
	qsMax         = 8
	deltaMargin   = 200
)

// historyHighWatermark triggers the halve-everything rescale that keeps
// the history table from saturating over a long search.
const historyHighWatermark = 400000

// Session owns the move-ordering heuristic tables for one top-level
// search call. A Session belongs exclusively to the goroutine running
// IterativeDeepening for its duration; it and the Position it searches must not be
// touched concurrently from elsewhere.
type Session struct {
	Eval Evaluator

	killers [MaxPly + 1][2]uint16 // encoded board.Move, 0 = empty slot
	history [2][64][64]int32

	nodes uint64
}

// NewSession returns a Session with empty killer and history tables,
// ready for one top-level iterative-deepening search.
func NewSession(eval Evaluator) *Session {
	return &Session{Eval: eval}
}

// Nodes reports how many nodes the most recent IterativeDeepening call
// visited.
func (s *Session) Nodes() uint64 { return s.nodes }

// clear resets the killer and history tables, so a fresh top-level search
// never orders moves based on heuristics left over from a previous one.
func (s *Session) clear() {
	s.killers = [MaxPly + 1][2]uint16{}
	s.history = [2][64][64]int32{}
	s.nodes = 0
}

func sideIndex(c bb.Colour) int { return int(c) }
