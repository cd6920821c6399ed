package search

import (
	brd "bitknight/board"
)

// Result is the outcome of a completed top-level search: the best move
// found, its score from the side-to-move's perspective, the deepest
// completed iteration, and the node count spent.
type Result struct {
	Best  brd.Move
	Score int32
	Depth int
	Nodes uint64
}

func evalPosition(eval Evaluator, pos *brd.Position) int32 {
	var pieces [12]uint64
	for i, p := range pos.Pieces {
		pieces[i] = uint64(p)
	}
	var occ [3]uint64
	for i, o := range pos.Occupancy {
		occ[i] = uint64(o)
	}
	return eval(pieces, occ, int(pos.ToMove))
}

// IterativeDeepening runs searchRoot at depths 1..maxDepth in sequence,
// reusing the previous iteration's best move to stabilize ordering at the
// root, and returns the result of the deepest completed iteration.
func (s *Session) IterativeDeepening(pos *brd.Position, maxDepth int) Result {
	s.clear()

	var best brd.Move
	var score int32
	for depth := 1; depth <= maxDepth; depth++ {
		var pv pvLine
		score = s.searchRoot(pos, depth, -Mate, Mate, &pv, best)
		if pv.best() != 0 {
			best = pv.best()
		}
	}
	return Result{Best: best, Score: score, Depth: maxDepth, Nodes: s.nodes}
}

// searchRoot is search specialized for ply 0: it never returns early for a
// drawn position (the root position is given, not discovered mid-search,
// so there's nothing to early-out on) and it records the resulting PV
// line into pv.
func (s *Session) searchRoot(pos *brd.Position, depth int, alpha, beta int32, pv *pvLine, pvMove brd.Move) int32 {
	var list brd.MoveList
	pos.GenerateMoves(&list)
	scored := s.scoreMoves(pos, &list, 0, pvMove)

	us := pos.ToMove
	legalMoves := 0
	var bestLine pvLine

	for i := 0; i < len(scored); i++ {
		nextBest(scored, i)
		m := scored[i].move

		pos.Make(m)
		if pos.IsAttacked(pos.King(us), pos.ToMove) {
			pos.Unmake(m)
			continue
		}
		legalMoves++

		var childPV pvLine
		var score int32
		if legalMoves == 1 {
			score = -s.search(pos, depth-1, -beta, -alpha, 1, &childPV)
		} else {
			score = -s.search(pos, depth-1, -alpha-1, -alpha, 1, &childPV)
			if score > alpha && score < beta {
				childPV = pvLine{}
				score = -s.search(pos, depth-1, -beta, -alpha, 1, &childPV)
			}
		}
		pos.Unmake(m)

		if score >= beta {
			if !m.IsCapture() {
				s.recordKiller(0, m)
				s.recordHistoryCutoff(sideIndex(us), m, depth)
			}
			bestLine.set(m, childPV)
			*pv = bestLine
			return beta
		}
		if score > alpha {
			alpha = score
			bestLine.set(m, childPV)
		}
	}

	if legalMoves == 0 {
		if pos.InCheck(us) {
			*pv = pvLine{}
			return -Mate
		}
		*pv = pvLine{}
		return 0
	}

	*pv = bestLine
	return alpha
}

// search implements negamax with alpha-beta pruning and principal
// variation search: the first move at each node is searched with a full
// window, every later sibling with a null window first, re-searching with
// the full window only if the null-window probe suggests it beats alpha.
func (s *Session) search(pos *brd.Position, depth int, alpha, beta int32, ply int, pv *pvLine) int32 {
	s.nodes++

	if ply > 0 && pos.IsDraw() {
		return 0
	}
	if depth == 0 {
		return s.quiescence(pos, alpha, beta, 0)
	}

	var list brd.MoveList
	pos.GenerateMoves(&list)
	scored := s.scoreMoves(pos, &list, ply, 0)

	us := pos.ToMove
	legalMoves := 0
	var bestLine pvLine

	for i := 0; i < len(scored); i++ {
		nextBest(scored, i)
		m := scored[i].move

		pos.Make(m)
		if pos.IsAttacked(pos.King(us), pos.ToMove) {
			pos.Unmake(m)
			continue
		}
		legalMoves++

		var childPV pvLine
		var score int32
		if legalMoves == 1 {
			score = -s.search(pos, depth-1, -beta, -alpha, ply+1, &childPV)
		} else {
			score = -s.search(pos, depth-1, -alpha-1, -alpha, ply+1, &childPV)
			if score > alpha && score < beta {
				childPV = pvLine{}
				score = -s.search(pos, depth-1, -beta, -alpha, ply+1, &childPV)
			}
		}
		pos.Unmake(m)

		if score >= beta {
			if !m.IsCapture() {
				s.recordKiller(ply, m)
				s.recordHistoryCutoff(sideIndex(us), m, depth)
			}
			return beta
		}
		if score > alpha {
			alpha = score
			bestLine.set(m, childPV)
		}
	}

	if legalMoves == 0 {
		if pos.InCheck(us) {
			return -Mate + int32(ply)
		}
		return 0
	}

	*pv = bestLine
	return alpha
}

// quiescence extends search over captures (and promotions) only, to
// avoid the horizon effect at leaf nodes.
func (s *Session) quiescence(pos *brd.Position, alpha, beta int32, qdepth int) int32 {
	s.nodes++

	standPat := evalPosition(s.Eval, pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qdepth >= qsMax {
		return alpha
	}

	var list brd.MoveList
	pos.GenerateCaptures(&list)
	scored := s.scoreMoves(pos, &list, 0, 0)

	us := pos.ToMove
	for i := 0; i < len(scored); i++ {
		nextBest(scored, i)
		m := scored[i].move

		if !m.IsPromotion() && standPat+deltaMargin < alpha {
			break
		}

		pos.Make(m)
		if pos.IsAttacked(pos.King(us), pos.ToMove) {
			pos.Unmake(m)
			continue
		}
		score := -s.quiescence(pos, -beta, -alpha, qdepth+1)
		pos.Unmake(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
