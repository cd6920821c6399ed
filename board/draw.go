package board

// IsDraw reports whether the position is a draw by the 50-move rule or by
// threefold repetition. The repetition scan is bounded to the positions
// reachable since the last pawn move or capture: it walks back through
// history at most HalfmoveClock plies, stepping by 2 so every candidate
// shares the current side to move, counting occurrences of the current
// hash. This is cheaper than a full-game scan and cannot miss a
// repetition, since a pawn move or capture changes the position for good:
// every earlier occurrence of the current position lies after the last
// such move, which is within the last HalfmoveClock plies.
func (p *Position) IsDraw() bool {
	if p.HalfmoveClock >= 100 {
		return true
	}

	n := len(p.history)
	occurrences := 0
	limit := p.HalfmoveClock
	if limit > n {
		limit = n
	}
	for back := 2; back <= limit; back += 2 {
		if p.history[n-back].Hash == p.Hash {
			occurrences++
			if occurrences >= 2 {
				return true
			}
		}
	}
	return false
}
