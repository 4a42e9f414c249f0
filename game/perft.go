package game

// CountMoves counts the move sequences of the given length from b. Moves are
// generated by the movement rules alone, so finished games keep counting.
func CountMoves(b Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.moves(b.toMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var count uint64
	for _, m := range moves {
		count += CountMoves(b.play(m), depth-1)
	}
	return count
}
