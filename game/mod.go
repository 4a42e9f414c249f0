package game

import "errors"

var (
	ErrParse       = errors.New("cannot parse move")
	ErrIllegalMove = errors.New("illegal move")
	ErrFEN         = errors.New("invalid FEN")
)

// Size is the number of files and ranks of the board.
const Size = 8

// Rules decides how pieces move and when a game is over. A Board carries the
// Rules it was created under, so every operation on it follows the same table.
type Rules interface {
	Name() string
	StartingBoard() Board
	Movement(k Kind) MoveGenerator
	// Outcome reports the result of b when p is the player about to move.
	Outcome(b Board, p Player) Outcome
}

// MoveGenerator returns every destination reachable from a square holding one
// of the mover's pieces.
type MoveGenerator func(from Square, friends, enemies Bitboard) Bitboard

// Evaluates the board from p's perspective. Terminal boards must map to
// exactly WinScore, LossScore or DrawScore.
type Evaluate func(b Board, p Player) Score

// LegalMoves returns every legal move for p on b, ordered by origin square
// and then destination square.
func LegalMoves(b Board, p Player) []Move {
	if b.ToMove() != p {
		return nil
	}
	return b.LegalMoves()
}

func IsLegal(m Move, b Board, p Player) bool {
	return b.ToMove() == p && b.IsLegal(m)
}

// GameOutcome reports the outcome of b when p is the player about to move.
func GameOutcome(b Board, p Player) Outcome {
	return b.rulesOrDefault().Outcome(b, p)
}
