package game

import (
	"fmt"
	"math/bits"
)

// Board is an immutable position: the pieces of both players, the side to
// move, the number of plies played and the Rules in force. Apply returns a
// new Board and never changes the receiver.
type Board struct {
	rules  Rules
	pieces [2]Bitboard
	toMove Player
	ply    int
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	return standard.StartingBoard()
}

// NewBoardFrom builds a position from raw bitboards. It rejects boards with
// a square claimed by both players.
func NewBoardFrom(r Rules, white, black Bitboard, toMove Player, ply int) (Board, error) {
	if white&black != 0 {
		return Board{}, fmt.Errorf("squares %v hold both colours", (white & black).Squares())
	}
	if toMove != White && toMove != Black {
		return Board{}, fmt.Errorf("unknown player %d", toMove)
	}
	if ply < 0 {
		return Board{}, fmt.Errorf("negative ply %d", ply)
	}
	if r == nil {
		r = standard
	}
	return Board{rules: r, pieces: [2]Bitboard{white, black}, toMove: toMove, ply: ply}, nil
}

func (b Board) rulesOrDefault() Rules {
	if b.rules == nil {
		return standard
	}
	return b.rules
}

func (b Board) Rules() Rules {
	return b.rulesOrDefault()
}

func (b Board) ToMove() Player {
	return b.toMove
}

func (b Board) Ply() int {
	return b.ply
}

func (b Board) Pieces(p Player) Bitboard {
	return b.pieces[p]
}

func (b Board) Occupied() Bitboard {
	return b.pieces[White] | b.pieces[Black]
}

func (b Board) PieceAt(s Square) (Piece, bool) {
	for _, p := range []Player{White, Black} {
		if b.pieces[p].Has(s) {
			return Piece{Kind: Checker, Owner: p}, true
		}
	}
	return Piece{}, false
}

// Destinations returns the squares the piece on from may move to, ignoring
// whether the game is already over. It is empty unless from holds a piece
// of the side to move.
func (b Board) Destinations(from Square) Bitboard {
	return b.destinations(from, b.toMove)
}

func (b Board) destinations(from Square, p Player) Bitboard {
	piece, ok := b.PieceAt(from)
	if !ok || piece.Owner != p {
		return 0
	}
	generate := b.rulesOrDefault().Movement(piece.Kind)
	if generate == nil {
		return 0
	}
	return generate(from, b.pieces[p], b.pieces[p.Other()])
}

// moves generates p's moves without consulting the outcome.
func (b Board) moves(p Player) []Move {
	var moves []Move
	for _, from := range b.pieces[p].Squares() {
		for _, to := range b.destinations(from, p).Squares() {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// HasMoves reports whether p could move, ignoring the outcome.
func (b Board) HasMoves(p Player) bool {
	for from := b.pieces[p]; from != 0; from &= from - 1 {
		if b.destinations(from.First(), p) != 0 {
			return true
		}
	}
	return false
}

// Outcome reports the result of the position for the side to move.
func (b Board) Outcome() Outcome {
	return b.rulesOrDefault().Outcome(b, b.toMove)
}

// Status returns the outcome together with the legal moves of the side to
// move, which are empty once the game is over.
func (b Board) Status() (Outcome, []Move) {
	outcome := b.Outcome()
	if outcome != Ongoing {
		return outcome, nil
	}
	return outcome, b.moves(b.toMove)
}

func (b Board) LegalMoves() []Move {
	_, moves := b.Status()
	return moves
}

func (b Board) IsLegal(m Move) bool {
	if !b.Destinations(m.From).Has(m.To) {
		return false
	}
	return b.Outcome() == Ongoing
}

// Apply plays m for the side to move.
func (b Board) Apply(m Move) (Board, error) {
	if !b.IsLegal(m) {
		return Board{}, fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.toMove)
	}
	return b.play(m), nil
}

// play moves a piece of the side to move without any checks.
func (b Board) play(m Move) Board {
	next := b
	mover, other := b.toMove, b.toMove.Other()
	next.pieces[mover] = next.pieces[mover].Without(m.From).With(m.To)
	next.pieces[other] = next.pieces[other].Without(m.To)
	next.toMove = other
	next.ply++
	return next
}

// Hash mixes the pieces, the side to move and the ply counter.
func (b Board) Hash() uint64 {
	h := splitmix64(uint64(b.pieces[White]))
	h ^= bits.RotateLeft64(splitmix64(uint64(b.pieces[Black])), 17)
	return h ^ splitmix64(uint64(b.ply)<<1|uint64(b.toMove))
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb
	return x ^ x>>31
}

func (b Board) String() string {
	return b.Render(DefaultRenderOptions)
}
