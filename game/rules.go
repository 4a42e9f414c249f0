package game

import (
	"fmt"
	"strings"
)

type Kind uint8

// Checker is the only kind of piece in Lines of Action.
const Checker Kind = iota

type Piece struct {
	Kind  Kind
	Owner Player
}

const (
	StandardName      = "standard"
	ScrambledEggsName = "scrambled-eggs"
)

var standardStart = mustLiteral(`
	.xxxxxx.
	o......o
	o......o
	o......o
	o......o
	o......o
	o......o
	.xxxxxx.`)

var scrambledEggsStart = mustLiteral(`
	.oxoxox.
	x......o
	o......x
	x......o
	o......x
	x......o
	o......x
	.xoxoxo.`)

// StandardRules plays Lines of Action from a fixed starting layout.
type StandardRules struct {
	name     string
	start    [2]Bitboard
	movement map[Kind]MoveGenerator
	maxPlies int
}

type RulesOption func(*StandardRules)

// WithMaxPlies declares a draw once the ply counter reaches n. Zero disables
// the cap.
func WithMaxPlies(n int) RulesOption {
	return func(r *StandardRules) {
		r.maxPlies = max(n, 0)
	}
}

func NewStandardRules(options ...RulesOption) *StandardRules {
	return newRules(StandardName, standardStart, options)
}

// NewScrambledEggsRules starts with the edge pieces alternating colours.
func NewScrambledEggsRules(options ...RulesOption) *StandardRules {
	return newRules(ScrambledEggsName, scrambledEggsStart, options)
}

// RulesByName resolves a variant name as used in configuration files.
func RulesByName(name string, options ...RulesOption) (*StandardRules, error) {
	switch strings.ToLower(name) {
	case "", StandardName:
		return NewStandardRules(options...), nil
	case ScrambledEggsName:
		return NewScrambledEggsRules(options...), nil
	}
	return nil, fmt.Errorf("unknown variant %q", name)
}

func newRules(name string, start [2]Bitboard, options []RulesOption) *StandardRules {
	r := &StandardRules{
		name:     name,
		start:    start,
		movement: map[Kind]MoveGenerator{Checker: lineMoves},
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *StandardRules) Name() string {
	return r.name
}

func (r *StandardRules) MaxPlies() int {
	return r.maxPlies
}

func (r *StandardRules) StartingBoard() Board {
	return Board{rules: r, pieces: r.start, toMove: White}
}

func (r *StandardRules) Movement(k Kind) MoveGenerator {
	return r.movement[k]
}

// Outcome: a side whose pieces form a single group wins, both at once is a
// draw, and so is a mover without moves or a game that hit the ply cap.
func (r *StandardRules) Outcome(b Board, p Player) Outcome {
	white, black := b.pieces[White].connected(), b.pieces[Black].connected()
	switch {
	case white && black:
		return Draw
	case white:
		return WhiteWins
	case black:
		return BlackWins
	}
	if r.maxPlies > 0 && b.ply >= r.maxPlies {
		return Draw
	}
	if !b.HasMoves(p) {
		return Draw
	}
	return Ongoing
}

var standard = NewStandardRules()

// mustLiteral reads a diagram with rank 8 on the first line; x is white,
// o is black and any other character is empty.
func mustLiteral(diagram string) [2]Bitboard {
	var pieces [2]Bitboard
	rows := strings.Fields(diagram)
	if len(rows) != Size {
		panic(fmt.Sprintf("board literal has %d ranks", len(rows)))
	}
	for i, row := range rows {
		if len(row) != Size {
			panic(fmt.Sprintf("board literal rank %d has %d files", Size-i, len(row)))
		}
		for x, c := range row {
			sq, _ := NewSquare(x, Size-1-i)
			switch c {
			case 'x':
				pieces[White] = pieces[White].With(sq)
			case 'o':
				pieces[Black] = pieces[Black].With(sq)
			}
		}
	}
	return pieces
}
