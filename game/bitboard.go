package game

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, bit i standing for Square(i).
type Bitboard uint64

const (
	notFileA Bitboard = 0xfefefefefefefefe
	notFileH Bitboard = 0x7f7f7f7f7f7f7f7f
)

func (b Bitboard) Has(s Square) bool {
	return s.Valid() && b&s.Bitboard() != 0
}

func (b Bitboard) With(s Square) Bitboard {
	return b | s.Bitboard()
}

func (b Bitboard) Without(s Square) Bitboard {
	return b &^ s.Bitboard()
}

func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// First returns the lowest square of a non-empty set.
func (b Bitboard) First() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares lists the set in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.Count())
	for ; b != 0; b &= b - 1 {
		squares = append(squares, b.First())
	}
	return squares
}

// spread grows the set by one king step in every direction.
func (b Bitboard) spread() Bitboard {
	row := b | (b<<1)&notFileA | (b>>1)&notFileH
	return row | row<<8 | row>>8
}

// group returns the 8-connected component of b containing s.
func (b Bitboard) group(s Square) Bitboard {
	g := s.Bitboard() & b
	for {
		next := g.spread() & b
		if next == g {
			return g
		}
		g = next
	}
}

// groups splits b into its 8-connected components.
func (b Bitboard) groups() []Bitboard {
	var groups []Bitboard
	for b != 0 {
		g := b.group(b.First())
		groups = append(groups, g)
		b &^= g
	}
	return groups
}

// connected reports whether b is one non-empty 8-connected group.
func (b Bitboard) connected() bool {
	return b != 0 && b.group(b.First()) == b
}

// String draws the set with rank 8 on top, x for members and . otherwise.
func (b Bitboard) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := 0; x < Size; x++ {
			sq, _ := NewSquare(x, y)
			if b.Has(sq) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
