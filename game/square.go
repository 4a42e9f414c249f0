package game

import (
	"fmt"
	"strings"
)

// Square indexes a cell: file A..H is x 0..7, rank 1..8 is y 0..7.
type Square uint8

func NewSquare(x, y int) (Square, bool) {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return 0, false
	}
	return Square(y*Size + x), true
}

// ParseSquare reads a file letter followed by a rank digit, e.g. "a1" or "H8".
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: square %q", ErrParse, s)
	}
	sq, ok := NewSquare(int(s[0])-'a', int(s[1])-'1')
	if !ok {
		return 0, fmt.Errorf("%w: square %q", ErrParse, s)
	}
	return sq, nil
}

func (s Square) X() int {
	return int(s) % Size
}

func (s Square) Y() int {
	return int(s) / Size
}

func (s Square) Valid() bool {
	return s < Size*Size
}

func (s Square) Bitboard() Bitboard {
	return 1 << s
}

func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte('A' + s.X()), byte('1' + s.Y())})
}
