package game

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatFEN writes the placement from rank 8 down with P for white and p for
// black, followed by the side to move and the ply counter.
func FormatFEN(b Board) string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < Size; x++ {
			sq, _ := NewSquare(x, y)
			piece, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			if piece.Owner == White {
				sb.WriteByte('P')
			} else {
				sb.WriteByte('p')
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
	side := "w"
	if b.toMove == Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s %d", sb.String(), side, b.ply)
}

// ParseFEN reads a standard LOA position. The side to move and the ply
// counter are optional and default to white and zero.
func ParseFEN(fen string) (Board, error) {
	return ParseFENWithRules(standard, fen)
}

func ParseFENWithRules(r Rules, fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 || len(fields) > 3 {
		return Board{}, fmt.Errorf("%w: expected 1 to 3 fields in %q", ErrFEN, fen)
	}
	pieces, err := parsePlacement(fields[0])
	if err != nil {
		return Board{}, err
	}
	toMove := White
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			toMove = Black
		default:
			return Board{}, fmt.Errorf("%w: side to move %q", ErrFEN, fields[1])
		}
	}
	ply := 0
	if len(fields) > 2 {
		ply, err = strconv.Atoi(fields[2])
		if err != nil || ply < 0 {
			return Board{}, fmt.Errorf("%w: ply %q", ErrFEN, fields[2])
		}
	}
	return NewBoardFrom(r, pieces[White], pieces[Black], toMove, ply)
}

func parsePlacement(placement string) ([2]Bitboard, error) {
	var pieces [2]Bitboard
	ranks := strings.Split(placement, "/")
	if len(ranks) != Size {
		return pieces, fmt.Errorf("%w: expected %d ranks, got %d", ErrFEN, Size, len(ranks))
	}
	for i, rank := range ranks {
		y, x := Size-1-i, 0
		for _, c := range rank {
			if x >= Size {
				return pieces, fmt.Errorf("%w: rank %d is too long", ErrFEN, y+1)
			}
			switch {
			case c >= '1' && c <= '8':
				x += int(c - '0')
				continue
			case c == 'P':
				sq, _ := NewSquare(x, y)
				pieces[White] = pieces[White].With(sq)
			case c == 'p':
				sq, _ := NewSquare(x, y)
				pieces[Black] = pieces[Black].With(sq)
			default:
				return pieces, fmt.Errorf("%w: unexpected %q", ErrFEN, c)
			}
			x++
		}
		if x != Size {
			return pieces, fmt.Errorf("%w: rank %d has %d files", ErrFEN, y+1, x)
		}
	}
	return pieces, nil
}
