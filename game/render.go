package game

import "strings"

type RenderOptions struct {
	// Spaces between cells.
	InnerSpaces bool
	// Draw | and - around the board.
	OuterBoundaries bool
	// Draw | between cells and lines between ranks.
	InnerBoundaries bool
	UpperCase       bool
	LabelLeft       bool
	LabelRight      bool
	LabelTop        bool
	LabelBottom     bool
	Empty           byte
}

var DefaultRenderOptions = RenderOptions{
	InnerSpaces: true,
	LabelLeft:   true,
	LabelBottom: true,
	Empty:       '.',
}

// Render draws the board with rank 8 on top, w for white and b for black.
func (b Board) Render(o RenderOptions) string {
	empty := o.Empty
	if empty == 0 {
		empty = '.'
	}
	white, black := byte('w'), byte('b')
	if o.UpperCase {
		white, black = 'W', 'B'
	}
	separator := ""
	switch {
	case o.InnerBoundaries && o.InnerSpaces:
		separator = " | "
	case o.InnerBoundaries:
		separator = "|"
	case o.InnerSpaces:
		separator = " "
	}
	edge, pad := "", ""
	if o.OuterBoundaries {
		edge = "|"
		if o.InnerSpaces {
			pad = " "
		}
	}

	row := func(cells []string) string {
		return edge + pad + strings.Join(cells, separator) + pad + edge
	}
	files := make([]string, Size)
	for x := range files {
		files[x] = string(rune('A' + x))
	}
	legend := strings.Repeat(" ", len(edge+pad)) + strings.Join(files, separator)
	rule := func(c byte) string {
		return strings.Repeat(string(c), len(row(files)))
	}
	labelled := func(label, line string, blank bool) string {
		if blank {
			label = " "
		}
		var sb strings.Builder
		if o.LabelLeft {
			sb.WriteString(label + " ")
		}
		sb.WriteString(line)
		if o.LabelRight {
			sb.WriteString(" " + label)
		}
		return strings.TrimRight(sb.String(), " ")
	}

	var lines []string
	if o.LabelTop {
		lines = append(lines, labelled("", legend, true))
	}
	if o.OuterBoundaries {
		lines = append(lines, labelled("", rule('-'), true))
	}
	for y := Size - 1; y >= 0; y-- {
		cells := make([]string, Size)
		for x := range cells {
			sq, _ := NewSquare(x, y)
			cell := empty
			if piece, ok := b.PieceAt(sq); ok {
				cell = white
				if piece.Owner == Black {
					cell = black
				}
			}
			cells[x] = string(cell)
		}
		lines = append(lines, labelled(string(rune('1'+y)), row(cells), false))
		if o.InnerBoundaries && y > 0 {
			lines = append(lines, labelled("", rule('-'), true))
		}
	}
	if o.OuterBoundaries {
		lines = append(lines, labelled("", rule('-'), true))
	}
	if o.LabelBottom {
		lines = append(lines, labelled("", legend, true))
	}
	return strings.Join(lines, "\n") + "\n"
}
