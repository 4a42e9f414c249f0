package game

import (
	"fmt"
	"regexp"
	"strings"
)

type Move struct {
	From Square
	To   Square
}

var moveNotation = regexp.MustCompile(`^([a-h]) *([1-8])[^a-z0-9]*([a-h]) *([1-8])$`)

// ParseMove reads two squares separated by any run of non-alphanumeric
// characters, e.g. "A1 B2", "a1b2", "a1-b2" or "A1 -> B2".
func ParseMove(text string) (Move, error) {
	groups := moveNotation.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if groups == nil {
		return Move{}, fmt.Errorf("%w: %q", ErrParse, text)
	}
	from, _ := NewSquare(int(groups[1][0]-'a'), int(groups[2][0]-'1'))
	to, _ := NewSquare(int(groups[3][0]-'a'), int(groups[4][0]-'1'))
	return Move{From: from, To: to}, nil
}

func (m Move) String() string {
	return m.From.String() + " -> " + m.To.String()
}
