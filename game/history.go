package game

// Game records the positions of a game and supports undo and redo.
type Game struct {
	positions []Board
	moves     []Move
	current   int
}

func NewGame(start Board) *Game {
	return &Game{positions: []Board{start}}
}

func (g *Game) Current() Board {
	return g.positions[g.current]
}

func (g *Game) Status() Outcome {
	return g.Current().Outcome()
}

// MakeMove plays m and drops any undone moves. It returns false, leaving the
// game unchanged, when m is illegal.
func (g *Game) MakeMove(m Move) bool {
	next, err := g.Current().Apply(m)
	if err != nil {
		return false
	}
	g.positions = append(g.positions[:g.current+1], next)
	g.moves = append(g.moves[:g.current], m)
	g.current++
	return true
}

func (g *Game) CanUndo() bool {
	return g.current > 0
}

func (g *Game) CanRedo() bool {
	return g.current < len(g.moves)
}

// Undo steps back one ply and returns the move taken back.
func (g *Game) Undo() (Move, bool) {
	if !g.CanUndo() {
		return Move{}, false
	}
	g.current--
	return g.moves[g.current], true
}

func (g *Game) Redo() (Move, bool) {
	if !g.CanRedo() {
		return Move{}, false
	}
	g.current++
	return g.moves[g.current-1], true
}

// Reset returns to the starting position and forgets all moves.
func (g *Game) Reset() {
	g.positions = g.positions[:1]
	g.moves = g.moves[:0]
	g.current = 0
}

// Moves returns the moves leading to the current position.
func (g *Game) Moves() []Move {
	return append([]Move(nil), g.moves[:g.current]...)
}

func (g *Game) LastMove() (Move, bool) {
	if g.current == 0 {
		return Move{}, false
	}
	return g.moves[g.current-1], true
}
