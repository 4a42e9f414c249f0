package searcher

import "rock/game"

type nodeType uint8

const (
	allNode nodeType = iota // Every move failed low, score is an upper bound
	pvNode                  // Exact score
	cutNode                 // A move failed high, score is a lower bound
)

type entry struct {
	white, black game.Bitboard
	toMove       game.Player
	ply          int
	used         bool

	move     game.Move
	hasMove  bool
	score    game.Score
	depth    int
	kind     nodeType
	terminal bool
}

func (e *entry) matches(b game.Board) bool {
	return e.used &&
		e.white == b.Pieces(game.White) &&
		e.black == b.Pieces(game.Black) &&
		e.toMove == b.ToMove() &&
		e.ply == b.Ply()
}

// table is a fixed size transposition table owned by a single goroutine.
type table struct {
	entries []entry
	mask    uint64
}

func newTable(bits int) *table {
	size := uint64(1) << bits
	return &table{entries: make([]entry, size), mask: size - 1}
}

func (t *table) slot(b game.Board) *entry {
	return &t.entries[b.Hash()&t.mask]
}

func (t *table) lookup(b game.Board) (entry, bool) {
	e := t.slot(b)
	if !e.matches(b) {
		return entry{}, false
	}
	return *e, true
}

// store keeps exact results in preference to bounds and deeper results in
// preference to shallower ones; a different position always replaces.
func (t *table) store(b game.Board, n entry) {
	e := t.slot(b)
	if e.matches(b) {
		wePv, ttPv := n.kind == pvNode, e.kind == pvNode
		replace := (!wePv && !ttPv && n.depth > e.depth) || (wePv && (!ttPv || n.depth > e.depth))
		if !replace && !n.terminal {
			return
		}
	}
	n.white, n.black = b.Pieces(game.White), b.Pieces(game.Black)
	n.toMove, n.ply = b.ToMove(), b.Ply()
	n.used = true
	*e = n
}

// variation follows the stored best moves from b for at most limit plies.
func (t *table) variation(b game.Board, limit int) []game.Move {
	var line []game.Move
	for len(line) < limit {
		e, ok := t.lookup(b)
		if !ok || !e.hasMove {
			break
		}
		next, err := b.Apply(e.move)
		if err != nil {
			break
		}
		line = append(line, e.move)
		b = next
	}
	return line
}
