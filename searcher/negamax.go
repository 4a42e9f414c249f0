package searcher

import (
	"fmt"
	"rock/experiments/metrics"
	"rock/game"
)

// line is a scored move, the reply chosen at some node.
type line struct {
	move    game.Move
	hasMove bool
	score   game.Score
}

// worker runs fail-soft negamax with principal variation search. Each
// worker owns its table; the budget and collector are shared.
type worker struct {
	evaluate game.Evaluate
	table    *table
	budget   *budget
	metrics  metrics.Collector
}

// search returns the value of b for the side to move within the window
// (alpha, beta). Values are exact inside the window, an upper bound when at
// or below alpha and a lower bound when at or above beta. It reports false
// once the budget is spent, in which case the value must be discarded.
func (w *worker) search(b game.Board, depth int, alpha, beta game.Score, killer line) (line, bool) {
	if !w.budget.spend() {
		return line{}, false
	}
	w.metrics.AddNode()

	if depth <= 0 {
		return line{score: w.evaluate(b, b.ToMove())}, true
	}

	cached, hit := w.table.lookup(b)
	if hit {
		w.metrics.AddTableHit()
		if cached.terminal || (cached.kind == pvNode && cached.depth == depth) {
			return line{move: cached.move, hasMove: cached.hasMove, score: cached.score}, true
		}
	}

	outcome, moves := b.Status()
	if outcome != game.Ongoing {
		score := game.OutcomeScore(outcome, b.ToMove())
		w.table.store(b, entry{score: score, depth: depth, kind: pvNode, terminal: true})
		return line{score: score}, true
	}

	n := node{worker: w, board: b, depth: depth, alpha: alpha, beta: beta, best: line{score: -infinity}}
	if hit && cached.hasMove {
		if !n.play(cached.move) {
			return line{}, false
		}
	}
	if n.open() && killer.hasMove && !n.played(killer.move) && contains(moves, killer.move) {
		if !n.play(killer.move) {
			return line{}, false
		}
	}
	for _, m := range moves {
		if !n.open() {
			break
		}
		if n.played(m) {
			continue
		}
		if !n.play(m) {
			return line{}, false
		}
	}

	w.table.store(b, entry{move: n.best.move, hasMove: n.best.hasMove, score: n.best.score, depth: depth, kind: n.kind})
	return n.best, true
}

// node is the state of one search call while its moves are tried.
type node struct {
	*worker
	board       game.Board
	depth       int
	alpha, beta game.Score
	best        line
	kind        nodeType
	reply       line // Best reply found below best.move, the killer for later siblings
	tried       []game.Move
}

func (n *node) open() bool {
	return n.kind != cutNode
}

func (n *node) played(m game.Move) bool {
	return contains(n.tried, m)
}

// play searches m, the first move with the full window and later ones with a
// null window that is widened when it fails high.
func (n *node) play(m game.Move) bool {
	next, err := n.board.Apply(m)
	if err != nil {
		panic(fmt.Sprintf("searcher: %v", err))
	}

	var r line
	var ok bool
	if len(n.tried) == 0 {
		r, ok = n.search(next, n.depth-1, -n.beta, -n.alpha, n.reply)
	} else {
		r, ok = n.search(next, n.depth-1, -n.alpha-1, -n.alpha, n.reply)
		if ok && -r.score > n.alpha && -r.score < n.beta {
			n.metrics.AddReSearch()
			r, ok = n.search(next, n.depth-1, -n.beta, -n.alpha, n.reply)
		}
	}
	if !ok {
		return false
	}
	n.tried = append(n.tried, m)

	score := -r.score
	if score > n.best.score {
		n.best = line{move: m, hasMove: true, score: score}
		if r.hasMove {
			n.reply = r
		}
	}
	if n.best.score > n.alpha {
		n.alpha = n.best.score
		n.kind = pvNode
	}
	if n.alpha >= n.beta {
		n.kind = cutNode
		n.metrics.AddCutoff()
	}
	return true
}

func contains(moves []game.Move, m game.Move) bool {
	for _, move := range moves {
		if move == m {
			return true
		}
	}
	return false
}
