package searcher

import (
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
)

// Rollout plays the node's position to the end with two random players and
// reports whether perspective finished with more discs. A tie is a loss.
// The rollout engine always starts with Dark to move.
func (t *Tree) Rollout(id NodeID, perspective game.Colour) bool {
	e := engine.NewEngine(player.NewRandom(t.rng), player.NewRandom(t.rng), t.nodes[id].board)
	result := e.Run()
	win := isWin(result.Dark, result.Light, perspective)
	t.metrics.AddRollout(win)
	return win
}

func isWin(dark, light int, perspective game.Colour) bool {
	if perspective == game.Dark {
		return dark > light
	}
	return light > dark
}

// Backup adds one play, and one win if win is set, to id and every ancestor
// up to and including the root.
func (t *Tree) Backup(id NodeID, win bool) {
	for {
		n := &t.nodes[id]
		n.plays++
		if win {
			n.wins++
		}
		parent, ok := n.Parent()
		if !ok {
			return
		}
		id = parent
	}
}

// Evaluate rolls out every leaf once, in leaf order, and backs up each result.
func (t *Tree) Evaluate(perspective game.Colour) metrics.SearchMetric {
	for _, leaf := range t.leaves {
		t.Backup(leaf, t.Rollout(leaf, perspective))
	}
	return t.metrics.Complete()
}

// Search builds the tree for colour, evaluates it from colour's point of view
// and summarises the result.
func (t *Tree) Search(root game.Board, depth int, colour game.Colour) (Summary, metrics.SearchMetric) {
	t.Build(root, depth, colour)
	metric := t.Evaluate(colour)
	return t.Summary(), metric
}
