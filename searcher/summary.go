package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// Branch is one first move out of the root with its accumulated statistics.
type Branch struct {
	ID    NodeID
	Move  game.Move
	Wins  uint32
	Plays uint32
}

// Summary is the aggregate view of an evaluated tree. Picking a move from it
// is left to the caller.
type Summary struct {
	Nodes    int
	Leaves   int
	Wins     uint32
	Plays    uint32
	Branches []Branch
}

func (t *Tree) Summary() Summary {
	if len(t.nodes) == 0 {
		return Summary{}
	}
	root := t.nodes[Root]
	s := Summary{
		Nodes:  len(t.nodes),
		Leaves: len(t.leaves),
		Wins:   root.wins,
		Plays:  root.plays,
	}
	for _, id := range t.Children(Root) {
		n := t.nodes[id]
		s.Branches = append(s.Branches, Branch{ID: id, Move: n.move, Wins: n.wins, Plays: n.plays})
	}
	return s
}

// Records converts the branches for the CSV writer, ranked in creation order.
func (s Summary) Records() []metrics.BranchRecord {
	records := make([]metrics.BranchRecord, 0, len(s.Branches))
	for i, b := range s.Branches {
		records = append(records, metrics.BranchRecord{
			Rank:  i + 1,
			Move:  b.Move.String(),
			Wins:  b.Wins,
			Plays: b.Plays,
		})
	}
	return records
}
