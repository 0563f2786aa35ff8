package searcher

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"reversi/experiments/metrics"
	"reversi/game"
)

const (
	DefaultNodeCapacity = 1 << 16
	DefaultLeafCapacity = 1 << 14
)

type Option func(t *Tree)

// WithRand sets the source used by rollouts.
func WithRand(rng *rand.Rand) Option {
	return func(t *Tree) {
		if rng != nil {
			t.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(t *Tree) {
		t.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacity pre-reserves the node arena and the leaf list. Builds that
// outgrow it just grow the slices.
func WithCapacity(nodes, leaves int) Option {
	return func(t *Tree) {
		if nodes > 0 {
			t.nodes = make([]TreeNode, 0, nodes)
		}
		if leaves > 0 {
			t.leaves = make([]NodeID, 0, leaves)
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(t *Tree) {
		if collector != nil {
			t.metrics = collector
		}
	}
}

// Tree expands every line of play from a root to a fixed depth and scores
// the deepest positions by random rollouts. Nodes live in a flat arena.
type Tree struct {
	nodes   []TreeNode
	leaves  []NodeID
	rng     *rand.Rand
	metrics metrics.Collector
}

func NewTree(options ...Option) *Tree {
	t := &Tree{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	if t.rng == nil {
		seed := frand.Uint64n(math.MaxUint64)
		log.Debug().Uint64("seed", seed).Msg("seeding search tree")
		t.rng = rand.New(rand.NewSource(seed))
	}
	if t.nodes == nil {
		t.nodes = make([]TreeNode, 0, DefaultNodeCapacity)
	}
	if t.leaves == nil {
		t.leaves = make([]NodeID, 0, DefaultLeafCapacity)
	}
	return t
}

// Build discards the previous tree and expands root. colour moves at the
// root, and colours then alternate strictly by depth whether or not a level
// had a move. Nodes created depth+1 plies below the root are the leaves. A
// node above that level with no legal move gets no children and yields no
// leaf.
func (t *Tree) Build(root game.Board, depth int, colour game.Colour) {
	if depth < 0 {
		panic(fmt.Sprintf("negative search depth %d", depth))
	}
	t.nodes = t.nodes[:0]
	t.leaves = t.leaves[:0]
	t.metrics.Start(depth, colour)

	t.push(TreeNode{board: root})
	t.expand(Root, depth, colour)

	log.Debug().
		Int("depth", depth).
		Str("colour", colour.String()).
		Int("nodes", len(t.nodes)).
		Int("leaves", len(t.leaves)).
		Msg("built search tree")
}

func (t *Tree) expand(parent NodeID, remaining int, colour game.Colour) {
	board := t.nodes[parent].board
	for _, m := range board.LegalMoves(colour) {
		child := board
		child.Apply(m)
		id := t.push(TreeNode{
			parent:    parent,
			hasParent: true,
			board:     child,
			move:      m,
			hasMove:   true,
		})
		if remaining == 0 {
			t.leaves = append(t.leaves, id)
			t.metrics.AddLeaf()
			continue
		}
		t.expand(id, remaining-1, colour.Opposite())
	}
}

func (t *Tree) push(n TreeNode) NodeID {
	t.nodes = append(t.nodes, n)
	t.metrics.AddNode()
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a copy of the node; it panics for an unknown id.
func (t *Tree) Node(id NodeID) TreeNode { return t.nodes[id] }

// Leaves returns the leaf ids in creation order. The slice is owned by the
// tree and is reused by the next Build.
func (t *Tree) Leaves() []NodeID { return t.leaves }

// Children lists the direct children of id in creation order.
func (t *Tree) Children(id NodeID) []NodeID {
	var children []NodeID
	for i := int(id) + 1; i < len(t.nodes); i++ {
		if p, ok := t.nodes[i].Parent(); ok && p == id {
			children = append(children, NodeID(i))
		}
	}
	return children
}
