package searcher

import "reversi/game"

// NodeID indexes a TreeNode in its Tree. The root is always 0.
type NodeID uint32

const Root NodeID = 0

// TreeNode is one hypothetical position. Nodes never move or disappear while
// a build is in progress, and a node's parent always has a smaller id.
type TreeNode struct {
	parent    NodeID
	hasParent bool
	board     game.Board
	move      game.Move
	hasMove   bool
	wins      uint32
	plays     uint32
}

// Parent reports false for the root.
func (n TreeNode) Parent() (NodeID, bool) {
	return n.parent, n.hasParent
}

// Move is the move that produced this node; false for the root.
func (n TreeNode) Move() (game.Move, bool) {
	return n.move, n.hasMove
}

func (n TreeNode) Board() game.Board { return n.board }
func (n TreeNode) Wins() uint32      { return n.wins }
func (n TreeNode) Plays() uint32     { return n.plays }
