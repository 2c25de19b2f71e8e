package searcher

import "baghchal/game"

// Node is one position of the search tree.
type Node struct {
	Game     game.Game
	Move     *game.Move // Move that produced this position, nil at the root
	Children []*Node    // In generation order; pruned siblings are never created
	Alpha    float64
	Beta     float64
	Value    float64
	Depth    int
	Terminal bool // The position is won by one side

	expanded bool
	resolved bool
}

func newRoot(g *game.Game) *Node {
	return &Node{
		Game:  *g,
		Alpha: TigerWin,
		Beta:  GoatWin,
		Value: worstValue(g.Player()),
	}
}

// newChild plays move on a copy of the parent position. The child searches
// inside the parent's current window.
func newChild(parent *Node, move game.Move) *Node {
	child := &Node{
		Game:  *parent.Game.Play(move),
		Move:  &move,
		Alpha: parent.Alpha,
		Beta:  parent.Beta,
		Depth: parent.Depth + 1,
	}
	child.Value = worstValue(child.Game.Player())
	return child
}

// Maximizing reports whether the side to move at this node maximizes the value.
func (n *Node) Maximizing() bool {
	return n.Game.Player() == game.GoatPlayer
}

func (n *Node) Expanded() bool {
	return n.expanded
}

// Resolved reports whether Value is final.
func (n *Node) Resolved() bool {
	return n.resolved
}

func (n *Node) resolve(value float64) {
	n.Value = value
	n.resolved = true
}
