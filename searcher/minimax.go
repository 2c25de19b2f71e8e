package searcher

import (
	"baghchal/experiments/metrics"
	"baghchal/game"
)

func Minimax(g *game.Game, options ...Option) *Node {
	root, _ := NewSearcher(options...).Minimax(g)
	return root
}

// Minimax expands every move down to the cutoff without pruning and keeps the
// whole tree. It applies the same leaf rules as AlphaBeta, so both agree on
// the root value and on the move BestMove picks.
func (s *Searcher) Minimax(g *game.Game) (*Node, metrics.SearchMetric) {
	s.metrics.Start(s.cutoff)
	root := newRoot(g)
	s.minimax(root)
	return root, s.metrics.Complete()
}

func (s *Searcher) minimax(node *Node) {
	moves, ok := s.leaf(node)
	if ok {
		return
	}

	node.expanded = true
	for _, move := range moves {
		child := newChild(node, move)
		node.Children = append(node.Children, child)
		s.minimax(child)

		if node.Maximizing() {
			node.Value = max(node.Value, child.Value)
		} else {
			node.Value = min(node.Value, child.Value)
		}
	}
	node.resolve(node.Value)
}
