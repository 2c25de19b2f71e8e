package searcher

import "baghchal/game"

// BestMove returns the move of the root child with the best value for the
// side to move at the root. Ties go to the child generated first.
func BestMove(root *Node) (game.Move, error) {
	if len(root.Children) == 0 {
		return game.Move{}, ErrNoMoves
	}

	best := root.Children[0]
	for _, child := range root.Children[1:] {
		if root.Maximizing() && child.Value > best.Value ||
			!root.Maximizing() && child.Value < best.Value {
			best = child
		}
	}
	return *best.Move, nil
}
