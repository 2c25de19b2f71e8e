package searcher

import (
	"baghchal/experiments/metrics"
	"baghchal/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher runs depth-first searches from a root position. It is not safe for
// concurrent use.
type Searcher struct {
	cutoff   int
	evaluate game.Evaluate
	fullTree bool
	metrics  metrics.Collector
}

// WithCutoff evaluates nodes deeper than depth plies with the heuristic.
// With cutoff 0 the root is expanded and its children are evaluated.
func WithCutoff(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithFullTree keeps every visited node reachable from the root. By default
// a node drops its children once it is resolved, except for the root.
func WithFullTree() Option {
	return func(s *Searcher) {
		s.fullTree = true
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// NewSearcher returns a searcher with no cutoff and the mobility heuristic
// unless configured otherwise. The heuristic also scores non-terminal
// positions where the side to move has no legal move.
func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		cutoff:   Unbounded,
		evaluate: game.EvaluateMobility,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// AlphaBeta searches g with a fresh searcher built from options.
func AlphaBeta(g *game.Game, options ...Option) *Node {
	root, _ := NewSearcher(options...).AlphaBeta(g)
	return root
}

// AlphaBetaSearch searches g with the given cutoff (negative for none) and
// evaluation function and returns the resolved root.
func AlphaBetaSearch(g *game.Game, cutoff int, evaluate game.Evaluate) *Node {
	root, _ := NewSearcher(WithCutoff(cutoff), WithEvaluationFn(evaluate)).AlphaBeta(g)
	return root
}

// AlphaBeta builds the search tree below g with alpha-beta pruning. The root's
// children carry the values used to pick a move, see BestMove.
func (s *Searcher) AlphaBeta(g *game.Game) (*Node, metrics.SearchMetric) {
	s.metrics.Start(s.cutoff)

	root := newRoot(g)
	s.alphaBeta(root)

	metric := s.metrics.Complete()
	log.Debug().Msgf("alpha-beta from %v: value=%v children=%d nodes=%d prunes=%d in %v",
		g, root.Value, len(root.Children), metric.Nodes, metric.Prunes, metric.Duration)
	return root, metric
}

func (s *Searcher) alphaBeta(node *Node) {
	moves, ok := s.leaf(node)
	if ok {
		return
	}

	node.expanded = true
	for _, move := range moves {
		child := newChild(node, move)
		node.Children = append(node.Children, child)

		s.alphaBeta(child)
		if !s.fullTree {
			child.Children = nil
		}

		if node.Maximizing() {
			if child.Value > node.Value {
				node.Value = child.Value
			}
			node.Alpha = max(node.Alpha, node.Value)
			if node.Value >= node.Beta { // Beta cutoff
				s.metrics.AddPrune()
				break
			}
		} else {
			if child.Value < node.Value {
				node.Value = child.Value
			}
			node.Beta = min(node.Beta, node.Value)
			if node.Value <= node.Alpha { // Alpha cutoff
				s.metrics.AddPrune()
				break
			}
		}
	}

	node.resolve(node.Value)
}

// leaf resolves node if it is terminal, beyond the cutoff or has no moves.
// Otherwise it returns the moves to expand.
func (s *Searcher) leaf(node *Node) ([]game.Move, bool) {
	s.metrics.AddNode(node.Depth)

	if winner := node.Game.Winner(); winner != game.NoPlayer {
		node.Terminal = true
		node.resolve(terminalValue(winner))
		s.metrics.AddTerminal()
		return nil, true
	}

	if s.cutoff != Unbounded && node.Depth > s.cutoff {
		node.resolve(s.evaluate(&node.Game))
		s.metrics.AddEvaluation()
		return nil, true
	}

	moves := node.Game.LegalMoves()
	if len(moves) == 0 {
		log.Debug().Msgf("%v to move has no moves at %v, scoring with the heuristic", node.Game.Player(), node.Game)
		node.resolve(s.evaluate(&node.Game))
		s.metrics.AddEvaluation()
		return nil, true
	}

	return moves, false
}
