package game

import "golang.org/x/exp/slices"

const (
	Rows = 5
	Cols = 5
)

// Square is one intersection of the board, addressed by row and column.
type Square struct {
	Row int
	Col int
}

// OnBoard reports whether the square lies inside the 5x5 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

// Neighbors returns the squares one step away from s along a drawn line.
// The returned slice is shared and must not be modified.
func Neighbors(s Square) []Square {
	return adjacency[s.Row][s.Col]
}

// AreAdjacent checks if two squares are joined by a line of the board.
func AreAdjacent(a, b Square) bool {
	return slices.Contains(Neighbors(a), b)
}

// Squares lists every intersection in row-major order.
func Squares() []Square {
	return allSquares
}

var (
	adjacency  [Rows][Cols][]Square
	allSquares []Square
)

// Diagonal lines only pass through the 13 intersections whose row and column
// have the same parity.
var diagonalData = map[Square][]Square{
	{0, 0}: {{1, 1}},
	{0, 2}: {{1, 1}, {1, 3}},
	{0, 4}: {{1, 3}},
	{1, 1}: {{0, 0}, {0, 2}, {2, 0}, {2, 2}},
	{1, 3}: {{0, 2}, {0, 4}, {2, 2}, {2, 4}},
	{2, 0}: {{1, 1}, {3, 1}},
	{2, 2}: {{1, 1}, {1, 3}, {3, 1}, {3, 3}},
	{2, 4}: {{1, 3}, {3, 3}},
	{3, 1}: {{2, 0}, {2, 2}, {4, 0}, {4, 2}},
	{3, 3}: {{2, 2}, {2, 4}, {4, 2}, {4, 4}},
	{4, 0}: {{3, 1}},
	{4, 2}: {{3, 1}, {3, 3}},
	{4, 4}: {{3, 3}},
}

// orthogonal directions in generation order: up, down, left, right
var orthogonal = [4]Square{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func init() {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sq := Square{r, c}
			allSquares = append(allSquares, sq)

			neighbors := []Square{}
			for _, d := range orthogonal {
				n := Square{r + d.Row, c + d.Col}
				if n.OnBoard() {
					neighbors = append(neighbors, n)
				}
			}
			neighbors = append(neighbors, diagonalData[sq]...)
			adjacency[r][c] = neighbors
		}
	}
}
