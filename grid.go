package astar

import "iter"

const (
	orthogonalStepCost = 2
	diagonalStepCost   = 3
)

// Point is a cell position on a grid.
type Point struct {
	X, Y int
}

// Grid is a 2D environment. Get returns the cost of entering the cell at
// (x, y), or false when the cell is impassable or outside the grid.
type Grid interface {
	Get(x, y int) (cost int, ok bool)
}

// DiagonalGrid can be implemented by a Grid to allow 8-directional moves.
type DiagonalGrid interface {
	Diagonal() bool
}

// CornerCutter can be implemented by a Grid to allow diagonal moves whose
// flanking orthogonal cells are blocked.
type CornerCutter interface {
	CutCorners() bool
}

// gridEnvironment turns a Grid into a ReusableProblem. Orthogonal moves
// cost the entered cell plus 2, diagonal moves the cell plus 3.
type gridEnvironment struct {
	grid       Grid
	diagonal   bool
	cutCorners bool
}

func newGridEnvironment(grid Grid) gridEnvironment {
	environment := gridEnvironment{grid: grid}
	if diagonal, ok := grid.(DiagonalGrid); ok {
		environment.diagonal = diagonal.Diagonal()
	}
	if cutter, ok := grid.(CornerCutter); ok {
		environment.cutCorners = cutter.CutCorners()
	}
	return environment
}

// Heuristic is the Manhattan distance scaled to the orthogonal step cost.
func (environment gridEnvironment) Heuristic(node, goal Point) int {
	return manhattan(node, goal) * orthogonalStepCost
}

func (environment gridEnvironment) EstimateLength(start, goal Point) (int, bool) {
	return manhattan(start, goal) + 1, true
}

func (environment gridEnvironment) Neighbors(node Point) iter.Seq2[Point, int] {
	return func(yield func(Point, int) bool) {
		x, y := node.X, node.Y
		up := Point{x, y + 1}
		left := Point{x - 1, y}
		right := Point{x + 1, y}
		down := Point{x, y - 1}

		upCost, upOK := environment.grid.Get(up.X, up.Y)
		leftCost, leftOK := environment.grid.Get(left.X, left.Y)
		rightCost, rightOK := environment.grid.Get(right.X, right.Y)
		downCost, downOK := environment.grid.Get(down.X, down.Y)

		orthogonal := []struct {
			point Point
			cost  int
			ok    bool
		}{
			{up, upCost, upOK},
			{left, leftCost, leftOK},
			{right, rightCost, rightOK},
			{down, downCost, downOK},
		}
		for _, move := range orthogonal {
			if move.ok && !yield(move.point, move.cost+orthogonalStepCost) {
				return
			}
		}

		if !environment.diagonal {
			return
		}
		diagonal := []struct {
			point   Point
			flanked bool
		}{
			{Point{x - 1, y + 1}, upOK && leftOK},
			{Point{x + 1, y + 1}, upOK && rightOK},
			{Point{x + 1, y - 1}, rightOK && downOK},
			{Point{x - 1, y - 1}, leftOK && downOK},
		}
		for _, move := range diagonal {
			if !environment.cutCorners && !move.flanked {
				continue
			}
			cost, ok := environment.grid.Get(move.point.X, move.point.Y)
			if ok && !yield(move.point, cost+diagonalStepCost) {
				return
			}
		}
	}
}

// GridProblem returns a Problem searching grid from start to goal.
func GridProblem(grid Grid, start, goal Point) Problem[Point, int] {
	return Bind[Point, int](newGridEnvironment(grid), start, goal)
}

// SearchGrid searches grid from start to goal.
func SearchGrid(grid Grid, start, goal Point, options ...Option) Result[Point, int] {
	return Search(GridProblem(grid, start, goal), options...)
}

func manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
