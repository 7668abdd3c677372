package astar_test

import (
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	astar "github.com/pdrpinto/astar/v2"
	"github.com/pdrpinto/astar/v2/maze"
)

type point = astar.Point

// serpentine is the maze
//
//	.
//	........
//	       .
//	........
//	.
//	........
//
// where '.' is passable.
func serpentine(xmax, ymax int) maze.Func {
	return func(x, y int) (int, bool) {
		switch {
		case x < 0 || x > xmax || y < 0 || y > ymax:
			return 0, false
		case y%4 == 0 && x > 0:
			return 0, false
		case (y+2)%4 == 0 && x < xmax:
			return 0, false
		default:
			return 0, true
		}
	}
}

var serpentinePath = []point{
	{0, 0},
	{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}, {7, 1},
	{7, 2},
	{7, 3}, {6, 3}, {5, 3}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {0, 3},
	{0, 4},
}

// requireContiguous checks every step of path is a move offered by the
// grid and that the moves add up to cost.
func requireContiguous(t *testing.T, grid astar.Grid, path []point, cost int) {
	t.Helper()
	require.NotEmpty(t, path)
	problem := astar.GridProblem(grid, path[0], path[len(path)-1])
	g := 0
	for i := 0; i+1 < len(path); i++ {
		step, ok := -1, false
		for next, c := range problem.Neighbors(path[i]) {
			if next == path[i+1] {
				step, ok = c, true
				break
			}
		}
		require.True(t, ok, "%v is not a neighbor of %v", path[i+1], path[i])
		require.GreaterOrEqual(t, step, 0)
		g += step
	}
	assert.Equal(t, cost, g)
}

func TestSearchGridMaze(t *testing.T) {
	grid := serpentine(7, 5)

	result := astar.SearchGrid(grid, point{0, 0}, point{0, 4})

	require.True(t, result.Found)
	assert.Equal(t, serpentinePath, result.Path)
	assert.Equal(t, 2*(len(serpentinePath)-1), result.TotalCost)
	requireContiguous(t, grid, result.Path, result.TotalCost)
}

func TestSearchGridMazeReusable(t *testing.T) {
	grid := serpentine(7, 5)

	first := astar.SearchGrid(grid, point{0, 0}, point{0, 4})
	second := astar.SearchGrid(grid, point{0, 0}, point{0, 4})

	assert.Equal(t, first, second)
}

func TestSearchGridMazeReverse(t *testing.T) {
	grid := serpentine(7, 5)

	forward := astar.SearchGrid(grid, point{0, 0}, point{0, 4})
	backward := astar.SearchGrid(grid, point{0, 4}, point{0, 0})

	require.True(t, backward.Found)
	reversed := slices.Clone(backward.Path)
	slices.Reverse(reversed)
	assert.Equal(t, forward.Path, reversed)
	assert.Equal(t, forward.TotalCost, backward.TotalCost)
}

func TestSearchGridMazeCached(t *testing.T) {
	cached := maze.NewCached(serpentine(7, 5))

	result := astar.SearchGrid(cached, point{0, 0}, point{0, 4})

	require.True(t, result.Found)
	assert.Equal(t, serpentinePath, result.Path)
	assert.Positive(t, cached.Hits)
	assert.Equal(t, cached.Misses, cached.Len())
}

func TestSearchGridUnreachable(t *testing.T) {
	m, err := maze.ParseString(
		"S....\n" +
			".....\n" +
			"...#.\n" +
			"..#G#\n" +
			"...#.\n")
	require.NoError(t, err)
	start, _ := m.Start()
	goal, _ := m.Goal()

	result := astar.SearchGrid(m, start, goal)

	assert.False(t, result.Found)
	assert.Empty(t, result.Path)
}

func TestSearchGridDiagonal(t *testing.T) {
	m := maze.New(3, 3)
	m.SetDiagonal(true)

	result := astar.SearchGrid(m, point{0, 0}, point{2, 2})

	require.True(t, result.Found)
	assert.Equal(t, []point{{0, 0}, {1, 1}, {2, 2}}, result.Path)
	assert.Equal(t, 6, result.TotalCost)
	requireContiguous(t, m, result.Path, result.TotalCost)
}

func TestSearchGridCornerCutting(t *testing.T) {
	m, err := maze.ParseString(
		"S#.\n" +
			"#..\n" +
			"..G\n")
	require.NoError(t, err)
	m.SetDiagonal(true)

	blocked := astar.SearchGrid(m, point{0, 0}, point{2, 2})
	assert.False(t, blocked.Found)

	m.SetCutCorners(true)
	cut := astar.SearchGrid(m, point{0, 0}, point{2, 2})
	require.True(t, cut.Found)
	assert.Equal(t, []point{{0, 0}, {1, 1}, {2, 2}}, cut.Path)
	assert.Equal(t, 6, cut.TotalCost)
}

// uninformed searches a grid with a zero heuristic, which turns A* into
// Dijkstra's algorithm.
type uninformed struct {
	grid astar.Grid
}

func (u uninformed) Heuristic(node, goal point) int { return 0 }

func (u uninformed) Neighbors(node point) iter.Seq2[point, int] {
	return astar.GridProblem(u.grid, node, node).Neighbors(node)
}

func TestSearchGridWeightedIsOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		start, goal := point{0, 0}, point{19, 14}
		m := maze.Random(20, 15, maze.RandomOptions{Clusters: 6, Steps: 60, Density: 0.3}, rng, start, goal)
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				if !m.IsWall(x, y) {
					m.Set(x, y, rng.Intn(5))
				}
			}
		}

		rebuilt := astar.SearchGrid(m, start, goal)
		indexed := astar.SearchGrid(m, start, goal, astar.WithDecreaseKey())
		baseline := astar.SearchReusable[point, int](uninformed{m}, start, goal)

		require.Equal(t, baseline.Found, rebuilt.Found)
		require.Equal(t, baseline.Found, indexed.Found)
		if !baseline.Found {
			continue
		}
		assert.Equal(t, baseline.TotalCost, rebuilt.TotalCost)
		assert.Equal(t, baseline.TotalCost, indexed.TotalCost)
		assert.Equal(t, start, rebuilt.Path[0])
		assert.Equal(t, goal, rebuilt.Path[len(rebuilt.Path)-1])
		requireContiguous(t, m, rebuilt.Path, rebuilt.TotalCost)
		requireContiguous(t, m, indexed.Path, indexed.TotalCost)
	}
}

func TestGridProblemEstimateLength(t *testing.T) {
	problem := astar.GridProblem(maze.New(4, 4), point{0, 0}, point{3, 2})

	estimator, ok := problem.(astar.LengthEstimator)
	require.True(t, ok)
	length, ok := estimator.EstimateLength()
	assert.True(t, ok)
	assert.Equal(t, 6, length)
	assert.Equal(t, 10, problem.Heuristic(point{0, 0}))
	assert.Equal(t, 0, problem.Heuristic(point{3, 2}))
}
