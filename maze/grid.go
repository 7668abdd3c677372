package maze

import astar "github.com/pdrpinto/astar/v2"

// Func adapts a function to astar.Grid.
type Func func(x, y int) (int, bool)

// Get calls f.
func (f Func) Get(x, y int) (int, bool) { return f(x, y) }

type cachedCell struct {
	cost int
	ok   bool
}

// Cached memoizes Get on another grid. It forwards Diagonal and CutCorners
// when the wrapped grid implements them. Not safe for concurrent use.
type Cached struct {
	grid  astar.Grid
	cells map[astar.Point]cachedCell

	Hits, Misses int
}

// NewCached wraps grid with an empty cache.
func NewCached(grid astar.Grid) *Cached {
	return &Cached{grid: grid, cells: make(map[astar.Point]cachedCell)}
}

func (c *Cached) Get(x, y int) (int, bool) {
	p := astar.Point{X: x, Y: y}
	if cell, ok := c.cells[p]; ok {
		c.Hits++
		return cell.cost, cell.ok
	}
	c.Misses++
	cost, ok := c.grid.Get(x, y)
	c.cells[p] = cachedCell{cost: cost, ok: ok}
	return cost, ok
}

func (c *Cached) Diagonal() bool {
	if d, ok := c.grid.(astar.DiagonalGrid); ok {
		return d.Diagonal()
	}
	return false
}

func (c *Cached) CutCorners() bool {
	if cutter, ok := c.grid.(astar.CornerCutter); ok {
		return cutter.CutCorners()
	}
	return false
}

// Len returns the number of cached cells.
func (c *Cached) Len() int { return len(c.cells) }
