// Package maze provides concrete grids for astar.SearchGrid: rectangular
// maps parsed from ASCII or YAML, function-backed grids, a caching wrapper
// and a random wall generator.
//
// The ASCII syntax uses one character per cell:
//
//	#      wall
//	.      passable, cost 0
//	*      path overlay written by Render, cost 0
//	0-9    passable with that cost; Set clamps costs to MaxCost so every
//	       map renders back into this syntax
//	S, G   start and goal markers, cost 0
//
// The first line is row y=0.
package maze

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	astar "github.com/pdrpinto/astar/v2"
)

// Wall is the cell value of an impassable cell.
const Wall = -1

// MaxCost is the highest cell cost a Map stores.
const MaxCost = 9

// Map is a rectangular grid of cell costs.
type Map struct {
	width, height int
	cells         []int

	start, goal *astar.Point

	diagonal   bool
	cutCorners bool
}

// New returns a width x height map where every cell is passable at cost 0.
func New(width, height int) *Map {
	return &Map{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}
}

// Width is the number of columns.
func (m *Map) Width() int { return m.width }

// Height is the number of rows.
func (m *Map) Height() int { return m.height }

func (m *Map) in(x, y int) bool { return x >= 0 && x < m.width && y >= 0 && y < m.height }

// Get implements astar.Grid.
func (m *Map) Get(x, y int) (int, bool) {
	if !m.in(x, y) {
		return 0, false
	}
	cost := m.cells[y*m.width+x]
	if cost == Wall {
		return 0, false
	}
	return cost, true
}

// Set stores the cost of a cell; Wall makes it impassable. Other costs are
// clamped to [0, MaxCost]. Points outside the map are ignored.
func (m *Map) Set(x, y, cost int) {
	if !m.in(x, y) {
		return
	}
	if cost != Wall {
		cost = min(max(cost, 0), MaxCost)
	}
	m.cells[y*m.width+x] = cost
}

func (m *Map) IsWall(x, y int) bool {
	_, ok := m.Get(x, y)
	return !ok
}

// Walls lists the impassable cells row by row.
func (m *Map) Walls() []astar.Point {
	var walls []astar.Point
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y*m.width+x] == Wall {
				walls = append(walls, astar.Point{X: x, Y: y})
			}
		}
	}
	return walls
}

func (m *Map) Diagonal() bool { return m.diagonal }
func (m *Map) CutCorners() bool { return m.cutCorners }
func (m *Map) SetDiagonal(enabled bool) { m.diagonal = enabled }
func (m *Map) SetCutCorners(enabled bool) {
	m.cutCorners = enabled
}

// Start returns the position of the S marker, if any.
func (m *Map) Start() (astar.Point, bool) {
	if m.start == nil {
		return astar.Point{}, false
	}
	return *m.start, true
}

// Goal returns the position of the G marker, if any.
func (m *Map) Goal() (astar.Point, bool) {
	if m.goal == nil {
		return astar.Point{}, false
	}
	return *m.goal, true
}

func (m *Map) SetStart(p astar.Point) { m.start = &p }
func (m *Map) SetGoal(p astar.Point) { m.goal = &p }

// Parse reads an ASCII map. Blank lines at the end are ignored; every other
// line must have the width of the first one.
func Parse(r io.Reader) (*Map, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read maze")
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return fromRows(rows)
}

// ParseString is Parse over a string.
func ParseString(text string) (*Map, error) {
	return Parse(strings.NewReader(text))
}

func fromRows(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, errors.New("maze is empty")
	}
	width := len(rows[0])
	m := New(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("row %d has width %d, expected %d", y, len(row), width)
		}
		for x, cell := range []byte(row) {
			switch {
			case cell == '#':
				m.Set(x, y, Wall)
			case cell == '.' || cell == '*':
				m.Set(x, y, 0)
			case cell >= '0' && cell <= '9':
				m.Set(x, y, int(cell-'0'))
			case cell == 'S':
				if m.start != nil {
					return nil, errors.Errorf("second start marker at (%d,%d)", x, y)
				}
				m.SetStart(astar.Point{X: x, Y: y})
			case cell == 'G':
				if m.goal != nil {
					return nil, errors.Errorf("second goal marker at (%d,%d)", x, y)
				}
				m.SetGoal(astar.Point{X: x, Y: y})
			default:
				return nil, errors.Errorf("unknown cell %q at (%d,%d)", cell, x, y)
			}
		}
	}
	return m, nil
}

// Render draws the map in the syntax accepted by Parse, overlaying path
// with '*'. Path cells parse back with cost 0.
func (m *Map) Render(path []astar.Point) string {
	onPath := make(map[astar.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := astar.Point{X: x, Y: y}
			cost := m.cells[y*m.width+x]
			switch {
			case m.start != nil && *m.start == p:
				b.WriteByte('S')
			case m.goal != nil && *m.goal == p:
				b.WriteByte('G')
			case onPath[p]:
				b.WriteByte('*')
			case cost == Wall:
				b.WriteByte('#')
			case cost == 0:
				b.WriteByte('.')
			default:
				b.WriteByte(byte('0' + cost))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
