package maze

import (
	"math/rand"

	astar "github.com/pdrpinto/astar/v2"
)

// RandomOptions tunes Random.
type RandomOptions struct {
	Clusters int
	Steps    int
	// Density is the chance that a step of a walk places a wall.
	Density float64
}

// DefaultRandomOptions matches the example server defaults.
var DefaultRandomOptions = RandomOptions{Clusters: 8, Steps: 200, Density: 0.25}

// Random generates clustered walls via random walks. Cells listed in keep
// never become walls.
func Random(width, height int, options RandomOptions, rng *rand.Rand, keep ...astar.Point) *Map {
	if width <= 0 || height <= 0 {
		return New(0, 0)
	}
	m := New(width, height)
	keepClear := make(map[astar.Point]bool, len(keep))
	for _, p := range keep {
		keepClear[p] = true
	}

	directions := []astar.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	for c := 0; c < options.Clusters; c++ {
		p := astar.Point{X: rng.Intn(width), Y: rng.Intn(height)}
		for s := 0; s < options.Steps; s++ {
			if rng.Float64() < options.Density && !keepClear[p] {
				m.Set(p.X, p.Y, Wall)
			}
			d := directions[rng.Intn(len(directions))]
			np := astar.Point{X: p.X + d.X, Y: p.Y + d.Y}
			if m.in(np.X, np.Y) {
				p = np
			}
		}
	}
	return m
}
