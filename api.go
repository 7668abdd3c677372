package astar

import (
	"io"
	"iter"

	"github.com/sirupsen/logrus"
)

// Cost is the set of types usable as edge and path costs.
// The zero value is the zero cost. Negative costs are not supported.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Problem describes a state space to search.
// NodeType must be comparable so it can be used in maps.
type Problem[NodeType comparable, CostType Cost] interface {
	// Start returns the initial state.
	Start() NodeType
	// IsEnd reports whether node is a goal state.
	IsEnd(node NodeType) bool
	// Heuristic estimates the remaining cost from node to the goal.
	// It must return zero at the goal.
	Heuristic(node NodeType) CostType
	// Neighbors yields every state reachable from node along with the
	// cost of the move. It must be deterministic for a given node within
	// one search.
	Neighbors(node NodeType) iter.Seq2[NodeType, CostType]
}

// LengthEstimator can be implemented by a Problem to hint the number of
// states on the resulting path. It only affects preallocation.
type LengthEstimator interface {
	EstimateLength() (int, bool)
}

// Result contains the outcome of a search
type Result[NodeType comparable, CostType Cost] struct {
	Path            []NodeType
	TotalCost       CostType
	ExpandedNodes   int
	DiscoveredNodes int
	Found           bool
}

// Options defines parameters for the search.
type Options struct {
	// DecreaseKey fixes a relaxed frontier entry in place instead of
	// rebuilding the whole frontier.
	DecreaseKey bool
	Logger      logrus.FieldLogger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithDecreaseKey switches the frontier to an indexed heap that repositions
// a single entry when an open node gets a cheaper path.
func WithDecreaseKey() Option {
	return func(options *Options) { options.DecreaseKey = true }
}

// WithLogger sets the logger that receives a debug entry per finished search.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) { options.Logger = logger }
}

func newOptions(options []Option) Options {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		searchOptions.Logger = discard
	}
	return searchOptions
}

// Search runs A* over problem until a goal state is expanded or every
// reachable state has been closed. Result.Found is false when no path exists.
func Search[NodeType comparable, CostType Cost](
	problem Problem[NodeType, CostType],
	options ...Option,
) Result[NodeType, CostType] {
	searchOptions := newOptions(options)

	ep := newEpisode(problem, searchOptions)
	for ep.status == running {
		ep.step()
	}
	return ep.finish()
}
