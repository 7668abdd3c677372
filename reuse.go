package astar

import "iter"

// ReusableProblem describes an environment that answers many searches.
// Start and goal are supplied per query, so heuristic and neighbor logic
// are written once.
type ReusableProblem[NodeType comparable, CostType Cost] interface {
	// Heuristic estimates the cost from node to goal; zero when they are equal.
	Heuristic(node, goal NodeType) CostType
	Neighbors(node NodeType) iter.Seq2[NodeType, CostType]
}

// ReusableLengthEstimator is the ReusableProblem counterpart of LengthEstimator.
type ReusableLengthEstimator[NodeType comparable] interface {
	EstimateLength(start, goal NodeType) (int, bool)
}

// boundProblem fixes a start and goal on a ReusableProblem.
type boundProblem[NodeType comparable, CostType Cost] struct {
	environment ReusableProblem[NodeType, CostType]
	start       NodeType
	goal        NodeType
}

// Bind returns a Problem searching environment from start to goal.
// Every call returns an independent problem.
func Bind[NodeType comparable, CostType Cost](
	environment ReusableProblem[NodeType, CostType],
	start NodeType,
	goal NodeType,
) Problem[NodeType, CostType] {
	return &boundProblem[NodeType, CostType]{environment: environment, start: start, goal: goal}
}

func (p *boundProblem[NodeType, CostType]) Start() NodeType { return p.start }

func (p *boundProblem[NodeType, CostType]) IsEnd(node NodeType) bool { return node == p.goal }

func (p *boundProblem[NodeType, CostType]) Heuristic(node NodeType) CostType {
	return p.environment.Heuristic(node, p.goal)
}

func (p *boundProblem[NodeType, CostType]) Neighbors(node NodeType) iter.Seq2[NodeType, CostType] {
	return p.environment.Neighbors(node)
}

func (p *boundProblem[NodeType, CostType]) EstimateLength() (int, bool) {
	estimator, ok := p.environment.(ReusableLengthEstimator[NodeType])
	if !ok {
		return 0, false
	}
	return estimator.EstimateLength(p.start, p.goal)
}

// SearchReusable searches environment from start to goal.
func SearchReusable[NodeType comparable, CostType Cost](
	environment ReusableProblem[NodeType, CostType],
	start NodeType,
	goal NodeType,
	options ...Option,
) Result[NodeType, CostType] {
	return Search(Bind(environment, start, goal), options...)
}
