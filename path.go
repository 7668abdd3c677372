package astar

import "slices"

// reconstructPath walks parent links from goal back to the start node and
// returns the states in start-to-goal order with the goal's cost.
func reconstructPath[NodeType comparable, CostType Cost](
	store *nodeStore[NodeType, CostType],
	goal int,
	lengthHint int,
) ([]NodeType, CostType) {
	path := make([]NodeType, 0, lengthHint)
	for current := goal; current != noParent; current = store.at(current).parent {
		path = append(path, store.at(current).state)
	}
	slices.Reverse(path)
	return path, store.at(goal).g
}
