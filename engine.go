package astar

import (
	"github.com/sirupsen/logrus"

	"github.com/pdrpinto/astar/v2/internal"
)

type episodeStatus uint8

const (
	running episodeStatus = iota
	found
	exhausted
)

func (status episodeStatus) String() string {
	switch status {
	case running:
		return "running"
	case found:
		return "found"
	default:
		return "exhausted"
	}
}

// episode holds everything one search owns: the node store with its
// registry, the frontier and the control state.
type episode[NodeType comparable, CostType Cost] struct {
	problem Problem[NodeType, CostType]
	options Options

	store *nodeStore[NodeType, CostType]
	queue *frontier[NodeType, CostType]

	status  episodeStatus
	current int
	goal    int

	expanded      int
	reprioritized int
}

func newEpisode[NodeType comparable, CostType Cost](
	problem Problem[NodeType, CostType],
	options Options,
) *episode[NodeType, CostType] {
	store := newNodeStore[NodeType, CostType]()
	ep := &episode[NodeType, CostType]{
		problem: problem,
		options: options,
		store:   store,
		queue:   newFrontier(store),
		status:  running,
		current: noParent,
		goal:    noParent,
	}

	startIndex := store.lookup(problem.Start())
	startNode := store.at(startIndex)
	startNode.h = problem.Heuristic(startNode.state)
	startNode.f = startNode.h
	startNode.status = open
	ep.queue.push(startIndex)

	return ep
}

// step expands at most one node.
func (ep *episode[NodeType, CostType]) step() {
	if ep.status != running {
		return
	}
	if ep.queue.Len() == 0 {
		ep.status = exhausted
		return
	}

	currentIndex := ep.queue.pop()
	currentNode := ep.store.at(currentIndex)

	// Open nodes sit in the queue once, so only a stale entry can be closed.
	if currentNode.status == closed {
		return
	}
	currentNode.status = closed
	ep.current = currentIndex
	ep.expanded++

	// Goal check
	if ep.problem.IsEnd(currentNode.state) {
		ep.status = found
		ep.goal = currentIndex
		return
	}

	// lookup may grow the store, so nothing below keeps a node pointer
	// across a lookup call.
	currentState := currentNode.state
	currentG := currentNode.g
	var zero CostType

	for neighborState, edgeCost := range ep.problem.Neighbors(currentState) {
		neighborIndex := ep.store.lookup(neighborState)
		neighbor := ep.store.at(neighborIndex)
		if neighbor.status == closed {
			continue
		}

		tentativeG := currentG + edgeCost
		if neighbor.status != unvisited && internal.Compare(tentativeG, neighbor.g) >= 0 {
			continue
		}

		if neighbor.h == zero {
			neighbor.h = ep.problem.Heuristic(neighborState)
		}
		neighbor.g = tentativeG
		neighbor.f = tentativeG + neighbor.h
		neighbor.parent = currentIndex

		if neighbor.status == unvisited {
			neighbor.status = open
			ep.queue.push(neighborIndex)
			continue
		}
		ep.reprioritize(neighborIndex)
	}

	if ep.queue.Len() == 0 {
		ep.status = exhausted
	}
}

// reprioritize restores frontier order after an open node's f dropped.
func (ep *episode[NodeType, CostType]) reprioritize(index int) {
	ep.reprioritized++
	if ep.options.DecreaseKey {
		ep.queue.fix(index)
		return
	}
	ep.queue.rebuild()
}

func (ep *episode[NodeType, CostType]) finish() Result[NodeType, CostType] {
	result := Result[NodeType, CostType]{
		ExpandedNodes:   ep.expanded,
		DiscoveredNodes: ep.store.len(),
	}
	if ep.status == found {
		result.Path, result.TotalCost = reconstructPath(ep.store, ep.goal, estimateLength(ep.problem))
		result.Found = true
	}

	ep.options.Logger.WithFields(logrus.Fields{
		"status":        ep.status.String(),
		"expanded":      result.ExpandedNodes,
		"discovered":    result.DiscoveredNodes,
		"reprioritized": ep.reprioritized,
		"cost":          result.TotalCost,
		"length":        len(result.Path),
	}).Debug("search finished")

	return result
}

func estimateLength[NodeType comparable, CostType Cost](problem Problem[NodeType, CostType]) int {
	estimator, ok := problem.(LengthEstimator)
	if !ok {
		return 0
	}
	length, ok := estimator.EstimateLength()
	if !ok || length < 0 {
		return 0
	}
	return length
}
