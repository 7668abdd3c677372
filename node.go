package astar

type nodeStatus uint8

const (
	unvisited nodeStatus = iota
	open
	closed
)

const noParent = -1

// node is one discovered state. Nodes live in a nodeStore and refer to
// each other by index only.
type node[NodeType comparable, CostType Cost] struct {
	state  NodeType
	g      CostType
	h      CostType
	f      CostType
	parent int
	status nodeStatus
	// slot in the frontier heap, -1 when not queued
	queueIndex int
}

// nodeStore owns every node of one search. Nodes are never removed
// individually; the store is dropped with the episode.
type nodeStore[NodeType comparable, CostType Cost] struct {
	nodes []node[NodeType, CostType]
	// registry maps a state to its index in nodes
	registry map[NodeType]int
}

func newNodeStore[NodeType comparable, CostType Cost]() *nodeStore[NodeType, CostType] {
	return &nodeStore[NodeType, CostType]{
		registry: make(map[NodeType]int),
	}
}

// lookup returns the index of the node for state, creating an unvisited
// node when the state has not been seen before.
func (store *nodeStore[NodeType, CostType]) lookup(state NodeType) int {
	if index, exists := store.registry[state]; exists {
		return index
	}
	index := len(store.nodes)
	store.nodes = append(store.nodes, node[NodeType, CostType]{
		state:      state,
		parent:     noParent,
		status:     unvisited,
		queueIndex: -1,
	})
	store.registry[state] = index
	return index
}

func (store *nodeStore[NodeType, CostType]) at(index int) *node[NodeType, CostType] {
	return &store.nodes[index]
}

func (store *nodeStore[NodeType, CostType]) len() int { return len(store.nodes) }
