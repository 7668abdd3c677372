package astar

import (
	"container/heap"

	"github.com/pdrpinto/astar/v2/internal"
)

// frontier is a min-heap of node indices ordered by the node's current f.
// It implements heap.Interface; callers go through push, pop and the
// reprioritize helpers.
type frontier[NodeType comparable, CostType Cost] struct {
	store   *nodeStore[NodeType, CostType]
	entries []int
}

func newFrontier[NodeType comparable, CostType Cost](store *nodeStore[NodeType, CostType]) *frontier[NodeType, CostType] {
	queue := &frontier[NodeType, CostType]{store: store}
	heap.Init(queue)
	return queue
}

func (queue *frontier[NodeType, CostType]) Len() int { return len(queue.entries) }

func (queue *frontier[NodeType, CostType]) Less(i, j int) bool {
	return internal.Compare(queue.store.at(queue.entries[i]).f, queue.store.at(queue.entries[j]).f) < 0
}

func (queue *frontier[NodeType, CostType]) Swap(i, j int) {
	queue.entries[i], queue.entries[j] = queue.entries[j], queue.entries[i]
	queue.store.at(queue.entries[i]).queueIndex = i
	queue.store.at(queue.entries[j]).queueIndex = j
}

func (queue *frontier[NodeType, CostType]) Push(x any) {
	index := x.(int)
	queue.store.at(index).queueIndex = len(queue.entries)
	queue.entries = append(queue.entries, index)
}

func (queue *frontier[NodeType, CostType]) Pop() any {
	oldEntries := queue.entries
	n := len(oldEntries)
	index := oldEntries[n-1]
	queue.entries = oldEntries[:n-1]
	queue.store.at(index).queueIndex = -1
	return index
}

func (queue *frontier[NodeType, CostType]) push(index int) { heap.Push(queue, index) }

func (queue *frontier[NodeType, CostType]) pop() int { return heap.Pop(queue).(int) }

// rebuild re-derives the heap order from the entries that are still open.
// Used when a queued node's f changed and the heap has no decrease-key.
func (queue *frontier[NodeType, CostType]) rebuild() {
	kept := queue.entries[:0]
	for _, index := range queue.entries {
		if queue.store.at(index).status != open {
			queue.store.at(index).queueIndex = -1
			continue
		}
		queue.store.at(index).queueIndex = len(kept)
		kept = append(kept, index)
	}
	queue.entries = kept
	heap.Init(queue)
}

// fix repositions a single entry after its f decreased.
func (queue *frontier[NodeType, CostType]) fix(index int) {
	slot := queue.store.at(index).queueIndex
	if slot < 0 {
		queue.push(index)
		return
	}
	heap.Fix(queue, slot)
}
