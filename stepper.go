package astar

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper drives the same search as Search one expansion at a time,
// for UIs and debugging tools.
type Stepper[NodeType comparable, CostType Cost] struct {
	episode   *episode[NodeType, CostType]
	stepCount int
	result    *Result[NodeType, CostType]
}

// NewStepper creates a stepper positioned before the first expansion.
func NewStepper[NodeType comparable, CostType Cost](
	problem Problem[NodeType, CostType],
	options ...Option,
) *Stepper[NodeType, CostType] {
	return &Stepper[NodeType, CostType]{
		episode: newEpisode(problem, newOptions(options)),
	}
}

// Done reports whether the search has found a goal or run out of nodes.
func (s *Stepper[NodeType, CostType]) Done() bool {
	return s.episode.status != running
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done Step keeps returning the final snapshot.
func (s *Stepper[NodeType, CostType]) Step() StepSnapshot[NodeType] {
	if !s.Done() {
		s.stepCount++
		expanded := s.episode.expanded
		for s.episode.status == running && s.episode.expanded == expanded {
			s.episode.step()
		}
	}
	return s.snapshot()
}

// Result runs the search to completion and returns its outcome.
func (s *Stepper[NodeType, CostType]) Result() Result[NodeType, CostType] {
	for s.episode.status == running {
		s.episode.step()
	}
	if s.result == nil {
		result := s.episode.finish()
		s.result = &result
	}
	return *s.result
}

func (s *Stepper[NodeType, CostType]) snapshot() StepSnapshot[NodeType] {
	ep := s.episode
	snapshot := StepSnapshot[NodeType]{
		Open:      make(map[NodeType]bool),
		Closed:    make(map[NodeType]bool),
		CameFrom:  make(map[NodeType]NodeType),
		Done:      ep.status != running,
		Found:     ep.status == found,
		StepIndex: s.stepCount,
	}
	if ep.current != noParent {
		snapshot.Current = ep.store.at(ep.current).state
	}
	for _, n := range ep.store.nodes {
		switch n.status {
		case open:
			snapshot.Open[n.state] = true
		case closed:
			snapshot.Closed[n.state] = true
		}
		if n.parent != noParent {
			snapshot.CameFrom[n.state] = ep.store.at(n.parent).state
		}
	}
	if snapshot.Found {
		snapshot.Path = s.Result().Path
	}
	return snapshot
}
