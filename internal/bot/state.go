package bot

// CycleState tracks run ids across cycles: which were observed and
// which were already rejected.
//
// The Scheduler holds the authoritative value and merges each cycle's
// returned state into it by union. Cycles receive it read-only and
// build a fresh state, so an aborted cycle can never corrupt what the
// bot already knows.
type CycleState struct {
	// Seen holds ids fetched during a cycle.
	Seen map[string]struct{}

	// Rejected holds ids the bot successfully rejected.
	Rejected map[string]struct{}
}

// NewCycleState creates an empty state.
func NewCycleState() CycleState {
	return CycleState{
		Seen:     make(map[string]struct{}),
		Rejected: make(map[string]struct{}),
	}
}

// AddSeen records an observed run id.
func (s CycleState) AddSeen(id string) {
	s.Seen[id] = struct{}{}
}

// AddRejected records a rejected run id.
func (s CycleState) AddRejected(id string) {
	s.Rejected[id] = struct{}{}
}

// SeenHas reports whether the id was observed.
func (s CycleState) SeenHas(id string) bool {
	_, ok := s.Seen[id]
	return ok
}

// RejectedHas reports whether the id was rejected.
func (s CycleState) RejectedHas(id string) bool {
	_, ok := s.Rejected[id]
	return ok
}

// Union returns a new state containing every id from both states.
// Neither input is modified.
func (s CycleState) Union(other CycleState) CycleState {
	merged := NewCycleState()
	for id := range s.Seen {
		merged.Seen[id] = struct{}{}
	}
	for id := range other.Seen {
		merged.Seen[id] = struct{}{}
	}
	for id := range s.Rejected {
		merged.Rejected[id] = struct{}{}
	}
	for id := range other.Rejected {
		merged.Rejected[id] = struct{}{}
	}
	return merged
}
