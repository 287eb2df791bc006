package sqlrepo

// JoinManager tracks which join targets have already been attached to one
// statement build. It is created fresh per query and never shared across
// queries or concurrent builds.
type JoinManager struct {
	joined map[string]struct{}
}

// NewJoinManager returns a JoinManager with the given targets pre-marked as
// already joined (the repository's query() accepts an already_joined hint
// from the caller for this purpose).
func NewJoinManager(alreadyJoined ...string) *JoinManager {
	j := &JoinManager{joined: make(map[string]struct{}, len(alreadyJoined))}
	for _, t := range alreadyJoined {
		j.joined[t] = struct{}{}
	}
	return j
}

// Apply adds every edge in chain whose target isn't already tracked, in
// order, and reports whether any edge was newly added.
func (j *JoinManager) Apply(b *QueryBuilder, chain []JoinEdge) bool {
	addedAny := false
	for _, edge := range chain {
		if _, ok := j.joined[edge.Target]; ok {
			continue
		}
		j.joined[edge.Target] = struct{}{}
		b.addJoin(edge)
		addedAny = true
	}
	return addedAny
}

// Has reports whether target has already been joined on this statement.
func (j *JoinManager) Has(target string) bool {
	_, ok := j.joined[target]
	return ok
}
