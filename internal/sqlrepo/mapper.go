package sqlrepo

// JoinEdge is one hop in a mapper's join chain from the aggregate root to
// the target table a column lives on.
type JoinEdge struct {
	// Target is the fully-qualified join target, including alias, e.g.
	// "authors a". It doubles as the JoinManager's dedup identity.
	Target string
	// On is the raw ON clause, e.g. "a.id = r.author_id".
	On string
	// Outer requests a LEFT JOIN instead of the default inner JOIN.
	Outer bool
}

// ColumnSpec names the physical column a filter key resolves to, plus its
// declared kind for operator dispatch (§4.1 step 3). Kind may be left
// KindUnknown, in which case InferKind is consulted as a fallback.
type ColumnSpec struct {
	Column string
	Kind   ColumnKind
}

// FilterColumnMapper declares, for one (aggregate, target table) pair, the
// filter keys reachable on it and the join chain required to reach it from
// the aggregate root. Concrete repositories build these as package-level
// var tables at init and never mutate them afterward.
type FilterColumnMapper struct {
	// Alias qualifies every column reference this mapper emits, e.g. "r"
	// for the aggregate root or "a" for a joined authors table.
	Alias string
	// Columns maps a public filter key (without postfix) to its column.
	Columns map[string]ColumnSpec
	// Joins is the ordered path from the aggregate root to Alias; empty
	// when Alias is the root itself or already reachable unconditionally.
	Joins []JoinEdge
}

// FilterKeys lists the filter keys this mapper declares, for allow-list
// construction.
func (m FilterColumnMapper) FilterKeys() []string {
	keys := make([]string, 0, len(m.Columns))
	for k := range m.Columns {
		keys = append(keys, k)
	}
	return keys
}
