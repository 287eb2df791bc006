package sqlrepo

import (
	"context"
	"fmt"
	"strings"
)

type orderClause struct {
	expr string
}

// QueryBuilder is the stateful, chainable compiler described in spec §4.4:
// select primes the statement, every other mutator requires it to have run
// first, and build/execute may be called repeatedly without re-adding
// joins or predicates.
type QueryBuilder struct {
	session      Session
	table        string
	startingStmt string

	selectCalled bool
	distinctFlag bool
	err          error

	joinsSQL   []string
	wherePreds []string
	args       []any
	orderBys   []orderClause
	limitVal   *int
	offsetVal  *int

	joinMgr *JoinManager
}

// NewQueryBuilder creates a builder for one query against table. If
// startingStmt is non-empty it is used verbatim as the base SELECT instead
// of "SELECT * FROM table".
func NewQueryBuilder(session Session, table, startingStmt string) *QueryBuilder {
	return &QueryBuilder{
		session:      session,
		table:        table,
		startingStmt: startingStmt,
		joinMgr:      NewJoinManager(),
	}
}

// Select primes the statement. Calling it twice is a builder-order error.
func (b *QueryBuilder) Select() *QueryBuilder {
	if b.selectCalled {
		return b.fail(fmt.Errorf("%w: select called twice", ErrBuilderOrder))
	}
	b.selectCalled = true
	return b
}

func (b *QueryBuilder) fail(err error) *QueryBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *QueryBuilder) requireSelect() bool {
	if !b.selectCalled {
		b.fail(ErrBuilderOrder)
		return false
	}
	return true
}

// addArg appends a bind value and returns its positional placeholder.
func (b *QueryBuilder) addArg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// Where appends a predicate fragment (already parameter-bound via addArg).
// An empty predicate is silently ignored, which lets operators like NotIn
// signal "no predicate" without the caller special-casing it.
func (b *QueryBuilder) Where(predicate string) *QueryBuilder {
	if !b.requireSelect() {
		return b
	}
	if predicate == "" {
		return b
	}
	b.wherePreds = append(b.wherePreds, predicate)
	return b
}

func (b *QueryBuilder) addJoin(edge JoinEdge) {
	kind := "JOIN"
	if edge.Outer {
		kind = "LEFT JOIN"
	}
	b.joinsSQL = append(b.joinsSQL, fmt.Sprintf("%s %s ON %s", kind, edge.Target, edge.On))
}

// Join delegates to the builder's JoinManager, adding only edges not
// already present for this statement.
func (b *QueryBuilder) Join(chain []JoinEdge) *QueryBuilder {
	if !b.requireSelect() {
		return b
	}
	b.joinMgr.Apply(b, chain)
	return b
}

// OrderBy appends one ordering; repeated calls stack in call order.
func (b *QueryBuilder) OrderBy(column string, descending, nullsLast bool) *QueryBuilder {
	if !b.requireSelect() {
		return b
	}
	expr := column
	if descending {
		expr += " DESC"
	} else {
		expr += " ASC"
	}
	if nullsLast {
		expr += " NULLS LAST"
	}
	b.orderBys = append(b.orderBys, orderClause{expr: expr})
	return b
}

// OrderByRaw appends a pre-built ORDER BY expression, used for the §4.5.3
// enum precedence CASE form.
func (b *QueryBuilder) OrderByRaw(expr string) *QueryBuilder {
	if !b.requireSelect() {
		return b
	}
	b.orderBys = append(b.orderBys, orderClause{expr: expr})
	return b
}

// Limit sets LIMIT n; n must be > 0.
func (b *QueryBuilder) Limit(n int) *QueryBuilder {
	if !b.requireSelect() {
		return b
	}
	if n <= 0 {
		return b.fail(fmt.Errorf("sqlrepo: limit must be > 0, got %d", n))
	}
	b.limitVal = &n
	return b
}

// Offset sets OFFSET n; n must be >= 0.
func (b *QueryBuilder) Offset(n int) *QueryBuilder {
	if !b.requireSelect() {
		return b
	}
	if n < 0 {
		return b.fail(fmt.Errorf("sqlrepo: offset must be >= 0, got %d", n))
	}
	b.offsetVal = &n
	return b
}

// Distinct sets DISTINCT on the compiled SELECT.
func (b *QueryBuilder) Distinct() *QueryBuilder {
	if !b.requireSelect() {
		return b
	}
	b.distinctFlag = true
	return b
}

// Build compiles the accumulated state into a SQL string and its bind
// args. It does not reset state, so it may be called repeatedly.
func (b *QueryBuilder) Build() (string, []any, error) {
	if !b.requireSelect() {
		return "", nil, b.err
	}
	if b.err != nil {
		return "", nil, b.err
	}

	var sb strings.Builder
	if b.startingStmt != "" {
		stmt := b.startingStmt
		if b.distinctFlag {
			folded, ok := foldDistinctInto(stmt)
			if !ok {
				return "", nil, fmt.Errorf("sqlrepo: Distinct() requires StartingStmt to begin with SELECT, got %q", stmt)
			}
			stmt = folded
		}
		sb.WriteString(stmt)
	} else {
		sb.WriteString("SELECT ")
		if b.distinctFlag {
			sb.WriteString("DISTINCT ")
		}
		sb.WriteString("* FROM ")
		sb.WriteString(b.table)
	}
	for _, j := range b.joinsSQL {
		sb.WriteString(" ")
		sb.WriteString(j)
	}
	if len(b.wherePreds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.wherePreds, " AND "))
	}
	if len(b.orderBys) > 0 {
		exprs := make([]string, len(b.orderBys))
		for i, o := range b.orderBys {
			exprs[i] = o.expr
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(exprs, ", "))
	}
	if b.limitVal != nil {
		fmt.Fprintf(&sb, " LIMIT %d", *b.limitVal)
	}
	if b.offsetVal != nil {
		fmt.Fprintf(&sb, " OFFSET %d", *b.offsetVal)
	}
	return sb.String(), b.args, nil
}

// foldDistinctInto splices "DISTINCT " into the leading SELECT keyword of
// stmt so Distinct() is honored even when the caller supplied a raw
// StartingStmt instead of letting Build synthesize its own SELECT. Reports
// false if stmt doesn't start with SELECT (already DISTINCT, or not a
// SELECT at all) rather than silently dropping the flag.
func foldDistinctInto(stmt string) (string, bool) {
	trimmed := strings.TrimLeft(stmt, " \t\n")
	lead := trimmed
	if len(lead) > 6 {
		lead = lead[:6]
	}
	if !strings.EqualFold(lead, "SELECT") {
		return stmt, false
	}
	if len(trimmed) > 15 && strings.EqualFold(trimmed[:15], "SELECT DISTINCT") {
		return stmt, true
	}
	prefixLen := len(stmt) - len(trimmed)
	return stmt[:prefixLen+6] + " DISTINCT" + stmt[prefixLen+6:], true
}

// Execute compiles and runs the statement, scanning rows into dest (a
// pointer to a slice).
func (b *QueryBuilder) Execute(ctx context.Context, dest any) error {
	query, args, err := b.Build()
	if err != nil {
		return err
	}
	return b.session.SelectContext(ctx, dest, b.session.Rebind(query), args...)
}
