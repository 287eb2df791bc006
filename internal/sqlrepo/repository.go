package sqlrepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Entity is what the generic repository requires of a domain type: a
// stable identity and soft-delete awareness (spec §6 "Entity interface").
type Entity interface {
	EntityID() string
	IsDiscarded() bool
}

// DataMapper is the aggregate-supplied domain<->row translation (spec §6
// "Domain mapper interface"). ToRow may flush the unit of work to obtain
// child ids; ToDomain must be pure.
type DataMapper[D Entity, R any] interface {
	ToRow(ctx context.Context, uow UnitOfWork, domain D) (R, error)
	ToDomain(row R) (D, error)
}

// ChildMapper is an optional DataMapper extension for aggregates with
// child collections (e.g. a has-many joined through an association
// table). WriteChildren runs strictly after the root row has been
// enqueued, so foreign keys referencing the root already resolve by the
// time children flush — insert order matters here, which is why this is
// a separate hook rather than folded into ToRow.
type ChildMapper[D Entity] interface {
	WriteChildren(ctx context.Context, uow UnitOfWork, domain D) error
}

// Config wires together everything a concrete aggregate repository
// declares once at construction.
type Config[D Entity, R any] struct {
	UnitOfWork     UnitOfWork
	Mapper         DataMapper[D, R]
	Table          string
	RootAlias      string
	IDColumn       string // defaults to "id"
	Mappers        []FilterColumnMapper
	HasDiscarded   bool
	TagSpec        *TagFilterSpec
	SortPrecedence map[string][]string // filter key -> ordered enum values (§4.5.3)
	Logger         *RepositoryLogger
	Cache          Cache
	Metrics        *Metrics
	Timeout        time.Duration // defaults to 30s (§5)
	DefaultLimit   int           // defaults to 100
}

// Repository is the generic repository of spec §4.5, parameterised by a
// domain entity type D and its flat row image R.
type Repository[D Entity, R any] struct {
	uow      UnitOfWork
	mapper   DataMapper[D, R]
	table    string
	rootAlias string
	idColumn string

	mappers      []FilterColumnMapper
	validator    *FilterValidator
	hasDiscarded bool
	tagSpec      *TagFilterSpec

	sortPrecedence map[string][]string

	logger  *RepositoryLogger
	cache   Cache
	metrics *Metrics

	timeout      time.Duration
	defaultLimit int

	mu   sync.Mutex
	seen map[string]D
}

// New constructs a Repository from cfg, applying documented defaults.
func New[D Entity, R any](cfg Config[D, R]) *Repository[D, R] {
	if cfg.IDColumn == "" {
		cfg.IDColumn = "id"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.DefaultLimit == 0 {
		cfg.DefaultLimit = 100
	}
	if cfg.Cache == nil {
		cfg.Cache = NoopCache{}
	}
	if cfg.Logger == nil {
		cfg.Logger = NewRepositoryLogger(nil)
	}
	return &Repository[D, R]{
		uow:            cfg.UnitOfWork,
		mapper:         cfg.Mapper,
		table:          cfg.Table,
		rootAlias:      cfg.RootAlias,
		idColumn:       cfg.IDColumn,
		mappers:        cfg.Mappers,
		validator:      NewFilterValidator(cfg.Mappers, cfg.HasDiscarded),
		hasDiscarded:   cfg.HasDiscarded,
		tagSpec:        cfg.TagSpec,
		sortPrecedence: cfg.SortPrecedence,
		logger:         cfg.Logger,
		cache:          cfg.Cache,
		metrics:        cfg.Metrics,
		timeout:        cfg.Timeout,
		defaultLimit:   cfg.DefaultLimit,
		seen:           make(map[string]D),
	}
}

// Add maps entity to a row and inserts/updates it (spec §4.5 "add").
// Autoflush is disabled for the duration of mapping so child rows aren't
// written against a parent id that isn't ready yet, then the unit of work
// is flushed before returning — this is part of the contract, not an
// optimisation (spec §9).
func (r *Repository[D, R]) Add(ctx context.Context, entity D) error {
	logger, corrID := r.logger.WithCorrelationID()
	ctx = WithLogger(ctx, logger)

	r.uow.SetAutoflush(false)
	defer r.uow.SetAutoflush(true)

	row, err := r.mapper.ToRow(ctx, r.uow, entity)
	if err != nil {
		return r.fail(ctx, corrID, "add", fmt.Errorf("sqlrepo: map domain entity to row: %w", err))
	}
	if err := r.uow.Enqueue(func() error { return r.upsertRow(ctx, row) }); err != nil {
		return r.fail(ctx, corrID, "add", ClassifyError(err))
	}
	if err := r.enqueueChildren(ctx, entity); err != nil {
		return r.fail(ctx, corrID, "add", ClassifyError(err))
	}
	if err := r.uow.Flush(ctx); err != nil {
		return r.fail(ctx, corrID, "add", ClassifyError(err))
	}
	r.refreshSeen(entity)
	r.cache.Invalidate(r.table)
	return nil
}

// fail logs err against the correlation-tagged logger stashed in ctx and
// wraps it so callers can recover the same correlation id from the error
// (spec §7). A nil err passes through untouched.
func (r *Repository[D, R]) fail(ctx context.Context, corrID, op string, err error) error {
	if err == nil {
		return nil
	}
	r.logger.LogError(ctx, op, err)
	return &CorrelatedError{CorrelationID: corrID, Op: op, Err: err}
}

// enqueueChildren enqueues the ChildMapper hook, if the repository's
// mapper declares one, after the root row's own enqueue.
func (r *Repository[D, R]) enqueueChildren(ctx context.Context, entity D) error {
	cm, ok := any(r.mapper).(ChildMapper[D])
	if !ok {
		return nil
	}
	return r.uow.Enqueue(func() error { return cm.WriteChildren(ctx, r.uow, entity) })
}

// GetOption customises a Get call.
type GetOption func(*getOptions)

type getOptions struct {
	includeDiscarded bool
}

// WithIncludeDiscarded makes Get consider discarded rows too.
func WithIncludeDiscarded() GetOption {
	return func(o *getOptions) { o.includeDiscarded = true }
}

// Get fetches exactly one row by id (spec §4.5 "get"). Zero rows raise
// EntityNotFoundError; more than one raises MultipleEntitiesFoundError.
func (r *Repository[D, R]) Get(ctx context.Context, id string, opts ...GetOption) (D, error) {
	logger, corrID := r.logger.WithCorrelationID()
	ctx = WithLogger(ctx, logger)

	var zero D
	row, err := r.GetRow(ctx, id, opts...)
	if err != nil {
		return zero, r.fail(ctx, corrID, "get", err)
	}
	entity, err := r.mapper.ToDomain(row)
	if err != nil {
		return zero, r.fail(ctx, corrID, "get", &EntityMappingError{Table: r.table, ID: id, Index: 0, Err: err})
	}
	r.refreshSeen(entity)
	return entity, nil
}

// GetRow is Get's return_row=true form: it skips the domain mapping step.
// It carries its own correlation id so a caller invoking it directly (
// bypassing Get's domain mapping) still gets a tagged error.
func (r *Repository[D, R]) GetRow(ctx context.Context, id string, opts ...GetOption) (R, error) {
	logger, corrID := r.logger.WithCorrelationID()
	ctx = WithLogger(ctx, logger)

	var zero R
	cfg := getOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", r.table, r.idColumn)
	args := []any{id}
	if r.hasDiscarded && !cfg.includeDiscarded {
		query += " AND discarded = false"
	}

	start := time.Now()
	var rows []R
	err := r.uow.SelectContext(ctx, &rows, r.uow.Rebind(query), args...)
	elapsed := time.Since(start)
	if err != nil {
		r.metrics.observeQuery(r.table, "error", elapsed)
		return zero, r.fail(ctx, corrID, "get_row", &RepositoryQueryError{
			SQL: query, Args: args, Elapsed: elapsed,
			TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded), Err: err,
		})
	}
	r.metrics.observeQuery(r.table, "ok", elapsed)
	r.logger.LogQueryPerformance(ctx, query, elapsed, len(rows))

	switch len(rows) {
	case 0:
		return zero, r.fail(ctx, corrID, "get_row", &EntityNotFoundError{Table: r.table, ID: id})
	case 1:
		return rows[0], nil
	default:
		return zero, r.fail(ctx, corrID, "get_row", &MultipleEntitiesFoundError{Table: r.table, ID: id, Count: len(rows)})
	}
}

// QueryOptions parameterises Query, mirroring the Python query()'s kwargs.
type QueryOptions struct {
	Filters       map[string]any
	StartingStmt  string
	Limit         int
	AlreadyJoined []string
}

// Query validates filters, builds and executes a SELECT across the
// declared mappers (applying joins/operators/sort/pagination), and maps
// every row to a domain entity (spec §4.5 "query").
func (r *Repository[D, R]) Query(ctx context.Context, opts QueryOptions) ([]D, error) {
	logger, corrID := r.logger.WithCorrelationID()
	ctx = WithLogger(ctx, logger)

	cacheKey := r.buildCacheKey(opts)
	if cached, ok := r.cache.Get(cacheKey); ok {
		if entities, ok := cached.([]D); ok {
			r.metrics.observeCacheHit()
			return entities, nil
		}
	}
	r.metrics.observeCacheMiss()

	filters, err := r.validator.Validate(opts.Filters)
	if err != nil {
		return nil, r.fail(ctx, corrID, "query", err)
	}
	// Validate works against the caller's map; copy before mutating so
	// repeated calls with the same options.Filters stay safe.
	working := make(map[string]any, len(filters))
	for k, v := range filters {
		working[k] = v
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	qb := NewQueryBuilder(r.uow, r.table, opts.StartingStmt).Select()
	jm := NewJoinManager(opts.AlreadyJoined...)
	qb.joinMgr = jm

	skip, limit := r.parsePaging(working, opts.Limit)
	delete(working, "skip")
	delete(working, "limit")

	sortKey, hasSort := "", false
	if raw, ok := working["sort"]; ok {
		if s, ok := raw.(string); ok && s != "" {
			sortKey, hasSort = s, true
		}
		delete(working, "sort")
	}

	var tagFilter, tagNotExists any
	if v, ok := working["tags"]; ok {
		tagFilter = v
		delete(working, "tags")
	}
	if v, ok := working["tags_not_exists"]; ok {
		tagNotExists = v
		delete(working, "tags_not_exists")
	}

	distinctNeeded, err := r.applyMapperFilters(ctx, qb, jm, working)
	if err != nil {
		return nil, r.fail(ctx, corrID, "query", err)
	}

	if tagFilter != nil {
		if err := r.applyTagFilter(qb, tagFilter, false); err != nil {
			return nil, r.fail(ctx, corrID, "query", err)
		}
	}
	if tagNotExists != nil {
		if err := r.applyTagFilter(qb, tagNotExists, true); err != nil {
			return nil, r.fail(ctx, corrID, "query", err)
		}
	}

	if distinctNeeded {
		qb.Distinct()
	}
	if hasSort {
		r.applySort(ctx, qb, jm, sortKey)
	}

	qb.Offset(skip)
	if limit > 0 {
		qb.Limit(limit)
	}

	start := time.Now()
	var rows []R
	if err := qb.Execute(ctx, &rows); err != nil {
		elapsed := time.Since(start)
		r.metrics.observeQuery(r.table, "error", elapsed)
		sql, args, _ := qb.Build()
		return nil, r.fail(ctx, corrID, "query", &RepositoryQueryError{
			SQL: sql, Args: args, Elapsed: elapsed,
			TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded), Err: err,
		})
	}
	elapsed := time.Since(start)
	r.metrics.observeQuery(r.table, "ok", elapsed)
	r.logger.LogQueryPerformance(ctx, r.table, elapsed, len(rows))

	entities := make([]D, 0, len(rows))
	for i, row := range rows {
		entity, err := r.mapper.ToDomain(row)
		if err != nil {
			return nil, r.fail(ctx, corrID, "query", &EntityMappingError{Table: r.table, Index: i, Err: err})
		}
		r.refreshSeen(entity)
		entities = append(entities, entity)
	}

	r.cache.Set(cacheKey, entities, 300*time.Second)
	return entities, nil
}

// applyMapperFilters walks the declared mappers in order and, for every
// filter key that resolves through one, ensures its join chain is present
// and applies the matching operator. It reports whether DISTINCT is
// required (any applied operator was In).
func (r *Repository[D, R]) applyMapperFilters(ctx context.Context, qb *QueryBuilder, jm *JoinManager, filters map[string]any) (bool, error) {
	distinctNeeded := false
	for _, mapper := range r.mappers {
		for rawKey, value := range filters {
			base, postfix := ParseFilterKey(rawKey)
			spec, ok := mapper.Columns[base]
			if !ok {
				continue
			}
			if len(mapper.Joins) > 0 {
				added := jm.Apply(qb, mapper.Joins)
				if added {
					r.metrics.observeJoin()
				}
				r.logger.LogJoin(ctx, mapper.Alias, added)
			}
			kind := spec.Kind
			if kind == KindUnknown {
				kind = InferKind(value)
			}
			op, err := ResolveOperator(postfix, kind, value)
			if err != nil {
				return false, &FilterValidationError{InvalidFilters: []string{rawKey}}
			}
			column := fmt.Sprintf("%s.%s", mapper.Alias, spec.Column)
			pred, err := op(qb, column, value)
			if err != nil {
				return false, fmt.Errorf("sqlrepo: apply filter %q: %w", rawKey, err)
			}
			qb.Where(pred)
			r.logger.LogFilterOperation(ctx, rawKey, postfix)
			if postfix == "" && isListLike(value) {
				distinctNeeded = true
			}
		}
	}
	return distinctNeeded, nil
}

func (r *Repository[D, R]) applyTagFilter(qb *QueryBuilder, value any, negate bool) error {
	if r.tagSpec == nil {
		key := "tags"
		if negate {
			key = "tags_not_exists"
		}
		return &FilterNotAllowedError{Key: key, Reason: "aggregate does not declare a tag relationship"}
	}
	tags, err := parseTags(value)
	if err != nil {
		return err
	}
	pred, err := buildTagExists(qb, *r.tagSpec, tags, negate)
	if err != nil {
		return err
	}
	qb.Where(pred)
	return nil
}

// applySort resolves a sort filter value to a (mapper, column) pair and
// appends the ORDER BY. Per the first-declared-mapper-wins policy (spec §9
// open question, resolved), the first mapper in declaration order that
// owns the key wins; unknown sort keys are silently ignored.
func (r *Repository[D, R]) applySort(ctx context.Context, qb *QueryBuilder, jm *JoinManager, sortKey string) {
	descending := strings.HasPrefix(sortKey, "-")
	key := strings.TrimPrefix(sortKey, "-")

	for _, mapper := range r.mappers {
		spec, ok := mapper.Columns[key]
		if !ok {
			continue
		}
		if len(mapper.Joins) > 0 {
			added := jm.Apply(qb, mapper.Joins)
			if added {
				r.metrics.observeJoin()
			}
			r.logger.LogJoin(ctx, mapper.Alias, added)
		}
		column := fmt.Sprintf("%s.%s", mapper.Alias, spec.Column)
		if precedence, ok := r.sortPrecedence[key]; ok {
			qb.OrderByRaw(precedenceCaseExpr(column, precedence, descending))
		} else {
			qb.OrderBy(column, descending, true)
		}
		return
	}
}

// precedenceCaseExpr builds the §4.5.3 CASE ordering for an enum-like
// column. Precedence values are fixed, internal constants, never user
// input, so embedding them directly in the SQL text is safe.
func precedenceCaseExpr(column string, precedence []string, descending bool) string {
	order := precedence
	if descending {
		order = make([]string, len(precedence))
		for i, v := range precedence {
			order[len(precedence)-1-i] = v
		}
	}
	var sb strings.Builder
	sb.WriteString("CASE ")
	sb.WriteString(column)
	for i, v := range order {
		fmt.Fprintf(&sb, " WHEN '%s' THEN %d", v, i)
	}
	fmt.Fprintf(&sb, " ELSE %d END ASC NULLS LAST", len(order))
	return sb.String()
}

func (r *Repository[D, R]) parsePaging(filters map[string]any, fallbackLimit int) (skip, limit int) {
	if v, ok := filters["skip"]; ok {
		if n, ok := toInt(v); ok {
			skip = n
		}
	}
	limit = r.defaultLimit
	if fallbackLimit > 0 {
		limit = fallbackLimit
	}
	if v, ok := filters["limit"]; ok {
		if n, ok := toInt(v); ok {
			limit = n
		}
	}
	return skip, limit
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	default:
		return 0, false
	}
}

// Persist upserts entity, which must already be in the seen set (spec
// §4.5 precondition). It does not commit.
func (r *Repository[D, R]) Persist(ctx context.Context, entity D) error {
	logger, corrID := r.logger.WithCorrelationID()
	ctx = WithLogger(ctx, logger)

	r.mu.Lock()
	_, ok := r.seen[entity.EntityID()]
	r.mu.Unlock()
	if !ok {
		return r.fail(ctx, corrID, "persist", fmt.Errorf("sqlrepo: persist %q: %w", entity.EntityID(), ErrNotInSeenSet))
	}

	r.uow.SetAutoflush(false)
	defer r.uow.SetAutoflush(true)

	row, err := r.mapper.ToRow(ctx, r.uow, entity)
	if err != nil {
		return r.fail(ctx, corrID, "persist", fmt.Errorf("sqlrepo: map domain entity to row: %w", err))
	}
	if err := r.upsertRow(ctx, row); err != nil {
		return r.fail(ctx, corrID, "persist", ClassifyError(err))
	}
	if cm, ok := any(r.mapper).(ChildMapper[D]); ok {
		if err := cm.WriteChildren(ctx, r.uow, entity); err != nil {
			return r.fail(ctx, corrID, "persist", ClassifyError(err))
		}
	}
	r.cache.Invalidate(r.table)
	return nil
}

// PersistAll persists entities, or every entity in the seen set when
// entities is nil. Mapping to rows runs concurrently across entities
// (pure CPU/host-call work); the resulting rows are merged serially
// against the shared unit of work, as spec §4.5/§5 require.
func (r *Repository[D, R]) PersistAll(ctx context.Context, entities []D) error {
	logger, corrID := r.logger.WithCorrelationID()
	ctx = WithLogger(ctx, logger)

	if entities == nil {
		r.mu.Lock()
		entities = make([]D, 0, len(r.seen))
		for _, e := range r.seen {
			entities = append(entities, e)
		}
		r.mu.Unlock()
	}
	for _, e := range entities {
		r.mu.Lock()
		_, ok := r.seen[e.EntityID()]
		r.mu.Unlock()
		if !ok {
			return r.fail(ctx, corrID, "persist_all", fmt.Errorf("sqlrepo: persist_all %q: %w", e.EntityID(), ErrNotInSeenSet))
		}
	}

	r.uow.SetAutoflush(false)
	defer r.uow.SetAutoflush(true)

	rows := make([]R, len(entities))
	errs := make([]error, len(entities))
	var wg sync.WaitGroup
	for i, e := range entities {
		wg.Add(1)
		go func(i int, e D) {
			defer wg.Done()
			row, err := r.mapper.ToRow(ctx, r.uow, e)
			if err != nil {
				errs[i] = fmt.Errorf("sqlrepo: map entity %q: %w", e.EntityID(), err)
				return
			}
			rows[i] = row
		}(i, e)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return r.fail(ctx, corrID, "persist_all", err)
		}
	}

	cm, hasChildren := any(r.mapper).(ChildMapper[D])
	for i, row := range rows {
		if err := r.upsertRow(ctx, row); err != nil {
			return r.fail(ctx, corrID, "persist_all", ClassifyError(err))
		}
		if hasChildren {
			if err := cm.WriteChildren(ctx, r.uow, entities[i]); err != nil {
				return r.fail(ctx, corrID, "persist_all", ClassifyError(err))
			}
		}
	}
	r.cache.Invalidate(r.table)
	return nil
}

// upsertRow merges row into the table by primary key, using its "db"
// struct tags to build the column list (spec §6 "merge(row) -> row").
func (r *Repository[D, R]) upsertRow(ctx context.Context, row R) error {
	cols := structColumns(row)
	if len(cols) == 0 {
		return fmt.Errorf("sqlrepo: row type for %s has no db-tagged fields", r.table)
	}
	placeholders := make([]string, len(cols))
	updates := make([]string, 0, len(cols))
	for i, c := range cols {
		placeholders[i] = ":" + c
		if c != r.idColumn {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
		}
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		r.table, strings.Join(cols, ", "), strings.Join(placeholders, ", "), r.idColumn, strings.Join(updates, ", "),
	)
	_, err := r.uow.NamedExecContext(ctx, query, row)
	return err
}

// refreshSeen replaces any prior copy of entity in the seen set by
// identity, per spec §4.5.2.
func (r *Repository[D, R]) refreshSeen(entity D) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[entity.EntityID()] = entity
}

// Seen returns a snapshot of the unit-of-work-scoped seen set.
func (r *Repository[D, R]) Seen() []D {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]D, 0, len(r.seen))
	for _, e := range r.seen {
		out = append(out, e)
	}
	return out
}

func (r *Repository[D, R]) buildCacheKey(opts QueryOptions) string {
	keys := make([]string, 0, len(opts.Filters))
	for k := range opts.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(r.table)
	fmt.Fprintf(&sb, "|limit=%d|starting=%s", opts.Limit, opts.StartingStmt)
	for _, k := range keys {
		fmt.Fprintf(&sb, "|%s=%v", k, opts.Filters[k])
	}
	return sb.String()
}
