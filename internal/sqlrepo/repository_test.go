package sqlrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

// widgetRow/widget mirror the sample aggregate's shape but keep this test
// file self-contained (no dependency on internal/domain/recipe).
type widgetRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Discarded bool   `db:"discarded"`
}

type widget struct {
	id        string
	name      string
	discarded bool
}

func (w widget) EntityID() string  { return w.id }
func (w widget) IsDiscarded() bool { return w.discarded }

type widgetMapper struct{}

func (widgetMapper) ToRow(_ context.Context, _ UnitOfWork, w widget) (widgetRow, error) {
	return widgetRow{ID: w.id, Name: w.name, Discarded: w.discarded}, nil
}

func (widgetMapper) ToDomain(row widgetRow) (widget, error) {
	return widget{id: row.ID, name: row.Name, discarded: row.Discarded}, nil
}

var widgetMappers = []FilterColumnMapper{
	{
		Alias: "w",
		Columns: map[string]ColumnSpec{
			"name":      {Column: "name", Kind: KindString},
			"discarded": {Column: "discarded", Kind: KindBool},
		},
	},
}

func newWidgetRepo(t *testing.T) (*Repository[widget, widgetRow], sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	uow := NewDBUnitOfWork(sqlxDB)
	repo := New(Config[widget, widgetRow]{
		UnitOfWork:   uow,
		Mapper:       widgetMapper{},
		Table:        "widgets w",
		RootAlias:    "w",
		Mappers:      widgetMappers,
		HasDiscarded: true,
	})
	return repo, mock
}

func TestRepository_GetRow_NotFound(t *testing.T) {
	repo, mock := newWidgetRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM widgets w WHERE id = $1 AND discarded = false")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "discarded"}))

	_, err := repo.Get(context.Background(), "missing")
	var notFound *EntityNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *EntityNotFoundError, got %v", err)
	}
}

func TestRepository_GetRow_MultipleRowsIsAnError(t *testing.T) {
	repo, mock := newWidgetRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "discarded"}).
		AddRow("dup", "a", false).
		AddRow("dup", "b", false)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM widgets w WHERE id = $1 AND discarded = false")).
		WithArgs("dup").
		WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "dup")
	var multi *MultipleEntitiesFoundError
	if !errors.As(err, &multi) {
		t.Fatalf("expected *MultipleEntitiesFoundError, got %v", err)
	}
}

func TestRepository_Get_IncludeDiscardedSkipsTheDefaultFilter(t *testing.T) {
	repo, mock := newWidgetRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "discarded"}).AddRow("w1", "lamp", true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM widgets w WHERE id = $1")).
		WithArgs("w1").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "w1", WithIncludeDiscarded())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.discarded {
		t.Error("expected the discarded row to be returned")
	}
}

func TestRepository_Query_InjectsSoftDeleteAndRefreshesSeen(t *testing.T) {
	repo, mock := newWidgetRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "discarded"}).
		AddRow("w1", "lamp", false).
		AddRow("w2", "chair", false)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM widgets w WHERE w.discarded IS $1 LIMIT 100 OFFSET 0")).
		WithArgs(false).
		WillReturnRows(rows)

	entities, err := repo.Query(context.Background(), QueryOptions{Filters: map[string]any{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(entities))
	}
	if len(repo.Seen()) != 2 {
		t.Errorf("expected both rows to be tracked in the seen set, got %d", len(repo.Seen()))
	}
}

func TestRepository_Query_RejectsUnknownFilterKey(t *testing.T) {
	repo, _ := newWidgetRepo(t)

	_, err := repo.Query(context.Background(), QueryOptions{Filters: map[string]any{"nope": 1}})
	var valErr *FilterValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *FilterValidationError, got %v", err)
	}
}

func TestRepository_Persist_RequiresSeenSetMembership(t *testing.T) {
	repo, _ := newWidgetRepo(t)

	err := repo.Persist(context.Background(), widget{id: "unseen", name: "x"})
	if !errors.Is(err, ErrNotInSeenSet) {
		t.Fatalf("expected ErrNotInSeenSet, got %v", err)
	}
}

func TestRepository_Add_UpsertsAndRefreshesSeen(t *testing.T) {
	repo, mock := newWidgetRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO widgets w (id, name, discarded) VALUES (:id, :name, :discarded) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, discarded = EXCLUDED.discarded",
	)).WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Add(context.Background(), widget{id: "w1", name: "lamp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Seen()) != 1 {
		t.Errorf("expected the added entity to be tracked in the seen set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// spyCache records every key Invalidate is called with, so a test can
// assert the repository invalidates by table (matching how Query actually
// keys its cache entries) rather than by entity id.
type spyCache struct {
	invalidated []string
}

func (c *spyCache) Get(string) (any, bool)         { return nil, false }
func (c *spyCache) Set(string, any, time.Duration) {}
func (c *spyCache) Invalidate(tablePrefix string) {
	c.invalidated = append(c.invalidated, tablePrefix)
}

func TestRepository_Add_InvalidatesCacheByTableNotEntityID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	uow := NewDBUnitOfWork(sqlxDB)
	cache := &spyCache{}
	repo := New(Config[widget, widgetRow]{
		UnitOfWork:   uow,
		Mapper:       widgetMapper{},
		Table:        "widgets w",
		RootAlias:    "w",
		Mappers:      widgetMappers,
		HasDiscarded: true,
		Cache:        cache,
	})

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO widgets w (id, name, discarded) VALUES (:id, :name, :discarded) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, discarded = EXCLUDED.discarded",
	)).WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Add(context.Background(), widget{id: "w1", name: "lamp"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cache.invalidated) != 1 || cache.invalidated[0] != "widgets w" {
		t.Fatalf("expected Invalidate to be called with the table (%q), got %v", "widgets w", cache.invalidated)
	}
}

func TestRepository_GetRow_NotFound_ErrorCarriesCorrelationID(t *testing.T) {
	repo, mock := newWidgetRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM widgets w WHERE id = $1 AND discarded = false")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "discarded"}))

	_, err := repo.Get(context.Background(), "missing")
	var correlated *CorrelatedError
	if !errors.As(err, &correlated) {
		t.Fatalf("expected a *CorrelatedError in the chain, got %v", err)
	}
	if correlated.CorrelationID == "" {
		t.Error("expected a non-empty correlation id")
	}
}
