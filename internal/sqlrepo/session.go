package sqlrepo

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Session is the minimal surface the core requires from the host's
// database handle (spec §6). *sqlx.DB and *sqlx.Tx both satisfy it as-is.
type Session interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	Rebind(query string) string
}

// UnitOfWork extends Session with the transaction boundary and the
// autoflush toggle the generic repository's add/persist/persist_all rely
// on (spec §5, §9 "Autoflush toggling during add").
type UnitOfWork interface {
	Session
	SetAutoflush(enabled bool)
	// Enqueue runs fn immediately when autoflush is enabled, or defers it
	// to the next Flush otherwise.
	Enqueue(fn func() error) error
	Flush(ctx context.Context) error
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DBUnitOfWork is the UnitOfWork implementation over *sqlx.DB, mirroring
// the teacher's BaseRepository.Transaction(ctx, fn) pattern but exposing an
// explicit begin/commit/rollback boundary as spec §6 requires.
type DBUnitOfWork struct {
	db        *sqlx.DB
	tx        *sqlx.Tx
	autoflush bool
	pending   []func() error
}

// NewDBUnitOfWork wraps db in a UnitOfWork with autoflush enabled.
func NewDBUnitOfWork(db *sqlx.DB) *DBUnitOfWork {
	return &DBUnitOfWork{db: db, autoflush: true}
}

func (u *DBUnitOfWork) exec() Session {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *DBUnitOfWork) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return u.exec().SelectContext(ctx, dest, query, args...)
}

func (u *DBUnitOfWork) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return u.exec().GetContext(ctx, dest, query, args...)
}

func (u *DBUnitOfWork) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return u.exec().ExecContext(ctx, query, args...)
}

func (u *DBUnitOfWork) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	return u.exec().NamedExecContext(ctx, query, arg)
}

func (u *DBUnitOfWork) Rebind(query string) string {
	return u.exec().Rebind(query)
}

func (u *DBUnitOfWork) SetAutoflush(enabled bool) {
	u.autoflush = enabled
}

func (u *DBUnitOfWork) Enqueue(fn func() error) error {
	if u.autoflush {
		return fn()
	}
	u.pending = append(u.pending, fn)
	return nil
}

// Flush runs every pending write enqueued while autoflush was disabled, in
// order, stopping at the first error. It does not commit.
func (u *DBUnitOfWork) Flush(_ context.Context) error {
	pending := u.pending
	u.pending = nil
	for _, fn := range pending {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func (u *DBUnitOfWork) Begin(ctx context.Context) error {
	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	u.tx = tx
	return nil
}

func (u *DBUnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Commit()
	u.tx = nil
	return err
}

func (u *DBUnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback()
	u.tx = nil
	return err
}
