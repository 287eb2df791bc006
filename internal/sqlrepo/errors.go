package sqlrepo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Sentinel errors for conditions that aren't carrying structured data of
// their own.
var (
	ErrBuilderOrder         = errors.New("sqlrepo: query builder method called before select")
	ErrUnsupportedOperation = errors.New("sqlrepo: unsupported operation")
	ErrNotInSeenSet         = errors.New("sqlrepo: entity must be read or added in this unit of work before it can be persisted")
)

// CorrelatedError tags an error returned from a Repository operation with
// the correlation id the RepositoryLogger issued for that operation (spec
// §7 "all errors carry a correlation id drawn from the repository logger"),
// so the same id a caller sees in the structured log lines for a failed
// add/get/query/persist is recoverable from the error itself.
type CorrelatedError struct {
	CorrelationID string
	Op            string
	Err           error
}

func (e *CorrelatedError) Error() string {
	return fmt.Sprintf("sqlrepo: [%s] %s: %v", e.CorrelationID, e.Op, e.Err)
}

func (e *CorrelatedError) Unwrap() error { return e.Err }

// FilterValidationError is raised for an unknown filter key or a malformed
// tag list; it carries the offenders plus up to ten suggestions.
type FilterValidationError struct {
	InvalidFilters   []string
	SuggestedFilters []string
}

func (e *FilterValidationError) Error() string {
	return fmt.Sprintf("sqlrepo: invalid filter keys: %s (allowed keys include: %s)",
		strings.Join(e.InvalidFilters, ", "), strings.Join(e.SuggestedFilters, ", "))
}

// EntityNotFoundError is raised when Get finds zero rows.
type EntityNotFoundError struct {
	Table string
	ID    string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("sqlrepo: no row in %s found for id %q", e.Table, e.ID)
}

// MultipleEntitiesFoundError is raised when Get finds more than one row for
// an id that is supposed to be unique.
type MultipleEntitiesFoundError struct {
	Table string
	ID    string
	Count int
}

func (e *MultipleEntitiesFoundError) Error() string {
	return fmt.Sprintf("sqlrepo: expected exactly one row in %s for id %q, found %d", e.Table, e.ID, e.Count)
}

// JoinError wraps a join chain the database rejected.
type JoinError struct {
	Chain []string
	Err   error
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("sqlrepo: join chain [%s] rejected: %v", strings.Join(e.Chain, " -> "), e.Err)
}

func (e *JoinError) Unwrap() error { return e.Err }

// EntityMappingError wraps a failure converting one row into a domain
// entity, carrying the row's id and its index within the result set.
type EntityMappingError struct {
	Table string
	ID    string
	Index int
	Err   error
}

func (e *EntityMappingError) Error() string {
	return fmt.Sprintf("sqlrepo: failed to map row %d (table=%s, id=%q) to a domain entity: %v",
		e.Index, e.Table, e.ID, e.Err)
}

func (e *EntityMappingError) Unwrap() error { return e.Err }

// RepositoryQueryError wraps a failed, timed-out, or otherwise unexpected
// execute, carrying the compiled SQL and timing for diagnostics.
type RepositoryQueryError struct {
	SQL      string
	Args     []any
	Elapsed  time.Duration
	TimedOut bool
	Err      error
}

func (e *RepositoryQueryError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("sqlrepo: query timed out after %s: %s", e.Elapsed, e.SQL)
	}
	return fmt.Sprintf("sqlrepo: query failed after %s: %s: %v", e.Elapsed, e.SQL, e.Err)
}

func (e *RepositoryQueryError) Unwrap() error { return e.Err }

// FilterNotAllowedError is raised for a tag filter (or similar structured
// filter) whose value doesn't have the shape the aggregate declares.
type FilterNotAllowedError struct {
	Key    string
	Reason string
}

func (e *FilterNotAllowedError) Error() string {
	return fmt.Sprintf("sqlrepo: filter %q not allowed: %s", e.Key, e.Reason)
}

// IntegrityError wraps a database constraint violation surfaced on
// flush/commit, classified from the driver's *pq.Error.
type IntegrityError struct {
	Constraint string
	Code       string
	Err        error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("sqlrepo: integrity violation (sqlstate=%s, constraint=%s): %v", e.Code, e.Constraint, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// ClassifyError converts a driver error surfaced from flush/commit into the
// §7 taxonomy. Non-constraint errors pass through unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" { // integrity_constraint_violation
		return &IntegrityError{Constraint: pqErr.Constraint, Code: string(pqErr.Code), Err: err}
	}
	return err
}
