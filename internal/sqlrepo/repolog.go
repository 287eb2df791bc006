package sqlrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RepositoryLogger wraps a zap.Logger with the correlation-id and
// structured-field conventions the generic repository uses throughout
// query/add/persist (spec §7 "all errors carry a correlation id drawn from
// the repository logger"), mirroring the teacher's context-carried zap
// logger in pkg/log.
type RepositoryLogger struct {
	base *zap.Logger
}

// NewRepositoryLogger wraps base. A nil base falls back to zap.NewNop so a
// repository can always be constructed without a logger in tests.
func NewRepositoryLogger(base *zap.Logger) *RepositoryLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &RepositoryLogger{base: base}
}

// WithCorrelationID returns a logger scoped to one operation, tagging every
// subsequent line with a fresh correlation id.
func (l *RepositoryLogger) WithCorrelationID() (*zap.Logger, string) {
	id := uuid.New().String()
	return l.base.With(zap.String("correlation_id", id)), id
}

func (l *RepositoryLogger) LogJoin(ctx context.Context, table string, added bool) {
	FromContext(ctx, l).Debug("sqlrepo: join", zap.String("table", table), zap.Bool("added", added))
}

func (l *RepositoryLogger) LogFilterOperation(ctx context.Context, key string, postfix string) {
	FromContext(ctx, l).Debug("sqlrepo: filter applied", zap.String("key", key), zap.String("postfix", postfix))
}

func (l *RepositoryLogger) LogQueryPerformance(ctx context.Context, sql string, elapsed time.Duration, rows int) {
	FromContext(ctx, l).Info("sqlrepo: query executed",
		zap.String("sql", sql), zap.Duration("elapsed", elapsed), zap.Int("rows", rows))
}

func (l *RepositoryLogger) LogError(ctx context.Context, op string, err error) {
	FromContext(ctx, l).Error("sqlrepo: operation failed", zap.String("op", op), zap.Error(err))
}

type repoLoggerCtxKey struct{}

// WithLogger attaches l's base logger to ctx, following the same
// WithLogger/FromContext pairing as the teacher's pkg/log.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, repoLoggerCtxKey{}, l)
}

// FromContext retrieves a context-carried logger, falling back to
// fallback's base logger when ctx carries none.
func FromContext(ctx context.Context, fallback *RepositoryLogger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(repoLoggerCtxKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if fallback != nil {
		return fallback.base
	}
	return zap.NewNop()
}
