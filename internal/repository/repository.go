package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/bugielektrik/sqlrepo/internal/config"
	"github.com/bugielektrik/sqlrepo/internal/entity"
	"github.com/bugielektrik/sqlrepo/internal/repository/memory"
	"github.com/bugielektrik/sqlrepo/internal/repository/postgres"
	"github.com/bugielektrik/sqlrepo/internal/sqlrepo"
	cachemem "github.com/bugielektrik/sqlrepo/internal/sqlrepo/cache/memory"
	"github.com/bugielektrik/sqlrepo/pkg/database"
)

type AuthorRepository interface {
	SelectRows(ctx context.Context) (dest []entity.Author, err error)
	CreateRow(ctx context.Context, data entity.Author) (id string, err error)
	GetRow(ctx context.Context, id string) (dest entity.Author, err error)
	UpdateRow(ctx context.Context, id string, data entity.Author) (err error)
	DeleteRow(ctx context.Context, id string) (err error)
}

type BookRepository interface {
	SelectRows(ctx context.Context) (dest []entity.Book, err error)
	CreateRow(ctx context.Context, data entity.Book) (id string, err error)
	GetRow(ctx context.Context, id string) (dest entity.Book, err error)
	UpdateRow(ctx context.Context, id string, data entity.Book) (err error)
	DeleteRow(ctx context.Context, id string) (err error)
}

type MemberRepository interface {
	SelectRows(ctx context.Context) (dest []entity.Member, err error)
	CreateRow(ctx context.Context, data entity.Member) (id string, err error)
	GetRow(ctx context.Context, id string) (dest entity.Member, err error)
	UpdateRow(ctx context.Context, id string, data entity.Member) (err error)
	DeleteRow(ctx context.Context, id string) (err error)
}

type Repository struct {
	postgres *sqlx.DB

	Author AuthorRepository
	Book   BookRepository
	Member MemberRepository
	Recipe *postgres.RecipeRepository
}

// Configuration is an alias for a function that will take in a pointer to a Repository and modify it
type Configuration func(r *Repository) error

// New takes a variable amount of Configuration functions and returns a new Repository
// Each Configuration will be called in the order they are passed in
func New(configs ...Configuration) (r *Repository, err error) {
	// Create the Repository
	r = &Repository{}
	// Apply all Configurations passed in
	for _, cfg := range configs {
		// Pass the service into the configuration function
		if err = cfg(r); err != nil {
			return
		}
	}
	return
}

func (r Repository) Close() {
	if r.postgres != nil {
		r.postgres.Close()
	}
}

func WithMemoryRepository() Configuration {
	return func(r *Repository) (err error) {
		r.Author = memory.NewAuthorRepository()
		r.Book = memory.NewBookRepository()
		r.Member = memory.NewMemberRepository()
		return
	}
}

func WithPostgresRepository(dataSourceName string) Configuration {
	return func(r *Repository) (err error) {
		r.postgres, err = database.New(dataSourceName)
		if err != nil {
			return
		}

		err = database.Migrate(dataSourceName)
		if err != nil {
			return
		}

		r.Author = postgres.NewAuthorRepository(r.postgres)
		r.Book = postgres.NewBookRepository(r.postgres)
		r.Member = postgres.NewMemberRepository(r.postgres)
		return
	}
}

// WithRecipeRepository wires the sqlrepo-based sample aggregate onto an
// already-established postgres connection (WithPostgresRepository must run
// first in the Configuration chain). cfg supplies the cache TTL a concrete
// repository installs into the generic core's cache extension point.
func WithRecipeRepository(cfg config.RepositoryConfig) Configuration {
	return func(r *Repository) (err error) {
		uow := sqlrepo.NewDBUnitOfWork(r.postgres)
		cache := cachemem.New(cfg.CacheTTL, 2*cfg.CacheTTL)
		logger, err := zap.NewProduction()
		if err != nil {
			return
		}

		r.Recipe = postgres.NewRecipeRepository(
			uow,
			cache,
			sqlrepo.NewMetrics(prometheus.DefaultRegisterer),
			sqlrepo.NewRepositoryLogger(logger),
		)
		return
	}
}
