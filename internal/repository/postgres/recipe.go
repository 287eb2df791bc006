package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bugielektrik/sqlrepo/internal/domain/recipe"
	"github.com/bugielektrik/sqlrepo/internal/sqlrepo"
)

// RecipeRow is the flat row image for the recipes table (spec §6
// "Row image / SA model"). Child collections (ingredients, tags) are
// mapped separately; ToDomain stays pure over this struct alone.
type RecipeRow struct {
	ID               string           `db:"id"`
	Name             string           `db:"name"`
	TotalTimeSeconds int64            `db:"total_time_seconds"`
	AuthorID         *string          `db:"author_id"`
	Source           string           `db:"source"`
	Discarded        bool             `db:"discarded"`
	Rating           *decimal.Decimal `db:"rating"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"`
}

// recipeFilterMappers declares, once, how every recipe filter key resolves
// to a column and what joins it requires, the same declaration style as
// ProductRepo's filter_to_column_mappers.
var recipeFilterMappers = []sqlrepo.FilterColumnMapper{
	{
		Alias: "r",
		Columns: map[string]sqlrepo.ColumnSpec{
			"id":         {Column: "id", Kind: sqlrepo.KindString},
			"name":       {Column: "name", Kind: sqlrepo.KindString},
			"total_time": {Column: "total_time_seconds", Kind: sqlrepo.KindNumeric},
			"author_id":  {Column: "author_id", Kind: sqlrepo.KindString},
			"source":     {Column: "source", Kind: sqlrepo.KindString},
			"discarded":  {Column: "discarded", Kind: sqlrepo.KindBool},
			"created_at": {Column: "created_at", Kind: sqlrepo.KindTime},
			"updated_at": {Column: "updated_at", Kind: sqlrepo.KindTime},
		},
	},
	{
		// One-hop join to authors, mirroring ProductRepo's source/brand/
		// category mappers.
		Alias: "a",
		Joins: []sqlrepo.JoinEdge{
			{Target: "authors a", On: "a.id = r.author_id", Outer: true},
		},
		Columns: map[string]sqlrepo.ColumnSpec{
			"author_name": {Column: "name", Kind: sqlrepo.KindString},
		},
	},
	{
		// Child-collection join, exercising the spec §8 "join filter"
		// scenario: filtering by a child row's name without duplicating
		// the parent.
		Alias: "ing",
		Joins: []sqlrepo.JoinEdge{
			{Target: "recipe_ingredients ing", On: "ing.recipe_id = r.id"},
		},
		Columns: map[string]sqlrepo.ColumnSpec{
			"ingredient_name": {Column: "name", Kind: sqlrepo.KindString},
		},
	},
}

var recipeTagSpec = sqlrepo.TagFilterSpec{
	AssociationTable: "recipe_tags",
	TagTable:         "tags",
	ParentFK:         "recipe_id",
	TagFK:            "tag_id",
	TagType:          "recipe",
	ParentIDColumn:   "r.id",
}

var recipeSortPrecedence = map[string][]string{
	"source": recipe.SourcePrecedence,
}

// RecipeMapper implements sqlrepo.DataMapper[recipe.Recipe, RecipeRow].
type RecipeMapper struct{}

// ToRow flattens a Recipe into its root row. Child collections are written
// separately by WriteChildren, after the root row is enqueued, so their
// foreign key to recipes.id resolves.
func (RecipeMapper) ToRow(_ context.Context, _ sqlrepo.UnitOfWork, r recipe.Recipe) (RecipeRow, error) {
	return RecipeRow{
		ID:               r.ID,
		Name:             r.Name,
		TotalTimeSeconds: int64(r.TotalTime.Seconds()),
		AuthorID:         r.AuthorID,
		Source:           string(r.Source),
		Discarded:        r.Discarded,
		Rating:           r.Rating,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}, nil
}

// WriteChildren implements sqlrepo.ChildMapper: it replaces a recipe's
// ingredient and tag rows, run by the generic repository only after the
// root row has been enqueued.
func (RecipeMapper) WriteChildren(ctx context.Context, uow sqlrepo.UnitOfWork, r recipe.Recipe) error {
	if err := replaceIngredients(ctx, uow, r.ID, r.Ingredients); err != nil {
		return err
	}
	return replaceTags(ctx, uow, r.ID, r.Tags)
}

// ToDomain maps a root row back to a Recipe. Ingredients and Tags are left
// empty here; RecipeRepository.LoadIngredients/LoadTags hydrate them on
// demand, keeping this mapping pure as spec §6 requires.
func (RecipeMapper) ToDomain(row RecipeRow) (recipe.Recipe, error) {
	return recipe.Recipe{
		ID:        row.ID,
		Name:      row.Name,
		TotalTime: time.Duration(row.TotalTimeSeconds) * time.Second,
		AuthorID:  row.AuthorID,
		Source:    recipe.Source(row.Source),
		Discarded: row.Discarded,
		Rating:    row.Rating,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func replaceIngredients(ctx context.Context, uow sqlrepo.UnitOfWork, recipeID string, ingredients []recipe.Ingredient) error {
	if _, err := uow.ExecContext(ctx, uow.Rebind(`DELETE FROM recipe_ingredients WHERE recipe_id = $1`), recipeID); err != nil {
		return err
	}
	for _, ing := range ingredients {
		_, err := uow.ExecContext(ctx,
			uow.Rebind(`INSERT INTO recipe_ingredients (id, recipe_id, name, quantity, unit) VALUES ($1, $2, $3, $4, $5)`),
			ing.ID, recipeID, ing.Name, ing.Quantity, ing.Unit,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func replaceTags(ctx context.Context, uow sqlrepo.UnitOfWork, recipeID string, tags []recipe.Tag) error {
	if _, err := uow.ExecContext(ctx, uow.Rebind(`DELETE FROM recipe_tags WHERE recipe_id = $1`), recipeID); err != nil {
		return err
	}
	for _, t := range tags {
		_, err := uow.ExecContext(ctx, uow.Rebind(`
			INSERT INTO recipe_tags (recipe_id, tag_id)
			SELECT $1, id FROM tags WHERE key = $2 AND value = $3 AND author_id = $4 AND type = 'recipe'
			ON CONFLICT DO NOTHING
		`), recipeID, t.Key, t.Value, t.AuthorID)
		if err != nil {
			return err
		}
	}
	return nil
}

// RecipeRepository is the concrete aggregate repository, built on the
// generic sqlrepo.Repository.
type RecipeRepository struct {
	*sqlrepo.Repository[recipe.Recipe, RecipeRow]
	uow sqlrepo.UnitOfWork
}

// NewRecipeRepository wires the generic repository with the recipe
// aggregate's mappers, tag spec, and sort precedence table.
func NewRecipeRepository(uow sqlrepo.UnitOfWork, cache sqlrepo.Cache, metrics *sqlrepo.Metrics, logger *sqlrepo.RepositoryLogger) *RecipeRepository {
	repo := sqlrepo.New(sqlrepo.Config[recipe.Recipe, RecipeRow]{
		UnitOfWork:     uow,
		Mapper:         RecipeMapper{},
		Table:          "recipes r",
		RootAlias:      "r",
		Mappers:        recipeFilterMappers,
		HasDiscarded:   true,
		TagSpec:        &recipeTagSpec,
		SortPrecedence: recipeSortPrecedence,
		Cache:          cache,
		Metrics:        metrics,
		Logger:         logger,
	})
	return &RecipeRepository{Repository: repo, uow: uow}
}

// LoadIngredients hydrates a recipe's child ingredient rows, exercised by
// the spec §8 "Join filter" scenario without affecting the root query's
// dedup guarantees.
func (r *RecipeRepository) LoadIngredients(ctx context.Context, recipeID string) ([]recipe.Ingredient, error) {
	var rows []struct {
		ID       string          `db:"id"`
		Name     string          `db:"name"`
		Quantity decimal.Decimal `db:"quantity"`
		Unit     string          `db:"unit"`
	}
	query := r.uow.Rebind(`SELECT id, name, quantity, unit FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY name`)
	if err := r.uow.SelectContext(ctx, &rows, query, recipeID); err != nil {
		return nil, err
	}
	ingredients := make([]recipe.Ingredient, len(rows))
	for i, row := range rows {
		ingredients[i] = recipe.Ingredient{ID: row.ID, Name: row.Name, Quantity: row.Quantity, Unit: row.Unit}
	}
	return ingredients, nil
}

// LoadTags hydrates a recipe's tags.
func (r *RecipeRepository) LoadTags(ctx context.Context, recipeID string) ([]recipe.Tag, error) {
	var rows []struct {
		Key      string `db:"key"`
		Value    string `db:"value"`
		AuthorID string `db:"author_id"`
	}
	query := r.uow.Rebind(`
		SELECT tg.key, tg.value, tg.author_id
		FROM recipe_tags assoc
		JOIN tags tg ON assoc.tag_id = tg.id
		WHERE assoc.recipe_id = $1
	`)
	if err := r.uow.SelectContext(ctx, &rows, query, recipeID); err != nil {
		return nil, err
	}
	tags := make([]recipe.Tag, len(rows))
	for i, row := range rows {
		tags[i] = recipe.Tag{Key: row.Key, Value: row.Value, AuthorID: row.AuthorID}
	}
	return tags, nil
}

// QueryFilter adapts recipe.Tag values into sqlrepo.Tag before handing a
// filter map to Query, since the generic tag filter builder works in terms
// of sqlrepo.Tag rather than any domain-specific type.
func ToSQLRepoTags(tags []recipe.Tag) []sqlrepo.Tag {
	out := make([]sqlrepo.Tag, len(tags))
	for i, t := range tags {
		out[i] = sqlrepo.Tag{Key: t.Key, Value: t.Value, AuthorID: t.AuthorID}
	}
	return out
}
