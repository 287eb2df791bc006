package recipe

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source enumerates where a recipe's data originated, in the precedence
// order spec §4.5.3 sorts by.
type Source string

const (
	SourceManual  Source = "manual"
	SourceTBCA    Source = "tbca"
	SourceTACO    Source = "taco"
	SourcePrivate Source = "private"
	SourceGS1     Source = "gs1"
	SourceAuto    Source = "auto"
)

// SourcePrecedence is the fixed ordering used for the "source" sort key,
// ascending (lowest index sorts first).
var SourcePrecedence = []string{
	string(SourceManual), string(SourceTBCA), string(SourceTACO),
	string(SourcePrivate), string(SourceGS1), string(SourceAuto),
}

// Tag is a (key, value, author_id) annotation on a Recipe; the fourth tag
// field from spec §4.6 ("type") is fixed to "recipe" for this aggregate.
type Tag struct {
	Key      string
	Value    string
	AuthorID string
}

// Ingredient is a child row of a Recipe, joined through recipe_ingredients
// to exercise the "child collection + child_name filter" scenario (spec §8).
type Ingredient struct {
	ID       string
	Name     string
	Quantity decimal.Decimal
	Unit     string
}

// Recipe is the aggregate root.
type Recipe struct {
	ID          string
	Name        string
	TotalTime   time.Duration
	AuthorID    *string
	Source      Source
	Discarded   bool
	Tags        []Tag
	Ingredients []Ingredient
	Rating      *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	events []any
}

// EntityID satisfies sqlrepo.Entity.
func (r Recipe) EntityID() string { return r.ID }

// IsDiscarded satisfies sqlrepo.Entity.
func (r Recipe) IsDiscarded() bool { return r.Discarded }

// AddEvent queues a domain event, drained by the unit of work on commit.
func (r *Recipe) AddEvent(event any) {
	r.events = append(r.events, event)
}

// DrainEvents returns and clears the recipe's queued domain events.
func (r *Recipe) DrainEvents() []any {
	events := r.events
	r.events = nil
	return events
}
