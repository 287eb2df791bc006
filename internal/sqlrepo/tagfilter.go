package sqlrepo

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Tag is one (key, value, author_id) tuple from a positive or negative tag
// filter value (spec §4.6; the row's fourth field, type, is fixed per
// aggregate and supplied via TagFilterSpec.TagType rather than per tuple).
type Tag struct {
	Key      string
	Value    string
	AuthorID string
}

// TagFilterSpec tells the tag filter builder how an aggregate's tags
// association is shaped, so Query can translate a "tags"/"tags_not_exists"
// filter value into EXISTS/NOT EXISTS subqueries.
type TagFilterSpec struct {
	AssociationTable string // e.g. "recipe_tags"
	TagTable         string // e.g. "tags"
	ParentFK         string // association column referencing the aggregate, e.g. "recipe_id"
	TagFK            string // association column referencing the tag row, e.g. "tag_id"
	TagType          string // fixed discriminator value for this aggregate's tags
	ParentIDColumn   string // the aggregate's qualified id column, e.g. "r.id"
}

func parseTags(value any) ([]Tag, error) {
	switch v := value.(type) {
	case []Tag:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, &FilterNotAllowedError{
			Key:    "tags",
			Reason: fmt.Sprintf("expected []sqlrepo.Tag, got %T", value),
		}
	}
}

// buildTagExists compiles the positive or negative tag predicate described
// in spec §4.6. An empty tags list is a no-op (empty predicate string).
func buildTagExists(b *QueryBuilder, spec TagFilterSpec, tags []Tag, negate bool) (string, error) {
	if len(tags) == 0 {
		return "", nil
	}

	if negate {
		preds := make([]string, len(tags))
		for i, t := range tags {
			preds[i] = fmt.Sprintf("(tg.key = %s AND tg.value = %s AND tg.author_id = %s)",
				b.addArg(t.Key), b.addArg(t.Value), b.addArg(t.AuthorID))
		}
		sub := fmt.Sprintf(
			"SELECT 1 FROM %s assoc JOIN %s tg ON assoc.%s = tg.id WHERE assoc.%s = %s AND tg.type = %s AND (%s)",
			spec.AssociationTable, spec.TagTable, spec.TagFK, spec.ParentFK, spec.ParentIDColumn,
			b.addArg(spec.TagType), strings.Join(preds, " OR "),
		)
		return fmt.Sprintf("NOT EXISTS (%s)", sub), nil
	}

	groups := make(map[string][]Tag)
	var order []string
	for _, t := range tags {
		if _, ok := groups[t.Key]; !ok {
			order = append(order, t.Key)
		}
		groups[t.Key] = append(groups[t.Key], t)
	}

	groupPreds := make([]string, 0, len(order))
	for _, key := range order {
		group := groups[key]
		values := make([]string, len(group))
		authors := make([]string, len(group))
		for i, t := range group {
			values[i] = t.Value
			authors[i] = t.AuthorID
		}
		sub := fmt.Sprintf(
			"SELECT 1 FROM %s assoc JOIN %s tg ON assoc.%s = tg.id "+
				"WHERE assoc.%s = %s AND tg.type = %s AND tg.key = %s AND tg.value = ANY(%s) AND tg.author_id = ANY(%s)",
			spec.AssociationTable, spec.TagTable, spec.TagFK,
			spec.ParentFK, spec.ParentIDColumn,
			b.addArg(spec.TagType), b.addArg(key), b.addArg(pq.Array(values)), b.addArg(pq.Array(authors)),
		)
		groupPreds = append(groupPreds, fmt.Sprintf("EXISTS (%s)", sub))
	}
	return strings.Join(groupPreds, " AND "), nil
}
