package sqlrepo

import (
	"strings"
	"testing"
)

func testTagSpec() TagFilterSpec {
	return TagFilterSpec{
		AssociationTable: "recipe_tags",
		TagTable:         "tags",
		ParentFK:         "recipe_id",
		TagFK:            "tag_id",
		TagType:          "recipe",
		ParentIDColumn:   "r.id",
	}
}

func TestBuildTagExists_EmptyIsNoop(t *testing.T) {
	b := NewQueryBuilder(nil, "recipes r", "").Select()
	pred, err := buildTagExists(b, testTagSpec(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred != "" {
		t.Errorf("expected empty predicate for no tags, got %q", pred)
	}
}

func TestBuildTagExists_SameKeyIsOredAcrossKeysIsAnded(t *testing.T) {
	b := NewQueryBuilder(nil, "recipes r", "").Select()
	tags := []Tag{
		{Key: "cuisine", Value: "thai", AuthorID: "u1"},
		{Key: "cuisine", Value: "indian", AuthorID: "u1"},
		{Key: "diet", Value: "vegan", AuthorID: "u1"},
	}

	pred, err := buildTagExists(b, testTagSpec(), tags, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Count(pred, "EXISTS (") != 2 {
		t.Errorf("expected one EXISTS group per distinct key, got %q", pred)
	}
	if !strings.Contains(pred, " AND ") {
		t.Errorf("expected the two key groups to be ANDed, got %q", pred)
	}
	if !strings.Contains(pred, "tg.value = ANY(") {
		t.Errorf("expected same-key values to be ORed via ANY(), got %q", pred)
	}
}

func TestBuildTagExists_NegateUsesSingleNotExists(t *testing.T) {
	b := NewQueryBuilder(nil, "recipes r", "").Select()
	tags := []Tag{
		{Key: "cuisine", Value: "thai", AuthorID: "u1"},
		{Key: "diet", Value: "vegan", AuthorID: "u1"},
	}

	pred, err := buildTagExists(b, testTagSpec(), tags, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(pred, "NOT EXISTS (") != 1 {
		t.Errorf("expected exactly one NOT EXISTS wrapping all tuples, got %q", pred)
	}
	if !strings.Contains(pred, " OR ") {
		t.Errorf("expected the negated tuples to be ORed inside the single subquery, got %q", pred)
	}
}

func TestParseTags_RejectsWrongShape(t *testing.T) {
	if _, err := parseTags("not-a-tag-list"); err == nil {
		t.Fatal("expected an error for a non-[]Tag value")
	}
}

func TestParseTags_NilIsEmpty(t *testing.T) {
	tags, err := parseTags(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags != nil {
		t.Errorf("expected nil tags, got %v", tags)
	}
}
