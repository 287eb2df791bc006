package sqlrepo

import (
	"errors"
	"testing"
)

func testMappers() []FilterColumnMapper {
	return []FilterColumnMapper{
		{
			Alias: "r",
			Columns: map[string]ColumnSpec{
				"name":   {Column: "name", Kind: KindString},
				"rating": {Column: "rating", Kind: KindNumeric},
			},
		},
		{
			Alias: "a",
			Joins: []JoinEdge{{Target: "authors a", On: "a.id = r.author_id", Outer: true}},
			Columns: map[string]ColumnSpec{
				"author_name": {Column: "name", Kind: KindString},
			},
		},
	}
}

func TestFilterValidator_InjectsSoftDeleteDefault(t *testing.T) {
	v := NewFilterValidator(testMappers(), true)

	out, err := v.Validate(map[string]any{"name": "stew"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["discarded"] != false {
		t.Errorf("expected discarded=false to be injected, got %v", out["discarded"])
	}
	// caller's map must stay untouched
	if _, ok := map[string]any{"name": "stew"}["discarded"]; ok {
		t.Fatal("sanity check failed")
	}
}

func TestFilterValidator_RespectsExplicitDiscarded(t *testing.T) {
	v := NewFilterValidator(testMappers(), true)

	out, err := v.Validate(map[string]any{"discarded": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["discarded"] != true {
		t.Errorf("expected explicit discarded=true to survive, got %v", out["discarded"])
	}
}

func TestFilterValidator_NoInjectionWithoutDiscardedColumn(t *testing.T) {
	v := NewFilterValidator(testMappers(), false)

	out, err := v.Validate(map[string]any{"name": "stew"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out["discarded"]; ok {
		t.Error("expected no discarded key injected for an aggregate without the column")
	}
}

func TestFilterValidator_RejectsUnknownKeys(t *testing.T) {
	v := NewFilterValidator(testMappers(), true)

	_, err := v.Validate(map[string]any{"not_a_real_filter": "x"})
	if err == nil {
		t.Fatal("expected an error for an unknown filter key")
	}
	var valErr *FilterValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *FilterValidationError, got %T", err)
	}
	if len(valErr.InvalidFilters) != 1 || valErr.InvalidFilters[0] != "not_a_real_filter" {
		t.Errorf("unexpected invalid filters: %v", valErr.InvalidFilters)
	}
	if len(valErr.SuggestedFilters) == 0 {
		t.Error("expected suggestions to be populated")
	}
}

func TestFilterValidator_AllowsPostfixedKeys(t *testing.T) {
	v := NewFilterValidator(testMappers(), true)

	_, err := v.Validate(map[string]any{"rating_gte": 4})
	if err != nil {
		t.Fatalf("unexpected error for a postfixed known key: %v", err)
	}
}

func TestFilterValidator_AllowsReservedControls(t *testing.T) {
	v := NewFilterValidator(testMappers(), false)

	_, err := v.Validate(map[string]any{"skip": 0, "limit": 10, "sort": "name"})
	if err != nil {
		t.Fatalf("unexpected error for reserved controls: %v", err)
	}
}
