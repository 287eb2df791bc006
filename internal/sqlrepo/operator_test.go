package sqlrepo

import (
	"testing"
)

func TestMatchPostfix(t *testing.T) {
	tests := []struct {
		key      string
		wantBase string
		wantPost string
	}{
		{"price", "price", ""},
		{"price_gte", "price", "_gte"},
		{"price_lte", "price", "_lte"},
		{"status_ne", "status", "_ne"},
		{"ids_not_in", "ids", "_not_in"},
		{"flag_is_not", "flag", "_is_not"},
		{"name_like", "name", "_like"},
		{"tags_not_exists", "tags_not_exists", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			base, post := MatchPostfix(tt.key)
			if base != tt.wantBase || post != tt.wantPost {
				t.Errorf("MatchPostfix(%q) = (%q, %q), want (%q, %q)", tt.key, base, post, tt.wantBase, tt.wantPost)
			}
		})
	}
}

func TestResolveOperator_DefaultDispatch(t *testing.T) {
	t.Run("list value resolves to In", func(t *testing.T) {
		op, err := ResolveOperator("", KindString, []any{"a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := NewQueryBuilder(nil, "t", "").Select()
		pred, err := op(b, "t.col", []any{"a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pred == "" {
			t.Error("expected non-empty predicate")
		}
	})

	t.Run("empty list resolves to always-false", func(t *testing.T) {
		op, err := ResolveOperator("", KindString, []any{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := NewQueryBuilder(nil, "t", "").Select()
		pred, err := op(b, "t.col", []any{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pred != "1 = 0" {
			t.Errorf("expected always-false predicate, got %q", pred)
		}
	})

	t.Run("scalar against jsonb resolves to Contains", func(t *testing.T) {
		op, err := ResolveOperator("", KindJSONB, "value")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := NewQueryBuilder(nil, "t", "").Select()
		pred, err := op(b, "t.col", "value")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pred == "" || len(b.args) != 1 {
			t.Errorf("expected a single bound jsonb containment predicate, got %q args=%v", pred, b.args)
		}
	})

	t.Run("scalar against generic json is unsupported", func(t *testing.T) {
		op, err := ResolveOperator("", KindJSON, "value")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := NewQueryBuilder(nil, "t", "").Select()
		if _, err := op(b, "t.col", "value"); err == nil {
			t.Error("expected ErrUnsupportedOperation")
		}
	})

	t.Run("scalar against plain column resolves to Equals", func(t *testing.T) {
		op, err := ResolveOperator("", KindString, "value")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := NewQueryBuilder(nil, "t", "").Select()
		pred, err := op(b, "t.col", "value")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pred != "t.col = $1" {
			t.Errorf("expected t.col = $1, got %q", pred)
		}
	})
}

func TestLike_AutoWrapsWildcards(t *testing.T) {
	b := NewQueryBuilder(nil, "t", "").Select()
	pred, err := Like(b, "t.name", "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred != "lower(t.name) LIKE lower($1)" {
		t.Errorf("unexpected predicate: %q", pred)
	}
	if b.args[0] != "%bob%" {
		t.Errorf("expected wrapped wildcard arg, got %v", b.args[0])
	}
}

func TestLike_PreservesExplicitWildcards(t *testing.T) {
	b := NewQueryBuilder(nil, "t", "").Select()
	if _, err := Like(b, "t.name", "bob%"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.args[0] != "bob%" {
		t.Errorf("expected unwrapped arg, got %v", b.args[0])
	}
}

func TestNotIn_EmptyIsNoop(t *testing.T) {
	b := NewQueryBuilder(nil, "t", "").Select()
	pred, err := NotIn(b, "t.col", []any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred != "" {
		t.Errorf("expected empty predicate (NULL inclusion honored by omission), got %q", pred)
	}
}
