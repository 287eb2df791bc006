package sqlrepo

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/lib/pq"
)

// ColumnKind describes the physical SQL type a FilterColumnMapper column
// holds, read from the mapper's compile-time declaration. InferKind is used
// only as a fallback when a mapper entry omits it.
type ColumnKind int

const (
	KindUnknown ColumnKind = iota
	KindString
	KindNumeric
	KindBool
	KindTime
	KindArray
	KindJSONB
	KindJSON
)

// Operator is a stateless predicate builder: given a query builder (for
// parameter binding) and a column reference, it appends zero or one
// predicate fragment and returns it for the caller to attach with Where.
// An empty string with a nil error means "no predicate" (e.g. NotIn on an
// empty list).
type Operator func(b *QueryBuilder, column string, value any) (string, error)

// postfixesByLength holds the registered postfixes sorted longest-first so
// that "_not_in" is matched before "_in" would be (the DSL has no bare
// "_in" postfix, but the ordering invariant is exercised by "_is_not" vs
// a hypothetical "_not").
var postfixesByLength = func() []string {
	p := []string{"_gte", "_lte", "_ne", "_not_in", "_is_not", "_like"}
	sort.Slice(p, func(i, j int) bool { return len(p[i]) > len(p[j]) })
	return p
}()

var operatorsByPostfix = map[string]Operator{
	"_gte":    GreaterOrEqual,
	"_lte":    LessOrEqual,
	"_ne":     NotEquals,
	"_not_in": NotIn,
	"_is_not": IsNot,
	"_like":   Like,
}

// MatchPostfix strips the longest registered postfix from key, by
// descending postfix length. It returns the bare key unchanged if no
// postfix matches.
func MatchPostfix(key string) (base, postfix string) {
	for _, p := range postfixesByLength {
		if strings.HasSuffix(key, p) && len(key) > len(p) {
			return strings.TrimSuffix(key, p), p
		}
	}
	return key, ""
}

// ResolveOperator picks the operator for a parsed filter key, following
// spec §4.1: an explicit postfix wins outright; otherwise a list/slice
// value means In; otherwise an array or JSONB column with a scalar value
// means Contains; otherwise Equals.
func ResolveOperator(postfix string, kind ColumnKind, value any) (Operator, error) {
	if postfix != "" {
		op, ok := operatorsByPostfix[postfix]
		if !ok {
			return nil, fmt.Errorf("sqlrepo: unknown filter postfix %q", postfix)
		}
		return op, nil
	}
	if isListLike(value) {
		return In, nil
	}
	switch kind {
	case KindArray:
		return containsArray, nil
	case KindJSONB:
		return containsJSONB, nil
	case KindJSON:
		return containsJSON, nil
	default:
		return Equals, nil
	}
}

func isListLike(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return false // []byte is a scalar, not a list filter value
		}
		return true
	case reflect.Array:
		return true
	default:
		return false
	}
}

func sliceLen(value any) (int, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 0, fmt.Errorf("sqlrepo: expected a list value for column %v, got %T", value, value)
	}
	return rv.Len(), nil
}

// Equals: col = v; v nil -> IS NULL; v bool -> IS v.
func Equals(b *QueryBuilder, column string, value any) (string, error) {
	if value == nil {
		return fmt.Sprintf("%s IS NULL", column), nil
	}
	if bv, ok := value.(bool); ok {
		return fmt.Sprintf("%s IS %s", column, b.addArg(bv)), nil
	}
	return fmt.Sprintf("%s = %s", column, b.addArg(value)), nil
}

// NotEquals: col <> v; v nil -> IS NOT NULL.
func NotEquals(b *QueryBuilder, column string, value any) (string, error) {
	if value == nil {
		return fmt.Sprintf("%s IS NOT NULL", column), nil
	}
	return fmt.Sprintf("%s <> %s", column, b.addArg(value)), nil
}

// GreaterOrEqual: col >= v; NULL is a contract violation.
func GreaterOrEqual(b *QueryBuilder, column string, value any) (string, error) {
	if value == nil {
		return "", fmt.Errorf("sqlrepo: %s: NULL is not valid for _gte", column)
	}
	return fmt.Sprintf("%s >= %s", column, b.addArg(value)), nil
}

// LessOrEqual: col <= v; NULL is a contract violation.
func LessOrEqual(b *QueryBuilder, column string, value any) (string, error) {
	if value == nil {
		return "", fmt.Errorf("sqlrepo: %s: NULL is not valid for _lte", column)
	}
	return fmt.Sprintf("%s <= %s", column, b.addArg(value)), nil
}

// In: col = ANY(v); empty list -> an always-false predicate.
func In(b *QueryBuilder, column string, value any) (string, error) {
	n, err := sliceLen(value)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "1 = 0", nil
	}
	return fmt.Sprintf("%s = ANY(%s)", column, b.addArg(arrayArg(value))), nil
}

// NotIn: col IS NULL OR col <> ALL(v); empty list leaves the statement
// unchanged (matches everything) — the documented dual of In-on-empty, by
// choice rather than symmetry.
func NotIn(b *QueryBuilder, column string, value any) (string, error) {
	n, err := sliceLen(value)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	return fmt.Sprintf("(%s IS NULL OR %s <> ALL(%s))", column, column, b.addArg(arrayArg(value))), nil
}

// IsNot: col IS NOT v.
func IsNot(b *QueryBuilder, column string, value any) (string, error) {
	return fmt.Sprintf("%s IS NOT %s", column, b.addArg(value)), nil
}

// Like: lower(col) LIKE lower(pattern); wraps the value in wildcards unless
// the caller already supplied one. NULL is a contract violation.
func Like(b *QueryBuilder, column string, value any) (string, error) {
	if value == nil {
		return "", fmt.Errorf("sqlrepo: %s: NULL is not valid for _like", column)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("sqlrepo: %s: _like requires a string value, got %T", column, value)
	}
	pattern := s
	if !strings.ContainsAny(pattern, "%_") {
		pattern = "%" + pattern + "%"
	}
	return fmt.Sprintf("lower(%s) LIKE lower(%s)", column, b.addArg(pattern)), nil
}

func containsArray(b *QueryBuilder, column string, value any) (string, error) {
	return fmt.Sprintf("%s @> ARRAY[%s]", column, b.addArg(value)), nil
}

func containsJSONB(b *QueryBuilder, column string, value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("sqlrepo: marshal jsonb value for %s: %w", column, err)
	}
	return fmt.Sprintf("%s @> %s::jsonb", column, b.addArg(string(raw))), nil
}

// containsJSON always fails: containment on a generic (non-JSONB) JSON
// column is left unsupported, per the distilled spec's open question.
func containsJSON(_ *QueryBuilder, column string, _ any) (string, error) {
	return "", fmt.Errorf("%w: contains on generic json column %s", ErrUnsupportedOperation, column)
}

// arrayArg adapts a generic slice value for Postgres ANY()/ALL() binding.
// lib/pq's Array() accepts any slice/array and implements driver.Valuer.
func arrayArg(value any) any {
	return pq.Array(value)
}
