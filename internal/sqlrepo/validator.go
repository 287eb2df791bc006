package sqlrepo

import "sort"

// specialAllowed is the reserved-controls set that is always valid
// regardless of what any mapper declares (spec §4.2 step 2, §6).
var specialAllowed = []string{
	"id", "skip", "limit", "sort",
	"created_at", "updated_at", "discarded",
	"tags", "tags_not_exists",
}

// ParseFilterKey strips a filter key's postfix, returning the base key
// (used for allow-list checks and mapper column lookup) alongside the
// postfix itself. It is the one place the DSL's string surface is parsed;
// everything downstream works on the typed result.
func ParseFilterKey(key string) (base, postfix string) {
	return MatchPostfix(key)
}

// FilterValidator whitelists filter keys against a mapper-derived allow
// list plus the reserved controls, and injects the soft-delete default.
// Constructed once per repository and immutable thereafter.
type FilterValidator struct {
	allowedKeys    map[string]struct{}
	specialAllowed map[string]struct{}
	hasDiscarded   bool
}

// NewFilterValidator builds a validator from a repository's declared
// mappers. hasDiscarded should reflect whether the aggregate's root table
// carries a discarded column.
func NewFilterValidator(mappers []FilterColumnMapper, hasDiscarded bool) *FilterValidator {
	allowed := make(map[string]struct{})
	for _, m := range mappers {
		for k := range m.Columns {
			allowed[k] = struct{}{}
		}
	}
	special := make(map[string]struct{}, len(specialAllowed))
	for _, s := range specialAllowed {
		special[s] = struct{}{}
	}
	return &FilterValidator{allowedKeys: allowed, specialAllowed: special, hasDiscarded: hasDiscarded}
}

// Validate runs the full pipeline: soft-delete injection, then key
// validation. It returns a new map when it needs to inject discarded,
// leaving the caller's map untouched.
func (v *FilterValidator) Validate(filters map[string]any) (map[string]any, error) {
	out := v.injectDiscarded(filters)

	var invalid []string
	for k := range out {
		base, _ := ParseFilterKey(k)
		if _, ok := v.allowedKeys[base]; ok {
			continue
		}
		if _, ok := v.specialAllowed[base]; ok {
			continue
		}
		invalid = append(invalid, k)
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, &FilterValidationError{InvalidFilters: invalid, SuggestedFilters: v.suggestions(10)}
	}
	return out, nil
}

func (v *FilterValidator) injectDiscarded(filters map[string]any) map[string]any {
	if !v.hasDiscarded {
		return filters
	}
	for k := range filters {
		if base, _ := ParseFilterKey(k); base == "discarded" {
			return filters
		}
	}
	out := make(map[string]any, len(filters)+1)
	for k, val := range filters {
		out[k] = val
	}
	out["discarded"] = false
	return out
}

func (v *FilterValidator) suggestions(n int) []string {
	all := make([]string, 0, len(v.allowedKeys)+len(v.specialAllowed))
	for k := range v.allowedKeys {
		all = append(all, k)
	}
	for k := range v.specialAllowed {
		all = append(all, k)
	}
	sort.Strings(all)
	if len(all) > n {
		all = all[:n]
	}
	return all
}
