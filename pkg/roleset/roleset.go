package roleset

import (
	"fmt"
	"sort"
)

// Set is a uniqueness set of role names.
type Set map[string]struct{}

// NewSet creates a Set containing the given role names.
func NewSet(roles ...string) Set {
	s := make(Set, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Add inserts the given role names into the set.
func (s Set) Add(roles ...string) {
	for _, r := range roles {
		s[r] = struct{}{}
	}
}

// Has reports whether the set contains role.
func (s Set) Has(role string) bool {
	_, ok := s[role]
	return ok
}

// Values returns the set members as a sorted slice.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for r := range s {
		out[r] = struct{}{}
	}
	return out
}

// Normalize converts any supported role-collection shape into a canonical
// deduplicated sequence of role names.
//
// Sequences keep their first-occurrence order; set and flag-map shapes are
// returned in sorted order because Go map iteration is unordered. Flag-maps
// contribute only the roles whose flag is true.
//
// Example:
//
//	roles, err := roleset.Normalize("admin")
//	// Returns: []string{"admin"}
//
//	roles, err = roleset.Normalize(map[string]bool{"editor": true, "viewer": false})
//	// Returns: []string{"editor"}
func Normalize(input any) ([]string, error) {
	switch v := input.(type) {
	case nil:
		return nil, ErrInvalidInput
	case string:
		if v == "" {
			return nil, fmt.Errorf("%w: empty role name", ErrInvalidInput)
		}
		return []string{v}, nil
	case []string:
		return dedup(v), nil
	case []any:
		roles := make([]string, 0, len(v))
		for _, elem := range v {
			name, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("%w: sequence element is %T, not a role name", ErrUnsupportedShape, elem)
			}
			roles = append(roles, name)
		}
		return dedup(roles), nil
	case Set:
		return v.Values(), nil
	case map[string]struct{}:
		return Set(v).Values(), nil
	case map[string]bool:
		return flaggedRoles(v), nil
	case map[string]any:
		flags := make(map[string]bool, len(v))
		for role, flag := range v {
			enabled, ok := flag.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: flag for role %q is %T, not bool", ErrUnsupportedShape, role, flag)
			}
			flags[role] = enabled
		}
		return flaggedRoles(flags), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, input)
	}
}

// NormalizeSet is Normalize returning the result as a Set.
func NormalizeSet(input any) (Set, error) {
	roles, err := Normalize(input)
	if err != nil {
		return nil, err
	}
	return NewSet(roles...), nil
}

// dedup removes duplicates preserving first-occurrence order.
func dedup(roles []string) []string {
	out := make([]string, 0, len(roles))
	seen := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// flaggedRoles returns the sorted roles whose flag is true.
func flaggedRoles(flags map[string]bool) []string {
	out := make([]string, 0, len(flags))
	for role, enabled := range flags {
		if enabled {
			out = append(out, role)
		}
	}
	sort.Strings(out)
	return out
}
