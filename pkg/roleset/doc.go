// Package roleset normalizes the heterogeneous role-collection shapes an
// authorization caller may hold into a single canonical form.
//
// Callers rarely keep roles in one shape: a session may carry a single role
// name, a token a slice of names, a policy document a uniqueness set, and a
// feature matrix a flag-map of role to enabled. This package converts all of
// them into a deduplicated sequence (or a Set) so that decision engines only
// ever consume one form, with the shape dispatch confined to a single type
// switch instead of scattered through calling code.
//
// # Supported shapes
//
//   - string: a single role name
//   - []string: an ordered sequence, deduplicated preserving first occurrence
//   - []any with string elements: a sequence as produced by JSON/YAML decoding
//   - Set or map[string]struct{}: a uniqueness set, normalized in sorted order
//   - map[string]bool, or map[string]any with bool values: a flag-map; only
//     roles whose flag is true are included, in sorted order
//
// Nil input and the empty string are rejected with ErrInvalidInput; any other
// shape is rejected with ErrUnsupportedShape. An empty sequence or flag-map is
// a valid shape and normalizes to an empty result.
//
// # Usage
//
//	import "github.com/jcoreio/roles-calc/pkg/roleset"
//
//	roles, err := roleset.Normalize([]string{"editor", "viewer", "editor"})
//	// roles == []string{"editor", "viewer"}
//
//	held, err := roleset.NormalizeSet(map[string]bool{
//	    "manager":  true,
//	    "auditor":  false,
//	})
//	// held.Has("manager") == true, held.Has("auditor") == false
//
// # Error Handling
//
// Both sentinel errors can be matched with errors.Is:
//
//   - ErrInvalidInput: nil input or an empty role name as the whole input.
//   - ErrUnsupportedShape: a type outside the supported shapes, or a
//     sequence/flag-map containing non-string keys or non-bool flags.
package roleset
