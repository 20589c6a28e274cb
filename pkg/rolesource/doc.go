// Package rolesource provides loaders for role inheritance definitions.
//
// A Source yields a map of role names to their definitions, where each
// definition lists the roles it extends. Sources are consumed by the
// calculator to declare inheritance edges in bulk instead of one Extend
// call at a time.
//
// # Usage
//
// Load definitions from YAML:
//
//	src := rolesource.NewYAMLFileSource("roles.yaml")
//	roles, err := src.Load(ctx)
//	if err != nil {
//		// handle error
//	}
//
// The expected YAML document shape:
//
//	roles:
//	  manager:
//	    extends: [employee]
//	  admin:
//	    extends:
//	      - manager
//
// Or define roles directly in code:
//
//	src := rolesource.NewInMemSource(map[string]rolesource.Role{
//		"manager": {Extends: []string{"employee"}},
//		"admin":   {Extends: []string{"manager"}},
//	})
//
// # Error Handling
//
// Load returns ErrReadFailure when the underlying data cannot be read,
// ErrParseFailure when the document is not valid YAML, and
// ErrInvalidDefinition when a role name or extends entry is empty. All
// errors support errors.Is checks.
package rolesource
