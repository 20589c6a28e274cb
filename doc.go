// Package rolescalc decides whether a holder of some set of granted roles
// satisfies a required role, given a declared role-inheritance graph and
// two built-in generalization rules for "resource:action" style role names.
//
// It is a pure in-memory decision engine: no network, no storage, no
// process boundary. Closures over the inheritance graph are memoized per
// queried role and recomputed lazily after the graph changes.
//
// Key concepts:
//
//   - Base role: a role extended by a more specific one; holding the
//     specialized role satisfies requirements of the base role
//   - Compound role: a role split into resource and action parts by the
//     configured separator (default ":")
//   - Closure: the full set of roles that satisfy a requirement of a
//     given role, combining explicit edges and the built-in rules
//   - Always-allow role: a role that satisfies any requirement
//
// Basic usage:
//
//	calc := rolescalc.MustNew(
//	    rolescalc.WithWriteExtendsRead(),
//	    rolescalc.WithAlwaysAllow("superadmin"),
//	)
//
//	// Declare inheritance: managers can do everything employees can.
//	if err := calc.Role("manager").Extends("employee"); err != nil {
//	    // handle error
//	}
//
//	// The primary decision entry point. Required roles combine with AND,
//	// held roles with OR.
//	ok, err := calc.IsAuthorized("employee", []string{"manager"})
//
//	// Compound roles: holding "blog" grants "blog:read", "blog:delete",
//	// any action; holding "blog:write" grants "blog:read".
//	ok, err = calc.IsAuthorized("blog:read", "blog:write")
//
//	// Trim a role assignment down to the roles that matter.
//	minimal, err := calc.PruneRedundantRoles([]string{"employee", "manager"})
//
// Role definitions can also be seeded from YAML or an in-memory map via
// the rolesource package, and construction options can come from the
// environment via NewFromEnv.
//
// Concurrency: the calculator performs no locking, and queries mutate
// shared state too because they populate the closure cache. A single
// logical owner must perform all calls, or the caller must serialize
// every call with external mutual exclusion.
package rolescalc
