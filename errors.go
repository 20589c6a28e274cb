package rolescalc

import (
	"errors"
	"fmt"
)

// Domain errors for role inheritance calculations.
var (
	// ErrInvalidSeparator is returned when the resource/action separator is not exactly one character.
	ErrInvalidSeparator = errors.New("rolescalc.invalid_separator")

	// ErrInvalidRoleCollection is returned when a role collection cannot be normalized.
	ErrInvalidRoleCollection = errors.New("rolescalc.invalid_role_collection")

	// ErrDepthLimitExceeded is returned when a closure does not converge within InheritanceDepthLimit generations.
	ErrDepthLimitExceeded = errors.New("rolescalc.depth_limit_exceeded")

	// ErrNoRolesInContext is returned when no held roles are found in the context.
	ErrNoRolesInContext = errors.New("rolescalc.no_roles_in_context")

	// ErrParsingConfig is returned when environment configuration cannot be parsed.
	ErrParsingConfig = errors.New("rolescalc.config_parse_failure")
)

// DepthLimitError indicates the closure for a role did not reach a fixed
// point within InheritanceDepthLimit generations. It signals either an
// inheritance chain deeper than the limit or a pathological declaration set.
type DepthLimitError struct {
	Role string
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("closure for role %q did not converge within %d generations", e.Role, InheritanceDepthLimit)
}

func (e *DepthLimitError) Unwrap() error { return ErrDepthLimitExceeded }

func IsDepthLimitError(err error) bool {
	var e *DepthLimitError
	return errors.As(err, &e)
}
