package rolesource

import "errors"

var (
	// ErrReadFailure is returned when the underlying data cannot be read.
	ErrReadFailure = errors.New("rolesource: failed to read role definitions")

	// ErrParseFailure is returned when the document cannot be parsed.
	ErrParseFailure = errors.New("rolesource: failed to parse role definitions")

	// ErrInvalidDefinition is returned when a role name or extends entry is empty.
	ErrInvalidDefinition = errors.New("rolesource: invalid role definition")

	// ErrLoadCancelled is returned when the context is cancelled during Load.
	ErrLoadCancelled = errors.New("rolesource: load cancelled")
)
