package roleset

import "errors"

var (
	// ErrInvalidInput is returned when the input is nil or an empty role name.
	ErrInvalidInput = errors.New("roleset: invalid role collection input")

	// ErrUnsupportedShape is returned when the input is none of the supported
	// role collection shapes.
	ErrUnsupportedShape = errors.New("roleset: unsupported role collection shape")
)
