package rolescalc

import "log/slog"

// config collects construction settings; New validates them.
type config struct {
	alwaysAllow      []string
	alwaysAllowInput any
	resourceActions  bool
	writeExtendsRead bool
	separator        string
	logger           *slog.Logger
	decisionHook     func(Decision)
}

// Option configures the calculator.
type Option func(*config)

// WithAlwaysAllow registers roles that satisfy every requirement
// unconditionally, such as a super-admin role.
func WithAlwaysAllow(roles ...string) Option {
	return func(c *config) { c.alwaysAllow = append(c.alwaysAllow, roles...) }
}

// WithAlwaysAllowFrom registers always-allow roles from any supported role
// collection shape. See roleset.Normalize for the accepted shapes.
func WithAlwaysAllowFrom(input any) Option {
	return func(c *config) { c.alwaysAllowInput = input }
}

// WithResourceActions enables compound-role semantics: a role containing
// the separator is treated as "<resource><sep><action>", and holding the
// bare resource role grants every action on that resource.
func WithResourceActions() Option {
	return func(c *config) { c.resourceActions = true }
}

// WithWriteExtendsRead makes "<resource><sep>write" grant
// "<resource><sep>read". Enabling this also enables compound-role semantics.
func WithWriteExtendsRead() Option {
	return func(c *config) { c.writeExtendsRead = true }
}

// WithResourceActionSeparator overrides the character that splits a
// compound role into resource and action. The separator must be exactly
// one character; New returns ErrInvalidSeparator otherwise.
func WithResourceActionSeparator(sep string) Option {
	return func(c *config) { c.separator = sep }
}

// WithLogger supplies an external slog.Logger instance. If nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithDecisionHook registers a callback invoked after every authorization
// check, successful or not. Useful for feeding audit trails.
func WithDecisionHook(h func(Decision)) Option {
	if h == nil {
		panic("WithDecisionHook: nil hook")
	}
	return func(c *config) { c.decisionHook = h }
}
