package rolescalc

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/jcoreio/roles-calc/pkg/roleset"
)

// Calc decides whether held roles satisfy required roles, given the
// declared inheritance graph and the configured generalization rules.
//
// Calc performs no locking. A single logical owner must serialize edge
// declarations against reads; see the package documentation.
type Calc struct {
	resolver     resourceActionResolver
	graph        *inheritanceGraph
	cache        *closureCache
	alwaysAllow  roleset.Set
	logger       *slog.Logger
	decisionHook func(Decision)
}

// New creates a calculator with the provided options.
// It returns ErrInvalidSeparator when the configured separator is not
// exactly one character, and ErrInvalidRoleCollection when the always-allow
// collection cannot be normalized.
func New(opts ...Option) (*Calc, error) {
	cfg := config{separator: DefaultResourceActionSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}

	if utf8.RuneCountInString(cfg.separator) != 1 {
		return nil, fmt.Errorf("%w: %q must be exactly one character", ErrInvalidSeparator, cfg.separator)
	}

	alwaysAllow := roleset.NewSet(cfg.alwaysAllow...)
	if cfg.alwaysAllowInput != nil {
		roles, err := roleset.Normalize(cfg.alwaysAllowInput)
		if err != nil {
			return nil, errors.Join(ErrInvalidRoleCollection, err)
		}
		alwaysAllow.Add(roles...)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Calc{
		resolver: resourceActionResolver{
			// writeExtendsRead is meaningless without compound-role
			// semantics, so it switches them on as well.
			enabled:          cfg.resourceActions || cfg.writeExtendsRead,
			writeExtendsRead: cfg.writeExtendsRead,
			separator:        cfg.separator,
		},
		graph:        newInheritanceGraph(),
		cache:        newClosureCache(),
		alwaysAllow:  alwaysAllow,
		logger:       logger,
		decisionHook: cfg.decisionHook,
	}, nil
}

// MustNew creates a calculator and panics if construction fails.
func MustNew(opts ...Option) *Calc {
	calc, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create roles calculator: %v", err))
	}
	return calc
}

// Extend declares that every role in specialized inherits everything every
// role in bases grants. Both arguments accept any supported role collection
// shape. Redeclaring existing edges is a no-op; the closure cache is
// invalidated only when at least one edge is new.
func (c *Calc) Extend(specialized, bases any) error {
	specRoles, err := roleset.Normalize(specialized)
	if err != nil {
		return errors.Join(ErrInvalidRoleCollection, err)
	}
	baseRoles, err := roleset.Normalize(bases)
	if err != nil {
		return errors.Join(ErrInvalidRoleCollection, err)
	}

	added := 0
	for _, base := range baseRoles {
		for _, spec := range specRoles {
			if c.graph.declareEdge(base, spec) {
				added++
			}
		}
	}
	if added > 0 {
		invalidated := c.cache.size()
		c.cache.invalidate()
		c.logger.Debug("inheritance edges declared",
			slog.Int("added", added),
			slog.Int("total", c.graph.edgeCount()),
			slog.Int("closures_invalidated", invalidated))
	}
	return nil
}

// RoleBinding is the intermediate handle of the fluent declaration form.
// It carries the normalized specialized roles and nothing else.
type RoleBinding struct {
	calc  *Calc
	roles []string
	err   error
}

// Role starts a fluent inheritance declaration:
//
//	calc.Role("manager").Extends("employee")
//
// Normalization errors surface from the Extends call.
func (c *Calc) Role(specialized any) *RoleBinding {
	roles, err := roleset.Normalize(specialized)
	if err != nil {
		return &RoleBinding{calc: c, err: errors.Join(ErrInvalidRoleCollection, err)}
	}
	return &RoleBinding{calc: c, roles: roles}
}

// Extends declares that the bound roles inherit from each of the given
// base collections.
func (b *RoleBinding) Extends(bases ...any) error {
	if b.err != nil {
		return b.err
	}
	for _, base := range bases {
		if err := b.calc.Extend(b.roles, base); err != nil {
			return err
		}
	}
	return nil
}

// IsAuthorized reports whether the held roles in actual satisfy every role
// in required. Required roles combine with AND; for each required role any
// single held role granting it suffices. An empty required collection is
// vacuously authorized.
func (c *Calc) IsAuthorized(required, actual any) (bool, error) {
	requiredRoles, err := roleset.Normalize(required)
	if err != nil {
		err = errors.Join(ErrInvalidRoleCollection, err)
		c.observe(nil, nil, false, err)
		return false, err
	}
	heldRoles, err := roleset.Normalize(actual)
	if err != nil {
		err = errors.Join(ErrInvalidRoleCollection, err)
		c.observe(requiredRoles, nil, false, err)
		return false, err
	}

	allowed, err := c.satisfiesAll(requiredRoles, heldRoles)
	c.observe(requiredRoles, heldRoles, allowed, err)
	return allowed, err
}

func (c *Calc) satisfiesAll(required, held []string) (bool, error) {
	for _, req := range required {
		ok, err := c.satisfies(req, held)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// satisfies reports whether any single held role grants required, either
// by exact match or through the closure.
func (c *Calc) satisfies(required string, held []string) (bool, error) {
	for _, h := range held {
		if h == required {
			return true, nil
		}
	}

	closure, err := c.closureFor(required)
	if err != nil {
		return false, err
	}
	for _, h := range held {
		if closure.Has(h) {
			return true, nil
		}
	}
	return false, nil
}

// ParentRolesSet returns every role whose holders satisfy a requirement of
// role, excluding role itself. The result is an independent copy; mutating
// it does not affect the calculator.
func (c *Calc) ParentRolesSet(role string) (roleset.Set, error) {
	closure, err := c.closureFor(role)
	if err != nil {
		return nil, err
	}
	return closure.Clone(), nil
}

// RoleAndParentRolesSet is ParentRolesSet with role itself included.
func (c *Calc) RoleAndParentRolesSet(role string) (roleset.Set, error) {
	closure, err := c.ParentRolesSet(role)
	if err != nil {
		return nil, err
	}
	closure.Add(role)
	return closure, nil
}

// DeclaredRoles returns every role that appears in a declared inheritance
// edge, sorted. Roles only ever mentioned in queries are not included.
func (c *Calc) DeclaredRoles() []string {
	return c.graph.roles()
}
