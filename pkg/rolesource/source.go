package rolesource

import (
	"context"
	"errors"
)

// Role describes one role's place in the inheritance hierarchy.
type Role struct {
	// Extends lists role names this role inherits from.
	Extends []string `yaml:"extends"`
}

// Source yields role definitions keyed by role name.
type Source interface {
	Load(ctx context.Context) (map[string]Role, error)
}

// inMemSource serves role definitions from memory. It is immutable after
// construction, so Load is safe for concurrent use.
type inMemSource struct {
	roles map[string]Role
}

// NewInMemSource creates a Source from a map of role definitions.
// It deep-copies the input so later mutations by the caller do not
// leak into loaded definitions.
func NewInMemSource(roles map[string]Role) Source {
	rolesCopy := make(map[string]Role, len(roles))
	for name, def := range roles {
		extendsCopy := make([]string, len(def.Extends))
		copy(extendsCopy, def.Extends)
		rolesCopy[name] = Role{Extends: extendsCopy}
	}
	return &inMemSource{roles: rolesCopy}
}

// Load returns the map of role definitions.
// The returned map is read-only from the caller's perspective.
func (s *inMemSource) Load(ctx context.Context) (map[string]Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}
	return s.roles, nil
}
