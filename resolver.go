package rolescalc

import "strings"

// DefaultResourceActionSeparator splits compound role names into resource
// and action parts.
const DefaultResourceActionSeparator = ":"

const (
	readAction  = "read"
	writeAction = "write"
)

// resourceActionResolver implements the two built-in generalization rules
// for compound role names: the bare resource role grants every action on
// that resource, and write grants read when writeExtendsRead is on.
type resourceActionResolver struct {
	enabled          bool
	writeExtendsRead bool
	separator        string
}

// decompose splits role into resource and action parts. A role is
// compound only when compound-role semantics are enabled and the name
// contains exactly one separator with non-empty parts on both sides;
// anything else is a plain role.
func (r resourceActionResolver) decompose(role string) (resource, action string, ok bool) {
	if !r.enabled {
		return "", "", false
	}
	parts := strings.Split(role, r.separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func (r resourceActionResolver) isCompound(role string) bool {
	_, _, ok := r.decompose(role)
	return ok
}

func (r resourceActionResolver) compound(resource, action string) string {
	return resource + r.separator + action
}

// generalize returns the roles that grant role through its compound
// structure alone: the bare resource, plus the write action when role
// asks for read and writeExtendsRead is on. Plain roles generalize to
// nothing.
func (r resourceActionResolver) generalize(role string) []string {
	resource, action, ok := r.decompose(role)
	if !ok {
		return nil
	}
	generalized := []string{resource}
	if r.writeExtendsRead && action == readAction {
		generalized = append(generalized, r.compound(resource, writeAction))
	}
	return generalized
}
