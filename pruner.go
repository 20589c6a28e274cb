package rolescalc

import (
	"errors"

	"github.com/jcoreio/roles-calc/pkg/roleset"
)

// PruneRedundantRoles removes roles already granted by another role in the
// same collection: holding the survivors grants exactly what holding the
// input does. The input is deduplicated first; surviving roles keep their
// relative input order. When two roles grant each other, the later one
// survives.
func (c *Calc) PruneRedundantRoles(roles any) ([]string, error) {
	candidates, err := roleset.Normalize(roles)
	if err != nil {
		return nil, errors.Join(ErrInvalidRoleCollection, err)
	}

	survivors := roleset.NewSet(candidates...)
	pruned := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		redundant, err := c.isRedundant(candidate, survivors)
		if err != nil {
			return nil, err
		}
		if redundant {
			delete(survivors, candidate)
			continue
		}
		pruned = append(pruned, candidate)
	}
	return pruned, nil
}

// PruneRedundantRolesSet is PruneRedundantRoles with a set result.
func (c *Calc) PruneRedundantRolesSet(roles any) (roleset.Set, error) {
	pruned, err := c.PruneRedundantRoles(roles)
	if err != nil {
		return nil, err
	}
	return roleset.NewSet(pruned...), nil
}

// isRedundant reports whether some other surviving role grants candidate.
func (c *Calc) isRedundant(candidate string, survivors roleset.Set) (bool, error) {
	closure, err := c.closureFor(candidate)
	if err != nil {
		return false, err
	}
	for other := range survivors {
		if other != candidate && closure.Has(other) {
			return true, nil
		}
	}
	return false, nil
}
