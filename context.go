package rolescalc

import "context"

// heldRolesCtxKey is the context key for storing the principal's held roles.
type heldRolesCtxKey struct{}

// SetHeldRolesToContext stores the principal's held roles in the context.
func SetHeldRolesToContext(ctx context.Context, roles ...string) context.Context {
	held := make([]string, len(roles))
	copy(held, roles)
	return context.WithValue(ctx, heldRolesCtxKey{}, held)
}

// GetHeldRolesFromContext retrieves the principal's held roles from the context.
func GetHeldRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(heldRolesCtxKey{}).([]string)
	return roles, ok
}

// IsAuthorizedFromContext checks the required roles against the held roles
// stored in the context. It returns ErrNoRolesInContext when the context
// carries none.
func (c *Calc) IsAuthorizedFromContext(ctx context.Context, required any) (bool, error) {
	held, ok := GetHeldRolesFromContext(ctx)
	if !ok {
		return false, ErrNoRolesInContext
	}
	return c.IsAuthorized(required, held)
}
