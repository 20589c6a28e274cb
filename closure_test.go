package rolescalc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rolescalc "github.com/jcoreio/roles-calc"
)

// declareChain declares role-1 extends role-0, role-2 extends role-1, and
// so on, for the given number of edges.
func declareChain(t *testing.T, calc *rolescalc.Calc, edges int) {
	t.Helper()
	for i := 0; i < edges; i++ {
		require.NoError(t, calc.Extend(fmt.Sprintf("role-%d", i+1), fmt.Sprintf("role-%d", i)))
	}
}

func TestInheritanceDepthLimit(t *testing.T) {
	t.Parallel()

	t.Run("chain at the limit resolves", func(t *testing.T) {
		t.Parallel()
		calc := rolescalc.MustNew()
		declareChain(t, calc, rolescalc.InheritanceDepthLimit)

		ok, err := calc.IsAuthorized("role-0", fmt.Sprintf("role-%d", rolescalc.InheritanceDepthLimit))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("chain past the limit fails", func(t *testing.T) {
		t.Parallel()
		calc := rolescalc.MustNew()
		declareChain(t, calc, rolescalc.InheritanceDepthLimit+1)

		_, err := calc.IsAuthorized("role-0", "role-1")
		require.Error(t, err)
		require.ErrorIs(t, err, rolescalc.ErrDepthLimitExceeded)
		assert.True(t, rolescalc.IsDepthLimitError(err))

		var depthErr *rolescalc.DepthLimitError
		require.True(t, errors.As(err, &depthErr))
		assert.Equal(t, "role-0", depthErr.Role)
	})

	t.Run("failure names the queried role", func(t *testing.T) {
		t.Parallel()
		calc := rolescalc.MustNew()
		declareChain(t, calc, rolescalc.InheritanceDepthLimit+1)

		// Querying further up the chain stays within the limit.
		ok, err := calc.IsAuthorized("role-5", "role-21")
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = calc.ParentRolesSet("role-0")
		var depthErr *rolescalc.DepthLimitError
		require.True(t, errors.As(err, &depthErr))
		assert.Equal(t, "role-0", depthErr.Role)
	})
}

func TestInheritanceCycles(t *testing.T) {
	t.Parallel()

	t.Run("two-role cycle converges", func(t *testing.T) {
		t.Parallel()
		calc := rolescalc.MustNew()
		require.NoError(t, calc.Role("deputy").Extends("sheriff"))
		require.NoError(t, calc.Role("sheriff").Extends("deputy"))

		ok, err := calc.IsAuthorized("sheriff", "deputy")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = calc.IsAuthorized("deputy", "sheriff")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("self-extension is harmless", func(t *testing.T) {
		t.Parallel()
		calc := rolescalc.MustNew()
		require.NoError(t, calc.Extend("employee", "employee"))

		parents, err := calc.ParentRolesSet("employee")
		require.NoError(t, err)
		assert.Empty(t, parents.Values())
	})
}

func TestClosureRecomputation(t *testing.T) {
	t.Parallel()

	t.Run("new edges show up in later queries", func(t *testing.T) {
		t.Parallel()
		calc := rolescalc.MustNew()
		require.NoError(t, calc.Role("manager").Extends("employee"))

		ok, err := calc.IsAuthorized("employee", "director")
		require.NoError(t, err)
		require.False(t, ok)

		require.NoError(t, calc.Role("director").Extends("manager"))

		ok, err = calc.IsAuthorized("employee", "director")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("redeclared edge keeps memoized closures valid", func(t *testing.T) {
		t.Parallel()
		calc := rolescalc.MustNew()
		require.NoError(t, calc.Role("manager").Extends("employee"))

		before, err := calc.ParentRolesSet("employee")
		require.NoError(t, err)

		require.NoError(t, calc.Role("manager").Extends("employee"))

		after, err := calc.ParentRolesSet("employee")
		require.NoError(t, err)
		assert.Equal(t, before.Values(), after.Values())
	})
}

func TestClosureConvergence(t *testing.T) {
	t.Parallel()

	t.Run("diamond graph", func(t *testing.T) {
		t.Parallel()
		calc := rolescalc.MustNew()
		require.NoError(t, calc.Role("owner").Extends("manager", "auditor"))
		require.NoError(t, calc.Role("manager").Extends("employee"))
		require.NoError(t, calc.Role("auditor").Extends("employee"))

		parents, err := calc.ParentRolesSet("employee")
		require.NoError(t, err)
		assert.Equal(t, []string{"auditor", "manager", "owner"}, parents.Values())
	})

	t.Run("roles joined through a shared base stay separate", func(t *testing.T) {
		t.Parallel()
		calc := rolescalc.MustNew()
		require.NoError(t, calc.Role("manager").Extends("employee"))
		require.NoError(t, calc.Role("auditor").Extends("employee"))

		ok, err := calc.IsAuthorized("auditor", "manager")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
