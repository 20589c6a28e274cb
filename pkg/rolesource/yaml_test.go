package rolesource_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcoreio/roles-calc/pkg/rolesource"
)

const sampleYAML = `
roles:
  manager:
    extends: [employee]
  admin:
    extends:
      - manager
      - auditor
  employee: {}
`

func TestYAMLSource(t *testing.T) {
	t.Parallel()

	t.Run("parses document", func(t *testing.T) {
		t.Parallel()
		src := rolesource.NewYAMLSource(strings.NewReader(sampleYAML))

		roles, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, roles, 3)
		assert.Equal(t, []string{"employee"}, roles["manager"].Extends)
		assert.Equal(t, []string{"manager", "auditor"}, roles["admin"].Extends)
		assert.Empty(t, roles["employee"].Extends)
	})

	t.Run("memoizes first load", func(t *testing.T) {
		t.Parallel()
		src := rolesource.NewYAMLSource(strings.NewReader(sampleYAML))

		first, err := src.Load(context.Background())
		require.NoError(t, err)

		// The reader is exhausted; a second Load must serve the memoized result.
		second, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		src := rolesource.NewYAMLSource(strings.NewReader("roles: [not: a: map"))

		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, rolesource.ErrParseFailure))
	})

	t.Run("empty extends entry", func(t *testing.T) {
		t.Parallel()
		src := rolesource.NewYAMLSource(strings.NewReader(`
roles:
  manager:
    extends: ["employee", ""]
`))

		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, rolesource.ErrInvalidDefinition))
	})

	t.Run("empty role name", func(t *testing.T) {
		t.Parallel()
		src := rolesource.NewYAMLSource(strings.NewReader(`
roles:
  "":
    extends: [employee]
`))

		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, rolesource.ErrInvalidDefinition))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		src := rolesource.NewYAMLSource(strings.NewReader(sampleYAML))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := src.Load(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, rolesource.ErrLoadCancelled))
	})
}

func TestYAMLFileSource(t *testing.T) {
	t.Parallel()

	t.Run("parses file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "roles.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

		src := rolesource.NewYAMLFileSource(path)
		roles, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"employee"}, roles["manager"].Extends)
	})

	t.Run("picks up file changes between loads", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "roles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("roles:\n  manager:\n    extends: [employee]\n"), 0o600))

		src := rolesource.NewYAMLFileSource(path)
		roles, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, roles, 1)

		require.NoError(t, os.WriteFile(path, []byte("roles:\n  manager:\n    extends: [employee]\n  admin:\n    extends: [manager]\n"), 0o600))

		roles, err = src.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, roles, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		src := rolesource.NewYAMLFileSource(filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, rolesource.ErrReadFailure))
	})
}
