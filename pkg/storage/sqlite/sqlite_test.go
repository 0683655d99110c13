package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	store, err := New(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestNewRunsMigrations(t *testing.T) {
	store := newTestStore(t)

	version, dirty, err := store.GetMigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), version)
}

func ptr[T any](v T) *T {
	return &v
}
