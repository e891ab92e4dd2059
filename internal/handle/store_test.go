package handle_test

import (
	"testing"

	"github.com/cuet-dev-corpse/khelile-ayyun/internal/database"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/handle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary in-memory SQLite database for testing.
func setupTestStore(t *testing.T) (handle.HandleStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return handle.NewStore(db), dbTeardown
}

func TestSetAndGet(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	_, ok, err := store.Get("member-1")
	require.NoError(t, err)
	assert.False(t, ok)

	err = store.Set("member-1", "tourist")
	require.NoError(t, err)

	h, ok, err := store.Get("member-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tourist", h)
}

func TestSet_OverwritesOnReRegistration(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.Set("member-1", "tourist"))
	require.NoError(t, store.Set("member-1", "Benq"))

	h, ok, err := store.Get("member-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Benq", h, "re-registration overwrites, no history kept")
}
