package duel_test

import (
	"sync"
	"testing"

	"github.com/cuet-dev-corpse/khelile-ayyun/internal/database"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/duel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary in-memory SQLite database for testing.
func setupTestStore(t *testing.T) (duel.DuelStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return duel.NewStore(db), dbTeardown
}

func strPtr(s string) *string { return &s }

func TestTryOpen_ThenConflict(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	first := duel.Request{
		GuildID:      "guild-1",
		ChallengerID: "alice",
		Rating:       1600,
		Tag:          strPtr("greedy"),
	}

	accepted, existing, err := store.TryOpen(first)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Nil(t, existing)

	second := duel.Request{
		GuildID:      "guild-1",
		ChallengerID: "bob",
		OpponentID:   strPtr("carol"),
		Rating:       1800,
	}

	accepted, existing, err = store.TryOpen(second)
	require.NoError(t, err)
	assert.False(t, accepted)
	require.NotNil(t, existing)
	assert.Equal(t, "alice", existing.ChallengerID)
	assert.Equal(t, 1600, existing.Rating)
	require.NotNil(t, existing.Tag)
	assert.Equal(t, "greedy", *existing.Tag)
	assert.Nil(t, existing.OpponentID)
}

func TestTryOpen_IndependentGuilds(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	accepted, _, err := store.TryOpen(duel.Request{GuildID: "guild-1", ChallengerID: "alice", Rating: 1600})
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, _, err = store.TryOpen(duel.Request{GuildID: "guild-2", ChallengerID: "bob", Rating: 1700})
	require.NoError(t, err)
	assert.True(t, accepted, "a pending duel in one guild must not block another guild")
}

func TestClose_ClearsState(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	accepted, _, err := store.TryOpen(duel.Request{GuildID: "guild-1", ChallengerID: "alice", Rating: 1600})
	require.NoError(t, err)
	require.True(t, accepted)

	closed, err := store.Close("guild-1")
	require.NoError(t, err)
	assert.True(t, closed)

	// Withdrawal fully clears state, so the next challenge is accepted.
	accepted, existing, err := store.TryOpen(duel.Request{GuildID: "guild-1", ChallengerID: "bob", Rating: 1800})
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Nil(t, existing)
}

func TestClose_NoPendingDuelIsNoOp(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	closed, err := store.Close("guild-1")
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestGet(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	d, err := store.Get("guild-1")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, _, err = store.TryOpen(duel.Request{GuildID: "guild-1", ChallengerID: "alice", Rating: 1600})
	require.NoError(t, err)

	d, err = store.Get("guild-1")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "alice", d.ChallengerID)
	assert.NotEmpty(t, d.ID)
	assert.False(t, d.CreatedAt.IsZero())
}

func TestActive(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	duels, err := store.Active()
	require.NoError(t, err)
	assert.Empty(t, duels)

	_, _, err = store.TryOpen(duel.Request{GuildID: "guild-1", ChallengerID: "alice", Rating: 1600})
	require.NoError(t, err)
	_, _, err = store.TryOpen(duel.Request{GuildID: "guild-2", ChallengerID: "bob", Rating: 1700})
	require.NoError(t, err)

	duels, err = store.Active()
	require.NoError(t, err)
	assert.Len(t, duels, 2)
}

func TestTryOpen_ConcurrentChallenges(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	const challengers = 8
	var wg sync.WaitGroup
	results := make(chan bool, challengers)

	for i := 0; i < challengers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			accepted, _, err := store.TryOpen(duel.Request{
				GuildID:      "guild-1",
				ChallengerID: "player",
				Rating:       1500 + n*100,
			})
			require.NoError(t, err)
			results <- accepted
		}(i)
	}
	wg.Wait()
	close(results)

	acceptedCount := 0
	for accepted := range results {
		if accepted {
			acceptedCount++
		}
	}
	assert.Equal(t, 1, acceptedCount, "exactly one racing challenge must be accepted")
}
