package bot

import (
	"context"
	"testing"

	"github.com/cuet-dev-corpse/khelile-ayyun/internal/codeforces"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/duel"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/handle"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/metrics"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// newTestBot builds a Bot with mock collaborators and no Discord session.
func newTestBot(t *testing.T) (*Bot, *handle.MockStore, *codeforces.MockClient, *duel.MockStore, *metrics.Mock, *pubsub.MockPublisher) {
	t.Helper()

	handles := handle.NewMockStore()
	cf := codeforces.NewMockClient()
	duels := duel.NewMockStore()
	metricsSvc := metrics.NewMock()
	events := pubsub.NewMockPublisher()

	b := &Bot{
		registrar: handle.NewRegistrar(handles, cf),
		duels:     duels,
		metrics:   metricsSvc,
		events:    events,
		botUserID: "bot-user",
	}
	return b, handles, cf, duels, metricsSvc, events
}

func TestDuelChallengeEmbed_Accepted(t *testing.T) {
	b, _, _, duels, metricsSvc, events := newTestBot(t)

	embed, accepted, err := b.duelChallengeEmbed(duel.Request{
		GuildID:      "guild-1",
		ChallengerID: "alice",
		Rating:       1600,
	})
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Contains(t, embed.Description, "<@alice>")
	assert.Contains(t, embed.Description, "1600")
	assert.Contains(t, embed.Description, "anyone in this server")

	require.Len(t, duels.TryOpenCalls, 1)
	assert.Equal(t, 1, metricsSvc.DuelsOpened())

	// An accepted challenge publishes a duel event.
	require.Len(t, events.Published, 1)
	event := events.Published[0]
	assert.Equal(t, pubsub.ActionOpened, event.Action)
	assert.Equal(t, "guild-1", event.GuildID)
}

func TestDuelChallengeEmbed_ConflictNamesExistingPair(t *testing.T) {
	b, _, _, duels, metricsSvc, events := newTestBot(t)

	duels.TryOpenFunc = func(req duel.Request) (bool, *duel.Duel, error) {
		return false, &duel.Duel{
			GuildID:      "guild-1",
			ChallengerID: "alice",
			OpponentID:   strPtr("bob"),
			Rating:       1600,
		}, nil
	}

	embed, accepted, err := b.duelChallengeEmbed(duel.Request{
		GuildID:      "guild-1",
		ChallengerID: "carol",
		Rating:       1800,
	})
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Contains(t, embed.Description, "<@alice>")
	assert.Contains(t, embed.Description, "<@bob>")
	assert.Contains(t, embed.Description, "1600")
	assert.NotContains(t, embed.Description, "1800")

	assert.Equal(t, 1, metricsSvc.DuelsRejected())
	assert.Empty(t, events.Published, "a rejected challenge publishes nothing")
}

func TestDuelChallengeEmbed_TagShown(t *testing.T) {
	b, _, _, _, _, _ := newTestBot(t)

	embed, accepted, err := b.duelChallengeEmbed(duel.Request{
		GuildID:      "guild-1",
		ChallengerID: "alice",
		OpponentID:   strPtr("bob"),
		Rating:       2000,
		Tag:          strPtr("greedy"),
	})
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Contains(t, embed.Description, "<@bob>")
	assert.Contains(t, embed.Description, "greedy")
}

func TestDuelWithdrawEmbed(t *testing.T) {
	b, _, _, duels, _, events := newTestBot(t)

	embed, err := b.duelWithdrawEmbed("guild-1")
	require.NoError(t, err)
	assert.Contains(t, embed.Description, "withdrawn")
	assert.Equal(t, []string{"guild-1"}, duels.CloseCalls)

	require.Len(t, events.Published, 1)
	assert.Equal(t, pubsub.ActionWithdrawn, events.Published[0].Action)
}

func TestDuelWithdrawEmbed_NothingPending(t *testing.T) {
	b, _, _, duels, _, events := newTestBot(t)

	duels.CloseFunc = func(guildID string) (bool, error) {
		return false, nil
	}

	embed, err := b.duelWithdrawEmbed("guild-1")
	require.NoError(t, err)
	assert.Contains(t, embed.Description, "no pending duel")
	assert.Empty(t, events.Published)
}

func TestRegisterEmbed(t *testing.T) {
	b, handles, cf, _, _, _ := newTestBot(t)

	rating := 3858
	cf.GetUsersFunc = func(ctx context.Context, hs []string) ([]codeforces.User, error) {
		return []codeforces.User{{Handle: "tourist", Rating: &rating, Rank: "legendary grandmaster"}}, nil
	}

	embed := b.registerEmbed(context.Background(), "member-1", "tourist")

	assert.Contains(t, embed.Description, "<@member-1>")
	assert.Contains(t, embed.Description, "tourist")
	assert.Equal(t, "tourist", embed.Title)

	h, ok, err := handles.Get("member-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tourist", h)
}

func TestRegisterEmbed_LookupFailureSurfacesComment(t *testing.T) {
	b, handles, cf, _, metricsSvc, _ := newTestBot(t)

	cf.GetUsersFunc = func(ctx context.Context, hs []string) ([]codeforces.User, error) {
		return nil, &codeforces.LookupError{Comment: "handles: User with handle ghost not found"}
	}

	embed := b.registerEmbed(context.Background(), "member-1", "ghost")

	assert.Equal(t, "handles: User with handle ghost not found", embed.Description)
	assert.Equal(t, 1, metricsSvc.LookupFailures())

	_, ok, err := handles.Get("member-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProfileLookupEmbed_NotRegistered(t *testing.T) {
	b, _, cf, _, _, _ := newTestBot(t)

	embed := b.profileLookupEmbed(context.Background(), "member-1")

	assert.Contains(t, embed.Description, "handle_set")
	assert.Empty(t, cf.GetUsersCalls)
}
