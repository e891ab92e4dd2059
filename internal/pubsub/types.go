package pubsub

// TopicDuelEvents carries duel lifecycle events.
const TopicDuelEvents = "duel-events"

// Duel event actions.
const (
	ActionOpened    = "opened"
	ActionWithdrawn = "withdrawn"
)

// DuelEvent is the payload published on duel open/withdraw.
type DuelEvent struct {
	Action       string  `msgpack:"action"`
	GuildID      string  `msgpack:"guild_id"`
	ChallengerID string  `msgpack:"challenger_id,omitempty"`
	OpponentID   *string `msgpack:"opponent_id,omitempty"`
	Rating       int     `msgpack:"rating,omitempty"`
	Tag          *string `msgpack:"tag,omitempty"`
}
