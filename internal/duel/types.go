package duel

import "time"

// Request is a proposed duel, as supplied by the challenge command.
// Rating and Tag are validated by the caller before reaching the store.
type Request struct {
	GuildID      string  `json:"guild_id"`
	ChallengerID string  `json:"challenger_id"`
	OpponentID   *string `json:"opponent_id,omitempty"`
	Rating       int     `json:"rating"`
	Tag          *string `json:"tag,omitempty"`
}

// Duel is a pending duel as recorded for a guild. At most one duel is
// pending per guild at a time.
type Duel struct {
	ID           string    `json:"id"`
	GuildID      string    `json:"guild_id"`
	ChallengerID string    `json:"challenger_id"`
	OpponentID   *string   `json:"opponent_id,omitempty"`
	Rating       int       `json:"rating"`
	Tag          *string   `json:"tag,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
