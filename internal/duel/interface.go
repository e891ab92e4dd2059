package duel

// DuelStore handles the pending-duel bookkeeping for guilds.
type DuelStore interface {
	// TryOpen records req as the pending duel for its guild. If a duel is
	// already pending, it is returned unchanged with accepted=false so the
	// caller can report the conflicting pair. The check-and-insert is
	// atomic per guild: when two challenges race, exactly one is accepted.
	TryOpen(req Request) (accepted bool, existing *Duel, err error)

	// Close removes the pending duel for the guild if present. Closing
	// with none pending is a no-op; closed reports whether one was removed.
	Close(guildID string) (closed bool, err error)

	// Get returns the pending duel for the guild, or nil if none.
	Get(guildID string) (*Duel, error)

	// Active lists all pending duels across guilds.
	Active() ([]Duel, error)
}
