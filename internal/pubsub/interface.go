package pubsub

import "context"

// Publisher emits duel lifecycle events for downstream consumers, e.g.
// a future rating pipeline. The bot only writes; nothing reads back.
type Publisher interface {
	PublishDuelEvent(ctx context.Context, event DuelEvent) error
}
