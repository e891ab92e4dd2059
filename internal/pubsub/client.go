package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

type client struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// New creates a Pub/Sub backed Publisher for the given GCP project.
func New(projectID string) Publisher {
	ctx := context.Background()
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to create pubsub client: %v", err)
	}

	return &client{
		client: pubSubC,
		topic:  pubSubC.Topic(TopicDuelEvents),
	}
}

func (c *client) PublishDuelEvent(ctx context.Context, event DuelEvent) error {
	data, err := msgpack.Marshal(event)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}

	result := c.topic.Publish(ctx, &pubsub.Message{Data: data})
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish duel event", "error", err, "action", event.Action)
		return err
	}
	log.Debug("Published duel event", "serverID", serverID, "action", event.Action, "guild", event.GuildID)
	return nil
}
