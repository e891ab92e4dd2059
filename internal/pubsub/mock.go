package pubsub

import (
	"context"
	"sync"
)

// MockPublisher is a mock implementation of the Publisher interface for
// testing. It is safe for concurrent use.
type MockPublisher struct {
	mu sync.Mutex

	// Spies for method calls
	PublishDuelEventFunc func(ctx context.Context, event DuelEvent) error

	// Call records
	Published []DuelEvent
}

// NewMockPublisher creates a new mock instance.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishDuelEvent(ctx context.Context, event DuelEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = append(m.Published, event)
	if m.PublishDuelEventFunc != nil {
		return m.PublishDuelEventFunc(ctx, event)
	}
	return nil
}
