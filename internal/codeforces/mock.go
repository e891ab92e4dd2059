package codeforces

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetUsersFunc func(ctx context.Context, handles []string) ([]User, error)

	// Call records
	GetUsersCalls [][]string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetUsersCalls = nil
}

func (m *MockClient) GetUsers(ctx context.Context, handles []string) ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetUsersCalls = append(m.GetUsersCalls, handles)
	if m.GetUsersFunc != nil {
		return m.GetUsersFunc(ctx, handles)
	}
	return []User{}, nil
}
