package duel

import "sync"

// MockStore is a mock implementation of the DuelStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	TryOpenFunc func(req Request) (bool, *Duel, error)
	CloseFunc   func(guildID string) (bool, error)
	GetFunc     func(guildID string) (*Duel, error)
	ActiveFunc  func() ([]Duel, error)

	// Call records
	TryOpenCalls []Request
	CloseCalls   []string
	GetCalls     []string
	ActiveCalls  int
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) TryOpen(req Request) (bool, *Duel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TryOpenCalls = append(m.TryOpenCalls, req)
	if m.TryOpenFunc != nil {
		return m.TryOpenFunc(req)
	}
	return true, nil, nil
}

func (m *MockStore) Close(guildID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalls = append(m.CloseCalls, guildID)
	if m.CloseFunc != nil {
		return m.CloseFunc(guildID)
	}
	return true, nil
}

func (m *MockStore) Get(guildID string) (*Duel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, guildID)
	if m.GetFunc != nil {
		return m.GetFunc(guildID)
	}
	return nil, nil
}

func (m *MockStore) Active() ([]Duel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActiveCalls++
	if m.ActiveFunc != nil {
		return m.ActiveFunc()
	}
	return nil, nil
}
