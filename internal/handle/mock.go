package handle

import "sync"

// MockStore is a mock implementation of the HandleStore interface for testing.
// It behaves as an in-memory map and records calls.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SetFunc func(memberID, handle string) error
	GetFunc func(memberID string) (string, bool, error)

	// Call records
	SetCalls []string
	GetCalls []string

	handles map[string]string
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{
		handles: make(map[string]string),
	}
}

func (m *MockStore) Set(memberID, handle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, memberID)
	if m.SetFunc != nil {
		return m.SetFunc(memberID, handle)
	}
	m.handles[memberID] = handle
	return nil
}

func (m *MockStore) Get(memberID string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, memberID)
	if m.GetFunc != nil {
		return m.GetFunc(memberID)
	}
	h, ok := m.handles[memberID]
	return h, ok, nil
}
