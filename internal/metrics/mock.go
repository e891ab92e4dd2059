package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	commandsHandled  int
	commandErrors    int
	lookups          int
	lookupFailures   int
	duelsOpened      int
	duelsRejected    int
	commandDurations []float64
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		commandDurations: make([]float64, 0),
	}
}

func (m *Mock) IncCommandsHandled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsHandled++
}

func (m *Mock) IncCommandErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandErrors++
}

func (m *Mock) IncLookups() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
}

func (m *Mock) IncLookupFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookupFailures++
}

func (m *Mock) IncDuelsOpened() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duelsOpened++
}

func (m *Mock) IncDuelsRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duelsRejected++
}

func (m *Mock) ObserveCommandDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandDurations = append(m.commandDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// CommandsHandled returns the number of times IncCommandsHandled was called.
func (m *Mock) CommandsHandled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandsHandled
}

// CommandErrors returns the number of times IncCommandErrors was called.
func (m *Mock) CommandErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandErrors
}

// DuelsOpened returns the number of times IncDuelsOpened was called.
func (m *Mock) DuelsOpened() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duelsOpened
}

// DuelsRejected returns the number of times IncDuelsRejected was called.
func (m *Mock) DuelsRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duelsRejected
}

// LookupFailures returns the number of times IncLookupFailures was called.
func (m *Mock) LookupFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookupFailures
}
