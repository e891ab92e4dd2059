package handle

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// store handles database operations for handle mappings.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a new handle store.
func NewStore(db *sql.DB) HandleStore {
	return &store{
		db: db,
	}
}

// Set records the handle for the member, overwriting any previous value.
func (s *store) Set(memberID, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO handles (member_id, handle, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(member_id) DO UPDATE SET
			handle = excluded.handle,
			updated_at = excluded.updated_at
	`
	_, err := s.db.Exec(query, memberID, handle, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to set handle: %w", err)
	}

	log.Info("Registered handle", "member", memberID, "handle", handle)
	return nil
}

// Get returns the handle registered for the member, if any.
func (s *store) Get(memberID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var h string
	err := s.db.QueryRow("SELECT handle FROM handles WHERE member_id = ?", memberID).Scan(&h)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get handle: %w", err)
	}
	return h, true, nil
}
