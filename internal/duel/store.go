package duel

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// store handles database operations for duels.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a new duel store.
func NewStore(db *sql.DB) DuelStore {
	return &store{
		db: db,
	}
}

// TryOpen inserts the duel for the guild unless one is already pending.
// The guild_id primary key makes the conditional insert atomic: a racing
// challenge either wins the insert or observes the winner's row.
func (s *store) TryOpen(req Request) (bool, *Duel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := Duel{
		ID:           uuid.New().String(),
		GuildID:      req.GuildID,
		ChallengerID: req.ChallengerID,
		OpponentID:   req.OpponentID,
		Rating:       req.Rating,
		Tag:          req.Tag,
		CreatedAt:    time.Now(),
	}

	query := `
		INSERT INTO duels (guild_id, id, challenger_id, opponent_id, rating, tag, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(guild_id) DO NOTHING
	`

	res, err := s.db.Exec(query,
		d.GuildID,
		d.ID,
		d.ChallengerID,
		d.OpponentID,
		d.Rating,
		d.Tag,
		d.CreatedAt.Unix(),
	)
	if err != nil {
		return false, nil, fmt.Errorf("failed to open duel: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		existing, err := s.get(d.GuildID)
		if err != nil {
			return false, nil, err
		}
		log.Info("Duel challenge rejected, one already pending", "guild", d.GuildID, "challenger", d.ChallengerID)
		return false, existing, nil
	}

	log.Info("Opened duel", "guild", d.GuildID, "challenger", d.ChallengerID, "rating", d.Rating)
	return true, nil, nil
}

// Close removes the pending duel for the guild if present.
func (s *store) Close(guildID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM duels WHERE guild_id = ?", guildID)
	if err != nil {
		return false, fmt.Errorf("failed to close duel: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		log.Debug("No pending duel to close", "guild", guildID)
		return false, nil
	}

	log.Info("Closed duel", "guild", guildID)
	return true, nil
}

// Get returns the pending duel for the guild, or nil if none.
func (s *store) Get(guildID string) (*Duel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.get(guildID)
}

func (s *store) get(guildID string) (*Duel, error) {
	query := `
		SELECT id, guild_id, challenger_id, opponent_id, rating, tag, created_at
		FROM duels
		WHERE guild_id = ?
	`

	var d Duel
	var createdAt int64
	err := s.db.QueryRow(query, guildID).Scan(
		&d.ID,
		&d.GuildID,
		&d.ChallengerID,
		&d.OpponentID,
		&d.Rating,
		&d.Tag,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get duel: %w", err)
	}

	d.CreatedAt = time.Unix(createdAt, 0)
	return &d, nil
}

// Active lists all pending duels across guilds.
func (s *store) Active() ([]Duel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, guild_id, challenger_id, opponent_id, rating, tag, created_at
		FROM duels
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query duels: %w", err)
	}
	defer rows.Close()

	var duels []Duel
	for rows.Next() {
		var d Duel
		var createdAt int64
		err := rows.Scan(
			&d.ID,
			&d.GuildID,
			&d.ChallengerID,
			&d.OpponentID,
			&d.Rating,
			&d.Tag,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duel row: %w", err)
		}
		d.CreatedAt = time.Unix(createdAt, 0)
		duels = append(duels, d)
	}
	return duels, nil
}
