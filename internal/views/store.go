package views

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Store persists view settings per user and view key.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the settings record for a (user, key) pair, creating and
// persisting category defaults on first visit so callers never observe a
// partially-populated record.
func (s *Store) Load(userID string, c Category, parentID string) (Settings, error) {
	key := SettingsKey(c, parentID)

	var raw []byte
	err := s.db.QueryRow(
		`SELECT settings FROM view_settings WHERE user_id = $1 AND view_key = $2`,
		userID, key,
	).Scan(&raw)

	if err == sql.ErrNoRows {
		settings := Defaults(c)
		if err := s.Save(userID, c, parentID, settings); err != nil {
			return Settings{}, err
		}
		return settings, nil
	}
	if err != nil {
		return Settings{}, err
	}

	// Malformed rows fall back to defaults rather than failing; a view
	// record is presentation state, not data worth a 500.
	var settings Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return Defaults(c), nil
	}
	return settings, nil
}

// Save upserts the settings record for a (user, key) pair.
func (s *Store) Save(userID string, c Category, parentID string, settings Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO view_settings (id, user_id, view_key, settings)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, view_key) DO UPDATE
		 SET settings = $4, updated_at = CURRENT_TIMESTAMP`,
		uuid.New(), userID, SettingsKey(c, parentID), raw,
	)
	return err
}

// Delete removes the record for a (user, key) pair. Loading it again yields
// fresh defaults.
func (s *Store) Delete(userID string, c Category, parentID string) error {
	_, err := s.db.Exec(
		`DELETE FROM view_settings WHERE user_id = $1 AND view_key = $2`,
		userID, SettingsKey(c, parentID),
	)
	return err
}
